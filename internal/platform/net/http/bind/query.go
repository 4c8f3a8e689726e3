package bind

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "medlens/internal/platform/errors"

	"github.com/go-playground/validator/v10"
)

// Query decodes URL query parameters into T using `query` struct tags and
// validates the result with the shared validator. Absent parameters leave the
// struct field at its zero value, so defaulting stays with the caller
//
// Supported field kinds: string, bool, ints, uints, floats, and pointers to
// those. A parameter that fails to parse maps to an invalid-argument error
// naming the offending parameter
func Query[T any](r *http.Request) (T, error) {
	var dst T

	rv := reflect.ValueOf(&dst).Elem()
	rt := rv.Type()
	if rt.Kind() != reflect.Struct {
		return dst, perr.Internalf("bind.Query target must be a struct, got %s", rt.Kind())
	}

	q := r.URL.Query()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("query")
		if name == "" || name == "-" {
			continue
		}
		if idx := strings.Index(name, ","); idx >= 0 {
			name = name[:idx]
		}
		if !q.Has(name) {
			continue
		}
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		if err := setField(rv.Field(i), raw); err != nil {
			return dst, perr.InvalidArgf("invalid value for %q: %s", name, raw)
		}
	}

	if err := Get().Validator.Struct(dst); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return dst, perr.Internalf("validator error: %v", err)
		}
		field, msg := ValidationFieldAndMessage(err)
		return dst, perr.WithField(perr.Newf(perr.ErrorCodeInvalidArgument, "%s", msg), field)
	}

	return dst, nil
}

func setField(v reflect.Value, raw string) error {
	if v.Kind() == reflect.Pointer {
		p := reflect.New(v.Type().Elem())
		if err := setField(p.Elem(), raw); err != nil {
			return err
		}
		v.Set(p)
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return perr.Internalf("unsupported query field kind %s", v.Kind())
	}
	return nil
}
