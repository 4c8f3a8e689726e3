package cachekit

import (
	"sort"
	"strings"
)

// Key builds a canonical cache key for an operation and its parameters
// pairs are name,value strings; they are sorted by name so callers can
// pass them in any order and still hit the same entry
func Key(op string, pairs ...string) string {
	if len(pairs)%2 != 0 {
		pairs = append(pairs, "")
	}
	type kv struct{ k, v string }
	kvs := make([]kv, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		kvs = append(kvs, kv{pairs[i], pairs[i+1]})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].k < kvs[j].k })

	var b strings.Builder
	b.WriteString(op)
	for _, p := range kvs {
		b.WriteByte(':')
		b.WriteString(escape(p.k))
		b.WriteByte('=')
		b.WriteString(escape(p.v))
	}
	return b.String()
}

// escape keeps the key delimiters unambiguous when values contain them
func escape(s string) string {
	if !strings.ContainsAny(s, ":=%") {
		return s
	}
	r := strings.NewReplacer("%", "%25", ":", "%3A", "=", "%3D")
	return r.Replace(s)
}
