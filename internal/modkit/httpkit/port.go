// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perrs "medlens/internal/platform/errors"
)

// APIKeyHeader is the request header carrying the client key
const APIKeyHeader = "X-API-Key"

// KeyFunc validates a presented key and returns a client id
// httpkit does not care about tenancy, callers may return an empty tenant id
type KeyFunc func(key string) (clientID string, tenantID string, err error)

// Port implements middleware.AuthPort by reading X-API-Key and delegating to a KeyFunc
type Port struct {
	parse KeyFunc
}

// NewPortFunc builds a Port from a simple key validator function
func NewPortFunc(fn KeyFunc) *Port {
	return &Port{parse: fn}
}

// NewAPIKeyPort builds a Port that accepts any key in the allow list
// comparison is constant time per candidate key
func NewAPIKeyPort(keys []string) *Port {
	allowed := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			allowed = append(allowed, k)
		}
	}
	return NewPortFunc(func(key string) (string, string, error) {
		for _, want := range allowed {
			if subtle.ConstantTimeCompare([]byte(key), []byte(want)) == 1 {
				return "api-key", "", nil
			}
		}
		return "", "", perrs.Unauthorizedf("invalid api key")
	})
}

// Parse extracts a client id from the X-API-Key header
// returns unauthorized when the header is missing, empty, or the validator rejects the key
func (p *Port) Parse(r *http.Request) (string, string, error) {
	key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
	if key == "" {
		return "", "", perrs.Unauthorizedf("missing api key")
	}

	if p.parse == nil {
		return "", "", perrs.Unauthorizedf("invalid api key")
	}

	cid, tid, err := p.parse(key)
	if err != nil {
		return "", "", perrs.Unauthorizedf("invalid api key")
	}
	return cid, tid, nil
}
