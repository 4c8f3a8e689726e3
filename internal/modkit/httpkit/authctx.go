package httpkit

import (
	"net/http"
	"strings"

	perrs "medlens/internal/platform/errors"
	pnet "medlens/internal/platform/net"
)

// Client returns the authenticated client id from the request context
func Client(r *http.Request) (string, error) {
	cid := pnet.UserID(r.Context())
	if cid == "" {
		return "", perrs.Unauthorizedf("missing api key")
	}
	return cid, nil
}

// MustClient returns the authenticated client id or panics
// only use on routes protected by the auth middleware
func MustClient(r *http.Request) string {
	cid, err := Client(r)
	if err != nil {
		panic(err)
	}
	return cid
}

// APIKey returns the raw key from the X-API-Key header
func APIKey(r *http.Request) (string, error) {
	key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
	if key == "" {
		return "", perrs.Unauthorizedf("missing api key")
	}
	return key, nil
}
