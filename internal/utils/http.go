package utils

import (
	"net"
	"net/http"
	"path"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a route parameter and splits off its file
// extension, so "success-pie.svg" yields ("success-pie", "svg").
func ExtractIDFromParams(r *http.Request, paramName string) (string, string) {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)

	ext := path.Ext(rawID)
	return strings.TrimSuffix(rawID, ext), strings.TrimPrefix(ext, ".")
}

// ClientIP returns the host part of the request's remote address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
