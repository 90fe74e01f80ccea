package restapi

import (
	"net/http"
	"strings"

	"launchdash.dev/internal/appconf"
)

const (
	// apiContentSecurityPolicy locks down JSON and chart responses.
	apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none';"
	// pageContentSecurityPolicy lets the dashboard page load its own script and chart images.
	pageContentSecurityPolicy = "default-src 'self'; img-src 'self' data:; style-src 'self' 'unsafe-inline'; frame-ancestors 'none';"
)

// WithSecurityHeaders wraps the given handler with security headers middleware
func (api *RestAPI) WithSecurityHeaders(handler http.Handler) http.Handler {
	return securityHeaders(api.Config.Env, handler)
}

func contentSecurityPolicy(path string) string {
	if strings.HasPrefix(path, "/api/") {
		return apiContentSecurityPolicy
	}
	return pageContentSecurityPolicy
}

// securityHeaders adds essential security headers to all HTTP responses
func securityHeaders(env appconf.Environment, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")

		// Only a production deployment sits behind TLS.
		if env == appconf.Production {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", contentSecurityPolicy(r.URL.Path))

		if r.Header.Get("Origin") != "" && strings.HasPrefix(r.URL.Path, "/api/") {
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
