package restapi

import (
	"net/http"
	"net/http/pprof"

	"github.com/julienschmidt/httprouter"
	"launchdash.dev/internal/appconf"
)

func registerPprofHandlers(router *httprouter.Router) {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	router.Handler(http.MethodGet, "/debug/pprof/*item", mux)
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/launches/sites.json", api.sitesHandler)
	router.HandlerFunc(http.MethodGet, "/api/launches/charts/:chart", api.chartHandler)
	router.HandlerFunc(http.MethodGet, "/api/launches/stats.json", api.statsHandler)
	router.HandlerFunc(http.MethodGet, "/api/launches/count.json", api.countHandler)
	router.HandlerFunc(http.MethodGet, "/api/launches/summary.json", api.summaryHandler)

	if api.Config.Env == appconf.Development {
		registerPprofHandlers(router)
	}
}

// NotFound answers unknown routes with the JSON error envelope.
func (api *RestAPI) NotFound() http.Handler {
	return http.HandlerFunc(api.sendNotFound)
}

// WithMiddleware applies, outermost first: request logging, security headers,
// per-client rate limiting and response compression.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	logged := NewRequestLoggingMiddleware(api.Logger)
	return logged(api.WithSecurityHeaders(api.rateLimiter.Handler(CompressionMiddleware(handler))))
}
