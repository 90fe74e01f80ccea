package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"launchdash.dev/internal/logging"
)

// responseWriter wraps http.ResponseWriter to capture status code and body size
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}

// NewRequestLoggingMiddleware creates middleware that logs HTTP requests
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			r = r.WithContext(logging.WithLogger(r.Context(), logger))

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)

			logging.LogHTTPRequest(logger,
				r.Method,
				r.URL.Path, // Path without query parameters
				wrapped.statusCode,
				float64(duration.Nanoseconds())/1e6,
				slog.Int("bytes", wrapped.written),
				slog.String("client_ip", r.RemoteAddr),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"))
		})
	}
}
