package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"launchdash.dev/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Run("logs HTTP request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		handler := NewRequestLoggingMiddleware(logger)(okHandler())

		req := httptest.NewRequest("GET", "/api/launches/charts/success-pie.svg?site=ALL", nil)
		req.Header.Set("User-Agent", "test-client/1.0")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "test response", recorder.Body.String())

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/launches/charts/success-pie.svg"`)
		assert.NotContains(t, output, "site=ALL")
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"bytes":13`)
		assert.Contains(t, output, `"user_agent":"test-client/1.0"`)
		assert.Contains(t, output, `"duration_ms":`)
		assert.Contains(t, output, `"component":"http_server"`)
	})

	t.Run("captures error status codes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		handler := NewRequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/launches/charts/payload-scatter.json", nil))

		assert.Contains(t, buf.String(), `"status":400`)
	})

	t.Run("puts the logger in the request context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		handler := NewRequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("inside handler")
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		assert.Contains(t, buf.String(), `"msg":"inside handler"`)
	})
}
