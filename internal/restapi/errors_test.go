package restapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"launchdash.dev/internal/app"
	"launchdash.dev/internal/logging"
)

func TestServerErrorResponse(t *testing.T) {
	var logs bytes.Buffer
	api := &RestAPI{Application: &app.Application{Logger: slog.Default()}}

	r, err := http.NewRequest("GET", "/api/launches/stats.json", nil)
	if err != nil {
		t.Fatal(err)
	}
	r = r.WithContext(logging.WithLogger(r.Context(), logging.NewStructuredLogger(&logs, slog.LevelInfo)))
	rr := httptest.NewRecorder()

	api.serverErrorResponse(rr, r, errors.New("database is locked"))

	if status := rr.Code; status != http.StatusInternalServerError {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusInternalServerError)
	}

	if contentType := rr.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("handler returned wrong content type: got %v want application/json", contentType)
	}

	var response struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}

	if response.Code != http.StatusInternalServerError {
		t.Errorf("wrong code in body: got %v", response.Code)
	}
	if response.Text != "internal server error" {
		t.Errorf("wrong text in body: got %q", response.Text)
	}
	if response.Version != 1 {
		t.Errorf("wrong version in body: got %v", response.Version)
	}

	now := time.Now().UnixMilli()
	if response.CurrentTime > now || response.CurrentTime < now-5000 {
		t.Errorf("currentTime %d is not recent", response.CurrentTime)
	}

	if !bytes.Contains(logs.Bytes(), []byte("database is locked")) {
		t.Errorf("the underlying error was not logged: %s", logs.String())
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("database is locked")) {
		t.Errorf("the underlying error leaked into the response")
	}
}

func TestValidationErrorResponse(t *testing.T) {
	api := &RestAPI{Application: &app.Application{Logger: slog.Default()}}

	r := httptest.NewRequest("GET", "/api/launches/charts/payload-scatter.json?low=x", nil)
	rr := httptest.NewRecorder()

	api.validationErrorResponse(rr, r, map[string][]string{
		"low": {`Invalid field value for field "low".`},
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rr.Code)
	}

	var response struct {
		Code        int                 `json:"code"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}
	if len(response.FieldErrors["low"]) != 1 {
		t.Errorf("expected one error for low, got %v", response.FieldErrors)
	}
}

func TestHandlerErrorsGoToRequestLogger(t *testing.T) {
	api := createTestApi(t)
	api.LaunchManager.Shutdown()

	var logs bytes.Buffer
	router := httprouter.New()
	api.SetRoutes(router)
	handler := NewRequestLoggingMiddleware(logging.NewStructuredLogger(&logs, slog.LevelInfo))(router)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/launches/stats.json", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", rr.Code)
	}

	var failed map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
		var entry map[string]interface{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("log line is not JSON: %s", line)
		}
		if entry["msg"] == "request failed" {
			failed = entry
		}
	}
	if failed == nil {
		t.Fatalf("request failure was not logged to the request logger: %s", logs.String())
	}
	if failed["path"] != "/api/launches/stats.json" {
		t.Errorf("wrong path logged: %v", failed["path"])
	}
	if !strings.Contains(fmt.Sprint(failed["error"]), "closed") {
		t.Errorf("underlying error not logged: %v", failed["error"])
	}
}
