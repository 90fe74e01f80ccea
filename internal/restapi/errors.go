package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"launchdash.dev/internal/logging"
	"launchdash.dev/internal/models"
)

type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) writeError(w http.ResponseWriter, r *http.Request, status int, text string) {
	response := errorResponse{
		Code:        status,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     1,
	}

	setJSONResponseType(w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode error response", "status", status, "error", err)
	}
}

// serverErrorResponse logs err through the request's logger and answers 500
// without echoing err to the client.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))
	api.writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, r, http.StatusNotFound, "resource not found")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		Code        int                 `json:"code"`
		CurrentTime int64               `json:"currentTime"`
		Text        string              `json:"text"`
		Version     int                 `json:"version"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		Code:        http.StatusBadRequest,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "invalid request",
		Version:     1,
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(w)
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to encode validation error response", "error", err)
	}
}
