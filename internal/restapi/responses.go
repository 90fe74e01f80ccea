package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"launchdash.dev/internal/dashboard"
	"launchdash.dev/internal/logging"
	"launchdash.dev/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

// sendImage writes a rendered chart. The body is fully rendered before the
// first byte goes out so that render failures can still become a 500.
func (api *RestAPI) sendImage(w http.ResponseWriter, r *http.Request, format dashboard.Format, body []byte) {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if _, err := w.Write(body); err != nil {
		logging.FromContext(r.Context()).Warn("failed to write chart image", "path", r.URL.Path, "error", err)
	}
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
