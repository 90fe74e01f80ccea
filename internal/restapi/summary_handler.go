package restapi

import (
	"net/http"

	"launchdash.dev/internal/models"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(api.LaunchManager.Summary()))
}
