package restapi

import (
	"net/http"

	"launchdash.dev/internal/models"
)

func (api *RestAPI) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := api.LaunchManager.SiteStats(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(stats))
}
