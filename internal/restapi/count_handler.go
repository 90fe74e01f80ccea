package restapi

import (
	"net/http"

	"launchdash.dev/internal/dashboard"
	"launchdash.dev/internal/models"
)

type countEntry struct {
	Site        string  `json:"site"`
	Low         float64 `json:"low"`
	High        float64 `json:"high"`
	LaunchCount int     `json:"launchCount"`
}

// countHandler counts launches in a payload range straight from the launch database.
func (api *RestAPI) countHandler(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := parseChartQuery(r, api.LaunchManager.Table())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	site := query.site
	if dashboard.IsAllSites(site) {
		site = ""
	}

	n, err := api.LaunchManager.LaunchDB.CountInPayloadRange(r.Context(), site, query.low, query.high)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(countEntry{
		Site:        query.site,
		Low:         query.low,
		High:        query.high,
		LaunchCount: n,
	}))
}
