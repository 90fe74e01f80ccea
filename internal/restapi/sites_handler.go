package restapi

import (
	"net/http"

	"launchdash.dev/internal/dashboard"
	"launchdash.dev/internal/models"
)

type sitesEntry struct {
	Options []models.DropdownOption `json:"options"`
	Default string                  `json:"default"`
	Slider  models.RangeSlider      `json:"slider"`
}

func (api *RestAPI) sitesHandler(w http.ResponseWriter, r *http.Request) {
	table := api.LaunchManager.Table()

	entry := sitesEntry{
		Options: dashboard.SiteOptions(table),
		Default: dashboard.AllSites,
		Slider:  dashboard.PayloadSlider(table),
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
