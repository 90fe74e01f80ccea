package dashboard

import (
	"strconv"

	"launchdash.dev/internal/models"
)

const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"

	sliderMin  = 0
	sliderMax  = 10000
	sliderStep = 1000
)

// SiteOptions lists "All Sites" followed by every launch site in table order.
func SiteOptions(src LaunchSource) []models.DropdownOption {
	sites := src.Sites()
	options := make([]models.DropdownOption, 0, len(sites)+1)
	options = append(options, models.DropdownOption{Label: "All Sites", Value: AllSites})
	for _, s := range sites {
		options = append(options, models.DropdownOption{Label: s, Value: s})
	}
	return options
}

// PayloadSlider describes the 0-10000 kg slider, initially spanning the
// lightest to the heaviest payload in the table.
func PayloadSlider(src LaunchSource) models.RangeSlider {
	minPayload, maxPayload := src.PayloadBounds()

	marks := make([]models.SliderMark, 0, sliderMax/sliderStep+1)
	for v := sliderMin; v <= sliderMax; v += sliderStep {
		marks = append(marks, models.SliderMark{Value: float64(v), Label: strconv.Itoa(v)})
	}

	return models.RangeSlider{
		ID:    PayloadSliderID,
		Min:   sliderMin,
		Max:   sliderMax,
		Step:  sliderStep,
		Marks: marks,
		Value: [2]float64{minPayload, maxPayload},
	}
}

// NewLayout declares the dashboard page: heading, site dropdown, pie chart,
// payload slider and scatter chart.
func NewLayout(src LaunchSource) models.Layout {
	return models.Layout{
		Title: "SpaceX Launch Records Dashboard",
		SiteDropdown: models.Dropdown{
			ID:          SiteDropdownID,
			Options:     SiteOptions(src),
			Value:       AllSites,
			Placeholder: "Select a Launch Site here",
			Searchable:  true,
		},
		PieChartID:     PieChartID,
		SliderLabel:    "Payload range (Kg):",
		PayloadSlider:  PayloadSlider(src),
		ScatterChartID: ScatterChartID,
	}
}
