package webui

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"launchdash.dev/internal/dashboard"
	"launchdash.dev/internal/logging"
	"launchdash.dev/internal/models"
)

// dashboardPage holds what the page first renders. Low and High are the
// slider's initial thumbs, which also drive the initial scatter URL.
type dashboardPage struct {
	Layout     models.Layout
	Low        float64
	High       float64
	PieURL     string
	ScatterURL string
}

// chartURL is the image endpoint for a chart at the given control values.
// The dashboard script builds the same URLs when a control changes.
func chartURL(chart string, site string, low, high float64) string {
	params := url.Values{}
	params.Set("site", site)
	if chart == "payload-scatter" {
		params.Set("low", fmt.Sprintf("%g", low))
		params.Set("high", fmt.Sprintf("%g", high))
	}
	return "/api/launches/charts/" + chart + ".svg?" + params.Encode()
}

// snapOutward widens [low, high] to the nearest slider steps so a browser
// does not move the thumbs away from the range the charts were drawn for.
// Widening past the payload bounds selects no extra launches.
func snapOutward(slider models.RangeSlider) (float64, float64) {
	low, high := slider.Value[0], slider.Value[1]
	if slider.Step <= 0 {
		return low, high
	}

	low = slider.Min + math.Floor((low-slider.Min)/slider.Step)*slider.Step
	high = slider.Min + math.Ceil((high-slider.Min)/slider.Step)*slider.Step
	return math.Max(low, slider.Min), math.Min(high, slider.Max)
}

func newDashboardPage(src dashboard.LaunchSource) dashboardPage {
	layout := dashboard.NewLayout(src)
	low, high := snapOutward(layout.PayloadSlider)
	site := layout.SiteDropdown.Value

	return dashboardPage{
		Layout:     layout,
		Low:        low,
		High:       high,
		PieURL:     chartURL("success-pie", site, low, high),
		ScatterURL: chartURL("payload-scatter", site, low, high),
	}
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	page := newDashboardPage(webUI.LaunchManager.Table())

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "dashboard_index.html", page); err != nil {
		logging.FromContext(r.Context()).Error("failed to render dashboard", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
