package webui

import (
	"bytes"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"launchdash.dev/internal/dashboard"
	"launchdash.dev/internal/launches"
	"launchdash.dev/internal/logging"
)

type debugData struct {
	Title string
	Pre   string
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// loadedFrom is the part of the launch config worth showing on the debug page.
type loadedFrom struct {
	DataURL string
	DBPath  string
	Env     string
	Verbose bool
}

type datasetSummary struct {
	Summary launches.Summary
	Config  loadedFrom
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "debug_index.html", debugData{
		Title: title,
		Pre:   dumpConfig.Sdump(data),
	})
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to render debug page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	table := webUI.LaunchManager.Table()

	switch dataType {
	case "launches":
		data = table.Launches()
		title = "Launch Records"
	case "sites":
		data = dashboard.SiteOptions(table)
		title = "Launch Sites"
	case "stats":
		stats, err := webUI.LaunchManager.SiteStats(r.Context())
		if err != nil {
			logging.FromContext(r.Context()).Error("failed to load site stats", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		data = stats
		title = "Launch Database - Site Statistics"
	case "tables":
		counts, err := webUI.LaunchManager.LaunchDB.TableCounts(r.Context())
		if err != nil {
			logging.FromContext(r.Context()).Error("failed to count table rows", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		data = counts
		title = "Launch Database - Table Row Counts"
	case "summary":
		cfg := webUI.LaunchConfig
		data = datasetSummary{
			Summary: webUI.LaunchManager.Summary(),
			Config: loadedFrom{
				DataURL: cfg.DataURL,
				DBPath:  cfg.DBPath,
				Env:     cfg.Env.String(),
				Verbose: cfg.Verbose,
			},
		}
		title = "Dataset Summary"
	default:
		data = map[string]string{
			"error": "Please use one of the following: launches, sites, stats, tables, summary.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data)
}
