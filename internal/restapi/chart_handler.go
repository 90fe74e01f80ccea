package restapi

import (
	"bytes"
	"net/http"

	"launchdash.dev/internal/dashboard"
	"launchdash.dev/internal/launches"
	"launchdash.dev/internal/models"
	"launchdash.dev/internal/utils"
)

const (
	successPieChart     = "success-pie"
	payloadScatterChart = "payload-scatter"
)

type chartQuery struct {
	site string
	low  float64
	high float64
}

// parseChartQuery reads site, low and high. A missing site selects every
// site and a missing bound falls back to the dataset's payload bounds. The
// site is only compared for equality against the table, so it is taken verbatim.
func parseChartQuery(r *http.Request, table *launches.Table) (chartQuery, map[string][]string) {
	params := r.URL.Query()
	fieldErrors := make(map[string][]string)

	site := params.Get("site")
	if err := utils.ValidateSite(site); err != nil {
		fieldErrors["site"] = append(fieldErrors["site"], err.Error())
	}
	if dashboard.IsAllSites(site) {
		site = dashboard.AllSites
	}

	minPayload, maxPayload := table.PayloadBounds()
	var low, high float64
	low, fieldErrors = utils.ParseFloatParam(params, "low", minPayload, fieldErrors)
	high, fieldErrors = utils.ParseFloatParam(params, "high", maxPayload, fieldErrors)

	if _, bad := fieldErrors["low"]; !bad {
		if _, bad := fieldErrors["high"]; !bad {
			for field, errs := range utils.ValidatePayloadRange(low, high) {
				fieldErrors[field] = append(fieldErrors[field], errs...)
			}
		}
	}

	return chartQuery{site: site, low: low, high: high}, fieldErrors
}

func (api *RestAPI) chartHandler(w http.ResponseWriter, r *http.Request) {
	chartName, ext := utils.ExtractIDFromParams(r, "chart")
	if chartName != successPieChart && chartName != payloadScatterChart {
		api.sendNotFound(w, r)
		return
	}

	var format dashboard.Format
	if ext != "json" {
		var err error
		format, err = dashboard.ParseFormat(ext)
		if err != nil {
			api.sendNotFound(w, r)
			return
		}
	}

	table := api.LaunchManager.Table()
	query, fieldErrors := parseChartQuery(r, table)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if r.Context().Err() != nil {
		return
	}

	var (
		figure interface{}
		render func(*bytes.Buffer) error
	)
	switch chartName {
	case successPieChart:
		pie := dashboard.SuccessPie(table, query.site)
		figure = pie
		render = func(buf *bytes.Buffer) error { return dashboard.RenderPie(pie, format, buf) }
	case payloadScatterChart:
		scatter := dashboard.PayloadScatter(table, query.site, query.low, query.high)
		figure = scatter
		render = func(buf *bytes.Buffer) error { return dashboard.RenderScatter(scatter, format, buf) }
	}

	if ext == "json" {
		api.sendResponse(w, r, models.NewEntryResponse(figure))
		return
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendImage(w, r, format, buf.Bytes())
}
