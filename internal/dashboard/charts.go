package dashboard

import (
	"fmt"

	"launchdash.dev/internal/launches"
	"launchdash.dev/internal/models"
)

const (
	PieChartID     = "success-pie-chart"
	ScatterChartID = "success-payload-scatter-chart"

	SuccessLabel = "Success"
	FailureLabel = "Failure"
)

// SuccessPie builds the launch outcome pie chart.
//
// For AllSites there is one slice per launch site holding its number of
// successful launches. For a single site there are exactly two slices,
// Success and Failure, which add up to the launches from that site. A site
// missing from the table yields both slices at zero.
func SuccessPie(src LaunchSource, site string) models.PieFigure {
	if IsAllSites(site) {
		successes := make(map[string]int)
		for _, l := range src.Launches() {
			successes[l.LaunchSite] += l.Class
		}

		sites := src.Sites()
		slices := make([]models.PieSlice, 0, len(sites))
		for _, s := range sites {
			slices = append(slices, models.PieSlice{Label: s, Value: float64(successes[s])})
		}

		return models.PieFigure{
			ID:     PieChartID,
			Title:  "Total Success Launches By Site",
			Site:   AllSites,
			Slices: slices,
		}
	}

	var success, failure int
	for _, l := range Filter(src, Query{Site: site}) {
		if l.Succeeded() {
			success++
		} else {
			failure++
		}
	}

	return models.PieFigure{
		ID:    PieChartID,
		Title: fmt.Sprintf("Total Success and Failure Launches for site %s", site),
		Site:  site,
		Slices: []models.PieSlice{
			{Label: SuccessLabel, Value: float64(success)},
			{Label: FailureLabel, Value: float64(failure)},
		},
	}
}

// PayloadScatter builds the payload mass vs. outcome scatter chart for the
// launches with low <= payload <= high, restricted to site unless it is
// AllSites. Points are grouped by booster version category in order of first
// appearance.
func PayloadScatter(src LaunchSource, site string, low, high float64) models.ScatterFigure {
	title := "Correlation between Payload and Success for all Sites"
	figSite := AllSites
	if !IsAllSites(site) {
		title = fmt.Sprintf("Correlation between Payload and Success for site %s", site)
		figSite = site
	}

	rows := Filter(src, Query{Site: site, Payload: &PayloadRange{Low: low, High: high}})

	return models.ScatterFigure{
		ID:           ScatterChartID,
		Title:        title,
		Site:         figSite,
		PayloadRange: [2]float64{low, high},
		XAxisTitle:   launches.ColumnPayloadMass,
		YAxisTitle:   launches.ColumnClass,
		Series:       groupByCategory(rows),
	}
}

func groupByCategory(rows []launches.Launch) []models.ScatterSeries {
	series := []models.ScatterSeries{}
	index := make(map[string]int)

	for _, l := range rows {
		i, ok := index[l.BoosterVersionCategory]
		if !ok {
			i = len(series)
			index[l.BoosterVersionCategory] = i
			series = append(series, models.ScatterSeries{Name: l.BoosterVersionCategory})
		}
		series[i].Points = append(series[i].Points, models.ScatterPoint{
			PayloadMassKg:  l.PayloadMassKg,
			Class:          l.Class,
			LaunchSite:     l.LaunchSite,
			FlightNumber:   l.FlightNumber,
			BoosterVersion: l.BoosterVersion,
		})
	}

	return series
}
