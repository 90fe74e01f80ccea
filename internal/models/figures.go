package models

// PieSlice is one labelled wedge of a pie chart.
type PieSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PieFigure describes the launch outcome pie chart.
type PieFigure struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Site   string     `json:"site"`
	Slices []PieSlice `json:"slices"`
}

// Total is the sum of all slice values.
func (f PieFigure) Total() float64 {
	var total float64
	for _, s := range f.Slices {
		total += s.Value
	}
	return total
}

// ScatterPoint is one launch plotted as payload mass (x) against outcome class (y).
type ScatterPoint struct {
	PayloadMassKg  float64 `json:"x"`
	Class          int     `json:"y"`
	LaunchSite     string  `json:"launchSite"`
	FlightNumber   int     `json:"flightNumber,omitempty"`
	BoosterVersion string  `json:"boosterVersion,omitempty"`
}

// ScatterSeries groups the points of one booster version category.
type ScatterSeries struct {
	Name   string         `json:"name"`
	Points []ScatterPoint `json:"points"`
}

// ScatterFigure describes the payload vs. outcome scatter chart.
type ScatterFigure struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Site         string          `json:"site"`
	PayloadRange [2]float64      `json:"payloadRange"`
	XAxisTitle   string          `json:"xAxisTitle"`
	YAxisTitle   string          `json:"yAxisTitle"`
	Series       []ScatterSeries `json:"series"`
}

// PointCount is the number of points over all series.
func (f ScatterFigure) PointCount() int {
	n := 0
	for _, s := range f.Series {
		n += len(s.Points)
	}
	return n
}
