package models

// DropdownOption is one entry of the launch site dropdown.
type DropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SliderMark labels a position on the payload slider.
type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider describes the payload range slider.
type RangeSlider struct {
	ID    string       `json:"id"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []SliderMark `json:"marks"`
	Value [2]float64   `json:"value"`
}

// Dropdown describes the launch site selector.
type Dropdown struct {
	ID          string           `json:"id"`
	Options     []DropdownOption `json:"options"`
	Value       string           `json:"value"`
	Placeholder string           `json:"placeholder"`
	Searchable  bool             `json:"searchable"`
}

// Layout is the declarative description of the dashboard page.
type Layout struct {
	Title          string      `json:"title"`
	SiteDropdown   Dropdown    `json:"siteDropdown"`
	PieChartID     string      `json:"pieChartId"`
	SliderLabel    string      `json:"sliderLabel"`
	PayloadSlider  RangeSlider `json:"payloadSlider"`
	ScatterChartID string      `json:"scatterChartId"`
}
