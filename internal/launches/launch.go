package launches

import "slices"

// Launch is one row of the launch records dataset.
type Launch struct {
	FlightNumber           int     `json:"flightNumber"`
	LaunchSite             string  `json:"launchSite"`
	Class                  int     `json:"class"`
	PayloadMassKg          float64 `json:"payloadMassKg"`
	BoosterVersion         string  `json:"boosterVersion"`
	BoosterVersionCategory string  `json:"boosterVersionCategory"`
}

// Succeeded reports whether the launch outcome class is 1.
func (l Launch) Succeeded() bool {
	return l.Class == 1
}

// Table is the immutable, in-memory launch records table. It is built once by
// ParseCSV or NewTable and is safe for concurrent readers.
type Table struct {
	launches   []Launch
	sites      []string
	siteIndex  map[string]struct{}
	categories []string
	minPayload float64
	maxPayload float64
}

// NewTable builds a Table from rows in source order. The slice is copied.
func NewTable(rows []Launch) *Table {
	t := &Table{
		launches:  slices.Clone(rows),
		siteIndex: make(map[string]struct{}),
	}

	seenCategory := make(map[string]struct{})
	for i, l := range t.launches {
		if _, ok := t.siteIndex[l.LaunchSite]; !ok {
			t.siteIndex[l.LaunchSite] = struct{}{}
			t.sites = append(t.sites, l.LaunchSite)
		}
		if _, ok := seenCategory[l.BoosterVersionCategory]; !ok {
			seenCategory[l.BoosterVersionCategory] = struct{}{}
			t.categories = append(t.categories, l.BoosterVersionCategory)
		}

		if i == 0 || l.PayloadMassKg < t.minPayload {
			t.minPayload = l.PayloadMassKg
		}
		if i == 0 || l.PayloadMassKg > t.maxPayload {
			t.maxPayload = l.PayloadMassKg
		}
	}

	return t
}

// Launches returns the rows in source order. Callers must not modify the result.
func (t *Table) Launches() []Launch {
	return t.launches
}

func (t *Table) Len() int {
	return len(t.launches)
}

// Sites returns the distinct launch sites in order of first appearance.
func (t *Table) Sites() []string {
	return slices.Clone(t.sites)
}

func (t *Table) HasSite(site string) bool {
	_, ok := t.siteIndex[site]
	return ok
}

// Categories returns the distinct booster version categories in order of first appearance.
func (t *Table) Categories() []string {
	return slices.Clone(t.categories)
}

// PayloadBounds returns the smallest and largest payload mass. Both are zero for an empty table.
func (t *Table) PayloadBounds() (float64, float64) {
	return t.minPayload, t.maxPayload
}
