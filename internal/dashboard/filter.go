// Package dashboard turns the launch records table into the chart and control
// descriptions shown on the dashboard page.
package dashboard

import "launchdash.dev/internal/launches"

// AllSites is the dropdown value that selects every launch site.
const AllSites = "ALL"

// LaunchSource is the read-only table the dashboard queries.
type LaunchSource interface {
	Launches() []launches.Launch
	Sites() []string
	PayloadBounds() (float64, float64)
}

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64
	High float64
}

func (r PayloadRange) Contains(massKg float64) bool {
	return massKg >= r.Low && massKg <= r.High
}

// Query selects launches by site and, optionally, payload mass.
type Query struct {
	Site    string // AllSites or "" matches every site
	Payload *PayloadRange
}

func (q Query) allSites() bool {
	return IsAllSites(q.Site)
}

// Matches reports whether l satisfies every predicate of the query.
func (q Query) Matches(l launches.Launch) bool {
	if !q.allSites() && l.LaunchSite != q.Site {
		return false
	}
	if q.Payload != nil && !q.Payload.Contains(l.PayloadMassKg) {
		return false
	}
	return true
}

// Filter returns the launches matching q in table order.
func Filter(src LaunchSource, q Query) []launches.Launch {
	matched := []launches.Launch{}
	for _, l := range src.Launches() {
		if q.Matches(l) {
			matched = append(matched, l)
		}
	}
	return matched
}

// IsAllSites reports whether site selects every launch site.
func IsAllSites(site string) bool {
	return site == "" || site == AllSites
}
