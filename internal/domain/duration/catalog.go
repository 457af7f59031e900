// Package duration maps the duration labels offered to drivers onto a length
// of time. Lookup is total: labels outside the catalog resolve to DefaultMinutes.
package duration

import "time"

const DefaultMinutes = 60

type Option struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// ordered as presented to clients
var catalog = []Option{
	{Label: "30 min", Minutes: 30},
	{Label: "1 hr", Minutes: 60},
	{Label: "2 hrs", Minutes: 120},
	{Label: "3 hrs", Minutes: 180},
	{Label: "4 hrs", Minutes: 240},
	{Label: "Full Day", Minutes: 1440},
}

var byLabel = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for _, o := range catalog {
		m[o.Label] = o.Minutes
	}
	return m
}()

func Minutes(label string) int {
	if m, ok := byLabel[label]; ok {
		return m
	}
	return DefaultMinutes
}

func For(label string) time.Duration {
	return time.Duration(Minutes(label)) * time.Minute
}

func IsKnown(label string) bool {
	_, ok := byLabel[label]
	return ok
}

func Options() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)
	return out
}
