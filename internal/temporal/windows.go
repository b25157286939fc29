// Package temporal computes multi-window uniqueness for a fingerprint: four
// independent lookback windows, a trend classification across them, and a
// one-line insight.
package temporal

import "time"

// Window labels, also used as metric label values.
const (
	LabelToday     = "today"
	LabelThisWeek  = "this_week"
	LabelThisMonth = "this_month"
	LabelAllTime   = "all_time"
)

// Window is one lookback period. A nil LowerBound means unbounded.
type Window struct {
	Label      string
	LowerBound *time.Time
}

// Windows holds the four canonical lookback windows.
type Windows struct {
	Today     Window
	ThisWeek  Window
	ThisMonth Window
	AllTime   Window
}

// PlanWindows derives the four canonical windows from a reference instant.
// Windows are always recomputed fresh per invocation, never cached.
func PlanWindows(now time.Time) Windows {
	today := now.Add(-24 * time.Hour)
	week := now.Add(-7 * 24 * time.Hour)
	month := now.Add(-30 * 24 * time.Hour)

	return Windows{
		Today:     Window{Label: LabelToday, LowerBound: &today},
		ThisWeek:  Window{Label: LabelThisWeek, LowerBound: &week},
		ThisMonth: Window{Label: LabelThisMonth, LowerBound: &month},
		AllTime:   Window{Label: LabelAllTime},
	}
}
