package daterange

import "time"

// Preset is a named generator for a ready-made range, e.g. "last 7 days".
// Compute is evaluated at application time, never cached.
type Preset struct {
	ID      string
	Label   string
	Compute func() Range
}

// DefaultPresets returns the stock preset list evaluated against now.
func DefaultPresets(now func() time.Time) []Preset {
	if now == nil {
		now = time.Now
	}

	return []Preset{
		{
			ID:    "last-7-days",
			Label: "Last 7 days",
			Compute: func() Range {
				today := Midnight(now())
				return NewRange(today.AddDate(0, 0, -6), today)
			},
		},
		{
			ID:    "last-30-days",
			Label: "Last 30 days",
			Compute: func() Range {
				today := Midnight(now())
				return NewRange(today.AddDate(0, 0, -29), today)
			},
		},
		{
			ID:    "this-month",
			Label: "This month",
			Compute: func() Range {
				start := MonthStart(now())
				return NewRange(start, start.AddDate(0, 1, -1))
			},
		},
		{
			ID:    "last-month",
			Label: "Last month",
			Compute: func() Range {
				start := MonthStart(now()).AddDate(0, -1, 0)
				return NewRange(start, start.AddDate(0, 1, -1))
			},
		},
	}
}
