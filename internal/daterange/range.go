package daterange

import "time"

// Range is an inclusive date range. Endpoints are day-granular and
// normalized to midnight; when both are set, From never follows To.
type Range struct {
	From *time.Time
	To   *time.Time
}

// NewRange builds a normalized range from two endpoints, swapping them if
// supplied out of order.
func NewRange(from, to time.Time) Range {
	from = Midnight(from)
	to = Midnight(to)
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: &from, To: &to}
}

// Normalize returns a copy with both endpoints truncated to midnight and
// swapped into chronological order when supplied reversed.
func (r Range) Normalize() Range {
	out := Range{}
	if r.From != nil {
		from := Midnight(*r.From)
		out.From = &from
	}
	if r.To != nil {
		to := Midnight(*r.To)
		out.To = &to
	}
	if out.Complete() && out.From.After(*out.To) {
		out.From, out.To = out.To, out.From
	}
	return out
}

// Complete reports whether both endpoints are set.
func (r Range) Complete() bool {
	return r.From != nil && r.To != nil
}

// Contains reports whether d falls strictly between the endpoints. It is
// always false for an incomplete range.
func (r Range) Contains(d time.Time) bool {
	if !r.Complete() {
		return false
	}
	d = Midnight(d)
	return d.After(*r.From) && d.Before(*r.To)
}

// Days returns the inclusive day count of a complete range, or 0.
func (r Range) Days() int {
	if !r.Complete() {
		return 0
	}
	return int(r.To.Sub(*r.From).Hours()/24) + 1
}

// Midnight truncates t to the start of its day, preserving the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MonthStart returns the first day of t's month at midnight.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
