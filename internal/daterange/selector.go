package daterange

import "time"

// Options configures a Selector.
type Options struct {
	// MinDate and MaxDate bound the selectable days, inclusive. Nil means
	// unbounded on that side.
	MinDate *time.Time
	MaxDate *time.Time

	// WeekStartsOn picks the first column of the calendar grid:
	// 0 for Sunday, 1 for Monday.
	WeekStartsOn int

	// Locale is the BCP 47 identifier the host renders month and weekday
	// labels with. The selector itself is locale-agnostic.
	Locale string

	Presets []Preset

	// Now supplies the clock, defaulting to time.Now. Tests pin it.
	Now func() time.Time
}

// Selector is the range-selection state machine: a two-endpoint value, an
// in-progress selection endpoint, a hover preview, and the pair of
// displayed months. It performs no rendering; Classify and MonthGrid are
// the pure projections views build from.
type Selector struct {
	opts Options

	value          Range
	selectionStart *time.Time
	hovered        *time.Time
	months         [2]time.Time
	activePreset   string
}

// Snapshot captures the restorable part of a selector's state, taken when
// a picker opens so cancel can roll back.
type Snapshot struct {
	Value        Range
	ActivePreset string
}

// NewSelector creates a selector displaying the current month and the one
// after it, with an empty value.
func NewSelector(opts Options) *Selector {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WeekStartsOn != 0 && opts.WeekStartsOn != 1 {
		opts.WeekStartsOn = 0
	}
	if opts.MinDate != nil {
		min := Midnight(*opts.MinDate)
		opts.MinDate = &min
	}
	if opts.MaxDate != nil {
		max := Midnight(*opts.MaxDate)
		opts.MaxDate = &max
	}

	s := &Selector{opts: opts}
	s.alignMonths(MonthStart(opts.Now()))
	return s
}

// Value returns the current range.
func (s *Selector) Value() Range {
	return s.value
}

// SelectionStart returns the in-progress selection endpoint, nil when the
// selector is idle.
func (s *Selector) SelectionStart() *time.Time {
	return s.selectionStart
}

// Hovered returns the hover-preview date, if any.
func (s *Selector) Hovered() *time.Time {
	return s.hovered
}

// ActivePreset returns the id of the preset that produced the current
// value, or "" after any manual selection.
func (s *Selector) ActivePreset() string {
	return s.activePreset
}

// Months returns the first-of-month dates of the left and right calendars.
// The right month is always exactly one month after the left.
func (s *Selector) Months() (left, right time.Time) {
	return s.months[0], s.months[1]
}

// Locale returns the configured locale identifier.
func (s *Selector) Locale() string {
	return s.opts.Locale
}

// WeekStartsOn returns the configured first day of the week.
func (s *Selector) WeekStartsOn() int {
	return s.opts.WeekStartsOn
}

// Presets returns the configured preset list.
func (s *Selector) Presets() []Preset {
	return s.opts.Presets
}

// Disabled reports whether d falls outside the configured bounds.
func (s *Selector) Disabled(d time.Time) bool {
	d = Midnight(d)
	if s.opts.MinDate != nil && d.Before(*s.opts.MinDate) {
		return true
	}
	if s.opts.MaxDate != nil && d.After(*s.opts.MaxDate) {
		return true
	}
	return false
}

// Click advances the two-click selection. The first click starts a
// provisional selection; the second completes it with the endpoints in
// chronological order regardless of click order. Clicks on disabled days
// are ignored.
func (s *Selector) Click(d time.Time) {
	if s.Disabled(d) {
		return
	}
	d = Midnight(d)

	if s.selectionStart == nil {
		s.selectionStart = &d
		s.value = Range{From: &d}
		s.hovered = nil
		s.activePreset = ""
		return
	}

	s.value = NewRange(*s.selectionStart, d)
	s.selectionStart = nil
	s.hovered = nil
	s.activePreset = ""
}

// Hover records the preview date for an in-progress selection. Outside a
// selection, or on a disabled day, it does nothing.
func (s *Selector) Hover(d time.Time) {
	if s.selectionStart == nil || s.Disabled(d) {
		return
	}
	d = Midnight(d)
	s.hovered = &d
}

// ClearHover drops the preview date.
func (s *Selector) ClearHover() {
	s.hovered = nil
}

// ApplyPreset replaces the value with the preset's computed range,
// bypassing the two-click flow. It returns false for an unknown id.
func (s *Selector) ApplyPreset(id string) bool {
	for _, preset := range s.opts.Presets {
		if preset.ID != id {
			continue
		}

		s.value = preset.Compute().Normalize()
		s.selectionStart = nil
		s.hovered = nil
		s.activePreset = id
		s.realignToValue()
		return true
	}
	return false
}

// SetValue replaces the range wholesale, clearing any in-progress
// selection and preset marker, and realigns the displayed months to the
// new start date.
func (s *Selector) SetValue(r Range) {
	s.value = r.Normalize()
	s.selectionStart = nil
	s.hovered = nil
	s.activePreset = ""
	s.realignToValue()
}

// PrevMonth shifts both displayed months back by one. The value is never
// affected by navigation.
func (s *Selector) PrevMonth() {
	s.alignMonths(s.months[0].AddDate(0, -1, 0))
}

// NextMonth shifts both displayed months forward by one.
func (s *Selector) NextMonth() {
	s.alignMonths(s.months[0].AddDate(0, 1, 0))
}

// Snapshot captures the current value and preset marker.
func (s *Selector) Snapshot() Snapshot {
	return Snapshot{Value: s.value, ActivePreset: s.activePreset}
}

// Restore rolls the selector back to a snapshot, abandoning any selection
// in progress.
func (s *Selector) Restore(snap Snapshot) {
	s.value = snap.Value.Normalize()
	s.selectionStart = nil
	s.hovered = nil
	s.activePreset = snap.ActivePreset
	s.realignToValue()
}

func (s *Selector) realignToValue() {
	if s.value.From == nil {
		return
	}
	s.alignMonths(MonthStart(*s.value.From))
}

func (s *Selector) alignMonths(left time.Time) {
	left = MonthStart(left)
	s.months[0] = left
	s.months[1] = left.AddDate(0, 1, 0)
}
