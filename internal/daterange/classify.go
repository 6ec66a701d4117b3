package daterange

import "time"

// CellState is the complete render classification of one calendar cell.
// It is a pure function of selector state; computing it has no side
// effects and disabled cells are expected to receive no input handlers.
type CellState struct {
	Today        bool
	Disabled     bool
	Selected     bool
	RangeStart   bool
	RangeEnd     bool
	InRange      bool
	Hovered      bool
	InHoverRange bool

	// Adjacent marks padding cells belonging to a neighbouring month.
	Adjacent bool
}

// Classify computes the render state of the cell for date d inside the
// calendar displaying month.
func (s *Selector) Classify(d, month time.Time) CellState {
	d = Midnight(d)

	state := CellState{
		Today:    SameDay(d, s.opts.Now()),
		Disabled: s.Disabled(d),
		Adjacent: d.Month() != month.Month() || d.Year() != month.Year(),
	}

	if s.value.From != nil && SameDay(d, *s.value.From) {
		state.Selected = true
		state.RangeStart = true
	}
	if s.value.To != nil && SameDay(d, *s.value.To) {
		state.Selected = true
		state.RangeEnd = true
	}
	state.InRange = s.value.Contains(d)

	if s.selectionStart != nil && s.hovered != nil {
		if SameDay(d, *s.hovered) {
			state.Hovered = true
		}
		// The preview band is order-independent: the earlier of the two
		// endpoints is always the visual start.
		band := NewRange(*s.selectionStart, *s.hovered)
		state.InHoverRange = band.Contains(d)
	}

	return state
}
