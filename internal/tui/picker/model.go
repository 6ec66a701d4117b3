package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/maquette/internal/daterange"
	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

// Model is the interactive date-range picker program.
type Model struct {
	selector *daterange.Selector
	registry *theme.Registry

	cursor   time.Time
	snapshot daterange.Snapshot

	keys keyMap
	help help.Model

	width    int
	height   int
	accepted bool
	canceled bool
}

// NewModel creates a picker over the supplied selector and theme
// registry. The selector's state at this moment becomes the cancel
// snapshot.
func NewModel(selector *daterange.Selector, registry *theme.Registry) Model {
	left, _ := selector.Months()
	cursor := left
	if v := selector.Value(); v.From != nil {
		cursor = *v.From
	}

	return Model{
		selector: selector,
		registry: registry,
		cursor:   cursor,
		snapshot: selector.Snapshot(),
		keys:     defaultKeyMap(len(selector.Presets())),
		help:     help.New(),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selector exposes the underlying selector, e.g. to read the accepted
// value after the program exits.
func (m Model) Selector() *daterange.Selector {
	return m.selector
}

// Accepted reports whether the picker exited via accept.
func (m Model) Accepted() bool {
	return m.accepted
}

// Canceled reports whether the picker exited via cancel, restoring the
// open-time value.
func (m Model) Canceled() bool {
	return m.canceled
}

// moveCursor shifts the focused day, paging the displayed months when the
// cursor leaves them.
func (m *Model) moveCursor(days int) {
	next := m.cursor.AddDate(0, 0, days)
	if m.selector.Disabled(next) {
		return
	}
	m.cursor = next

	left, right := m.selector.Months()
	if next.Before(left) {
		m.selector.PrevMonth()
	} else if !next.Before(right.AddDate(0, 1, 0)) {
		m.selector.NextMonth()
	}
}
