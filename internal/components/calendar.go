package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/maquette/internal/daterange"
	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

const calendarCellWidth = 4

// Calendar projects a range selector onto two side-by-side month grids.
// It owns no state of its own beyond an optional cursor; every visual
// decision comes from Selector.Classify.
type Calendar struct {
	selector *daterange.Selector
	cursor   *time.Time
}

// NewCalendar creates a calendar view over the given selector.
func NewCalendar(selector *daterange.Selector) *Calendar {
	return &Calendar{selector: selector}
}

// WithCursor highlights the focused day, used by the interactive picker.
func (c *Calendar) WithCursor(d time.Time) *Calendar {
	day := daterange.Midnight(d)
	c.cursor = &day
	return c
}

// ClearCursor removes the cursor highlight.
func (c *Calendar) ClearCursor() *Calendar {
	c.cursor = nil
	return c
}

// Render implements Widget.
func (c *Calendar) Render(p theme.Palette) string {
	left, right := c.selector.Months()
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		c.renderMonth(p, left),
		"  ",
		c.renderMonth(p, right),
	)
}

func (c *Calendar) renderMonth(p theme.Palette, month time.Time) string {
	width := calendarCellWidth * 7

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Width(width).
		Align(lipgloss.Center)
	header := headerStyle.Render(month.Format("January 2006"))

	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Muted)
	labels := make([]string, 0, 7)
	for _, label := range daterange.WeekdayLabels(c.selector.WeekStartsOn()) {
		labels = append(labels, padCell(label))
	}
	weekdays := labelStyle.Render(strings.Join(labels, ""))

	rows := []string{header, weekdays}
	for _, week := range daterange.MonthGrid(month, c.selector.WeekStartsOn()) {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cells = append(cells, c.renderCell(p, day, month))
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

func (c *Calendar) renderCell(p theme.Palette, day, month time.Time) string {
	state := c.selector.Classify(day, month)
	label := padCell(day.Format("2"))

	style := lipgloss.NewStyle().Foreground(p.OnSurface)
	switch {
	case state.Disabled:
		style = style.Foreground(p.Muted).Faint(true)
	case state.Selected:
		style = style.Background(p.Primary).Foreground(p.Surface).Bold(true)
	case state.Hovered:
		style = style.Background(p.Secondary).Foreground(p.Surface)
	case state.InRange:
		style = style.Foreground(p.Primary)
	case state.InHoverRange:
		style = style.Foreground(p.Secondary)
	case state.Adjacent:
		style = style.Foreground(p.Muted)
	}

	if state.Today {
		style = style.Underline(true)
	}
	if c.cursor != nil && daterange.SameDay(day, *c.cursor) {
		style = style.Background(p.Warning).Foreground(p.Surface).Bold(true)
	}

	return style.Render(label)
}

func padCell(label string) string {
	if len(label) >= calendarCellWidth {
		return label[:calendarCellWidth]
	}
	padding := calendarCellWidth - len(label)
	left := padding / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", padding-left)
}
