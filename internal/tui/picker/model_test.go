package picker

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/maquette/internal/daterange"
	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

func newPickerModel(t *testing.T) Model {
	t.Helper()

	now := func() time.Time {
		return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	}
	selector := daterange.NewSelector(daterange.Options{
		WeekStartsOn: 1,
		Now:          now,
		Presets:      daterange.DefaultPresets(now),
	})
	registry := theme.NewRegistry(theme.Options{})
	registry.Initialize()

	return NewModel(selector, registry)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func advance(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewModelCursorStartsAtDisplayedMonth(t *testing.T) {
	m := newPickerModel(t)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), m.cursor)
}

func TestUpdateWindowSize(t *testing.T) {
	m := newPickerModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	resized, ok := next.(Model)
	require.True(t, ok)
	assert.Equal(t, 120, resized.width)
	assert.Equal(t, 40, resized.height)
}

func TestCursorMovement(t *testing.T) {
	m := newPickerModel(t)

	m = advance(t, m, "right", "right", "down")
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), m.cursor)

	m = advance(t, m, "up", "left")
	assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), m.cursor)
}

func TestCursorPagesMonthsBackward(t *testing.T) {
	m := newPickerModel(t)

	m = advance(t, m, "left")
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), m.cursor)

	left, _ := m.selector.Months()
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), left)
}

func TestEnterPerformsTwoClickSelection(t *testing.T) {
	m := newPickerModel(t)

	m = advance(t, m, "enter", "right", "right", "enter")

	value := m.selector.Value()
	require.True(t, value.Complete())
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *value.From)
	assert.Equal(t, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), *value.To)
}

func TestPresetHotkeys(t *testing.T) {
	m := newPickerModel(t)

	m = advance(t, m, "1")
	assert.Equal(t, "last-7-days", m.selector.ActivePreset())
	assert.True(t, m.selector.Value().Complete())

	m = advance(t, m, "3")
	assert.Equal(t, "this-month", m.selector.ActivePreset())
}

func TestPresetHotkeysCoverAllConfiguredPresets(t *testing.T) {
	now := func() time.Time {
		return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	}
	presets := append(daterange.DefaultPresets(now), daterange.Preset{
		ID:    "year-to-date",
		Label: "Year to date",
		Compute: func() daterange.Range {
			start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
			return daterange.NewRange(start, daterange.Midnight(now()))
		},
	})
	selector := daterange.NewSelector(daterange.Options{
		WeekStartsOn: 1,
		Now:          now,
		Presets:      presets,
	})
	registry := theme.NewRegistry(theme.Options{})
	registry.Initialize()

	m := NewModel(selector, registry)
	m = advance(t, m, "5")

	assert.Equal(t, "year-to-date", m.selector.ActivePreset())
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *m.selector.Value().From)
}

func TestNoPresetBindingWithoutPresets(t *testing.T) {
	selector := daterange.NewSelector(daterange.Options{
		Now: func() time.Time {
			return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
		},
	})
	registry := theme.NewRegistry(theme.Options{})
	registry.Initialize()

	m := NewModel(selector, registry)
	assert.False(t, m.keys.Preset.Enabled())

	m = advance(t, m, "1")
	assert.Equal(t, "", m.selector.ActivePreset())
	assert.Nil(t, m.selector.Value().From)
}

func TestEscapeRestoresSnapshotAndQuits(t *testing.T) {
	m := newPickerModel(t)
	m = advance(t, m, "1")
	before := m.selector.Value()

	opened := NewModel(m.selector, m.registry)
	opened = advance(t, opened, "enter", "right", "enter")
	require.NotEqual(t, before, opened.selector.Value())

	next, cmd := opened.Update(keyMsg("esc"))
	final, ok := next.(Model)
	require.True(t, ok)
	assert.NotNil(t, cmd)
	assert.True(t, final.Canceled())
	assert.Equal(t, before, final.selector.Value())
}

func TestAcceptQuits(t *testing.T) {
	m := newPickerModel(t)

	next, cmd := m.Update(keyMsg("q"))
	final, ok := next.(Model)
	require.True(t, ok)
	assert.NotNil(t, cmd)
	assert.True(t, final.Accepted())
	assert.False(t, final.Canceled())
}

func TestCycleTheme(t *testing.T) {
	m := newPickerModel(t)
	require.Equal(t, "light", m.registry.CurrentID())

	m = advance(t, m, "t")
	assert.Equal(t, "dark", m.registry.CurrentID())

	m = advance(t, m, "t")
	assert.Equal(t, "light", m.registry.CurrentID())
}

func TestViewRendersSummaryAndPresets(t *testing.T) {
	m := newPickerModel(t)

	out := m.View()
	assert.Contains(t, out, "Select a date range")
	assert.Contains(t, out, "nothing selected")
	assert.Contains(t, out, "Last 7 days")

	m = advance(t, m, "1")
	out = m.View()
	assert.Contains(t, out, "Tue, Jan 9 2024 - Mon, Jan 15 2024")
}

func TestViewSummaryStaysASCII(t *testing.T) {
	m := newPickerModel(t)

	m = advance(t, m, "enter")
	out := m.View()
	assert.Contains(t, out, "Mon, Jan 1 2024 - ..")

	m = advance(t, m, "right", "enter")
	out = m.View()
	assert.Contains(t, out, "Mon, Jan 1 2024 - Tue, Jan 2 2024")
	assert.NotContains(t, out, "—")
	assert.NotContains(t, out, "…")
}
