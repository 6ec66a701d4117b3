package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and advances the picker state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
		m.selector.Hover(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
		m.selector.Hover(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
		m.selector.Hover(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
		m.selector.Hover(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		m.selector.PrevMonth()
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		m.selector.NextMonth()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.selector.Click(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Preset):
		presets := m.selector.Presets()
		index := int(msg.Runes[0] - '1')
		if index >= 0 && index < len(presets) {
			m.selector.ApplyPreset(presets[index].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.selector.Restore(m.snapshot)
		m.canceled = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Accept):
		m.accepted = true
		return m, tea.Quit
	}

	return m, nil
}

// cycleTheme applies the next registered theme after the current one.
func (m *Model) cycleTheme() {
	if m.registry == nil {
		return
	}

	themes := m.registry.List()
	if len(themes) == 0 {
		return
	}

	current := m.registry.CurrentID()
	next := themes[0].ID
	for i, t := range themes {
		if t.ID == current {
			next = themes[(i+1)%len(themes)].ID
			break
		}
	}
	m.registry.Apply(next)
}
