package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/maquette/internal/components"
	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

// View renders the picker: calendars, the value summary, the preset row,
// and contextual help.
func (m Model) View() string {
	palette := m.registry.ActivePalette()

	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(palette.Primary).MarginBottom(1)
	content.WriteString(titleStyle.Render("Select a date range"))
	content.WriteString("\n")

	calendar := components.NewCalendar(m.selector).WithCursor(m.cursor)
	content.WriteString(calendar.Render(palette))
	content.WriteString("\n\n")

	content.WriteString(m.renderSummary(palette))
	content.WriteString("\n")
	content.WriteString(m.renderPresets(palette))
	content.WriteString("\n\n")
	content.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(content.String())
}

func (m Model) renderSummary(palette theme.Palette) string {
	const layout = "Mon, Jan 2 2006"

	value := m.selector.Value()
	label := "nothing selected"
	switch {
	case value.Complete():
		label = value.From.Format(layout) + " - " + value.To.Format(layout)
	case value.From != nil:
		label = value.From.Format(layout) + " - .."
	}

	style := lipgloss.NewStyle().Foreground(palette.OnSurface)
	if !value.Complete() {
		style = style.Foreground(palette.Muted).Italic(true)
	}
	return style.Render(label)
}

func (m Model) renderPresets(palette theme.Palette) string {
	presets := m.selector.Presets()
	if len(presets) == 0 {
		return ""
	}

	active := m.selector.ActivePreset()
	parts := make([]string, 0, len(presets))
	for i, preset := range presets {
		style := lipgloss.NewStyle().Foreground(palette.Muted)
		if preset.ID == active {
			style = style.Foreground(palette.Accent).Bold(true)
		}
		label := preset.Label
		if i < maxPresetHotkeys {
			label = string(rune('1'+i)) + " " + label
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, "   ")
}
