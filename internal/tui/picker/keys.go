package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// maxPresetHotkeys bounds the digit hotkeys; presets beyond it are still
// rendered but have no binding.
const maxPresetHotkeys = 9

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Select     key.Binding
	Preset     key.Binding
	CycleTheme key.Binding
	Accept     key.Binding
	Cancel     key.Binding
	Help       key.Binding
}

func defaultKeyMap(presetCount int) keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup", "["),
			key.WithHelp("pgup/[", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown", "]"),
			key.WithHelp("pgdn/]", "next month"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select day"),
		),
		Preset: presetBinding(presetCount),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Accept: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "accept and quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// presetBinding maps a digit hotkey to each configured preset. Without
// presets the binding is disabled and hidden from help.
func presetBinding(count int) key.Binding {
	if count > maxPresetHotkeys {
		count = maxPresetHotkeys
	}
	if count == 0 {
		binding := key.NewBinding()
		binding.SetEnabled(false)
		return binding
	}

	keys := make([]string, 0, count)
	for i := 0; i < count; i++ {
		keys = append(keys, string(rune('1'+i)))
	}

	label := "1"
	if count > 1 {
		label = fmt.Sprintf("1-%d", count)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(label, "apply preset"),
	)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Preset, k.CycleTheme, k.Cancel, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Select, k.Preset},
		{k.CycleTheme, k.Accept, k.Cancel, k.Help},
	}
}
