package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultThemeID is the hard-coded fallback applied when no saved
// preference or configured default resolves to a registered theme.
const DefaultThemeID = "light"

// Theme describes a named set of styling decisions for widget rendering.
type Theme struct {
	ID          string
	Name        string
	Description string
	BuiltIn     bool

	// Variables carries style-variable overrides (slot name to colour
	// value). They are honoured only for non-built-in themes; see
	// Registry.Apply.
	Variables map[string]string

	Palette Palette
}

// Palette holds the semantic colour slots consumed by widgets.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Surface   lipgloss.Color
	OnSurface lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
}

// Variable slot names accepted in Theme.Variables and theme configuration.
const (
	VarPrimary   = "primary"
	VarSecondary = "secondary"
	VarSurface   = "surface"
	VarOnSurface = "on-surface"
	VarMuted     = "muted"
	VarAccent    = "accent"
	VarSuccess   = "success"
	VarWarning   = "warning"
	VarDanger    = "danger"
)

func lightPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#3b82f6"),
		Secondary: lipgloss.Color("#a855f7"),
		Surface:   lipgloss.Color("#f9fafb"),
		OnSurface: lipgloss.Color("#111827"),
		Muted:     lipgloss.Color("#64748b"),
		Accent:    lipgloss.Color("#06b6d4"),
		Success:   lipgloss.Color("#16a34a"),
		Warning:   lipgloss.Color("#ca8a04"),
		Danger:    lipgloss.Color("#dc2626"),
	}
}

func darkPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#60a5fa"),
		Secondary: lipgloss.Color("#c084fc"),
		Surface:   lipgloss.Color("#111827"),
		OnSurface: lipgloss.Color("#f9fafb"),
		Muted:     lipgloss.Color("#94a3b8"),
		Accent:    lipgloss.Color("#22d3ee"),
		Success:   lipgloss.Color("#4ade80"),
		Warning:   lipgloss.Color("#facc15"),
		Danger:    lipgloss.Color("#f87171"),
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return Theme{
		ID:          "light",
		Name:        "Light",
		Description: "Default light appearance",
		BuiltIn:     true,
		Palette:     lightPalette(),
	}
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	return Theme{
		ID:          "dark",
		Name:        "Dark",
		Description: "Default dark appearance",
		BuiltIn:     true,
		Palette:     darkPalette(),
	}
}

// normalizeTheme fills in a zero palette so custom themes registered with
// variables only still render with sensible base colours.
func normalizeTheme(t Theme) Theme {
	if t.Palette == (Palette{}) {
		t.Palette = lightPalette()
	}
	return t
}

// applyVariables resolves variable overrides onto a copy of the palette.
// Unknown slot names are ignored.
func applyVariables(p Palette, vars map[string]string) Palette {
	for name, value := range vars {
		colour := lipgloss.Color(value)
		switch name {
		case VarPrimary:
			p.Primary = colour
		case VarSecondary:
			p.Secondary = colour
		case VarSurface:
			p.Surface = colour
		case VarOnSurface:
			p.OnSurface = colour
		case VarMuted:
			p.Muted = colour
		case VarAccent:
			p.Accent = colour
		case VarSuccess:
			p.Success = colour
		case VarWarning:
			p.Warning = colour
		case VarDanger:
			p.Danger = colour
		}
	}
	return p
}
