package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPaletteOverlayInstallAndApply(t *testing.T) {
	overlay := NewPaletteOverlay()
	assert.False(t, overlay.Installed())

	overlay.Install("midnight", map[string]string{
		VarPrimary: "#11182b",
		VarAccent:  "#f59e0b",
	})

	assert.True(t, overlay.Installed())
	assert.Equal(t, "midnight", overlay.ThemeID())

	projected := overlay.Apply(lightPalette())
	assert.Equal(t, lipgloss.Color("#11182b"), projected.Primary)
	assert.Equal(t, lipgloss.Color("#f59e0b"), projected.Accent)
	assert.Equal(t, lightPalette().Surface, projected.Surface)
}

func TestPaletteOverlayInstallReplacesPrevious(t *testing.T) {
	overlay := NewPaletteOverlay()
	overlay.Install("first", map[string]string{VarPrimary: "#111111"})
	overlay.Install("second", map[string]string{VarAccent: "#222222"})

	assert.Equal(t, "second", overlay.ThemeID())

	projected := overlay.Apply(lightPalette())
	assert.Equal(t, lightPalette().Primary, projected.Primary)
	assert.Equal(t, lipgloss.Color("#222222"), projected.Accent)
}

func TestPaletteOverlayRemove(t *testing.T) {
	overlay := NewPaletteOverlay()
	overlay.Install("midnight", map[string]string{VarPrimary: "#11182b"})
	overlay.Remove()

	assert.False(t, overlay.Installed())
	assert.Equal(t, "", overlay.ThemeID())
	assert.Equal(t, lightPalette(), overlay.Apply(lightPalette()))
}

func TestPaletteOverlayIgnoresUnknownSlots(t *testing.T) {
	overlay := NewPaletteOverlay()
	overlay.Install("midnight", map[string]string{"shadow": "#000000"})

	assert.Equal(t, lightPalette(), overlay.Apply(lightPalette()))
}
