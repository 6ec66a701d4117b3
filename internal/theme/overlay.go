package theme

import "sync"

// StyleOverlay is the injection point for custom-theme variable overrides.
// At most one overlay is live at a time: Install replaces the previous
// overlay wholesale, Remove tears it down. The registry installs an
// overlay whenever a non-built-in theme with variables becomes active and
// removes it when a built-in theme becomes active.
type StyleOverlay interface {
	Install(themeID string, variables map[string]string)
	Remove()
}

// PaletteOverlay is the production StyleOverlay. It keeps the installed
// variable set and projects it onto a Palette for rendering.
type PaletteOverlay struct {
	mu        sync.RWMutex
	themeID   string
	variables map[string]string
	installed bool
}

// NewPaletteOverlay creates an empty overlay.
func NewPaletteOverlay() *PaletteOverlay {
	return &PaletteOverlay{}
}

// Install replaces the live overlay with the supplied variable set.
func (o *PaletteOverlay) Install(themeID string, variables map[string]string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	copied := make(map[string]string, len(variables))
	for name, value := range variables {
		copied[name] = value
	}

	o.themeID = themeID
	o.variables = copied
	o.installed = true
}

// Remove tears down the live overlay.
func (o *PaletteOverlay) Remove() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.themeID = ""
	o.variables = nil
	o.installed = false
}

// Installed reports whether an overlay is currently live.
func (o *PaletteOverlay) Installed() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.installed
}

// ThemeID returns the id of the theme whose overlay is live, or "".
func (o *PaletteOverlay) ThemeID() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.themeID
}

// Apply projects the installed overrides onto a copy of p. Without a live
// overlay the palette passes through unchanged.
func (o *PaletteOverlay) Apply(p Palette) Palette {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.installed {
		return p
	}
	return applyVariables(p, o.variables)
}

// nopOverlay backs registries constructed without an explicit overlay.
type nopOverlay struct{}

func (nopOverlay) Install(string, map[string]string) {}
func (nopOverlay) Remove()                           {}
