// Package components provides the stateless, theme-aware widgets maquette
// screens are assembled from. Every widget renders against an explicit
// palette; there is no global style state, so rendering is deterministic
// and the same widget with the same palette always produces the same
// output.
package components

import "github.com/alexisbeaulieu97/maquette/internal/theme"

// Widget is anything that can project itself to styled terminal output
// using the supplied palette.
type Widget interface {
	Render(p theme.Palette) string
}
