package theme

import "github.com/muesli/termenv"

// terminalScheme queries the terminal for its background colour. The ok
// result is false when the terminal reports no colour capability at all,
// in which case callers fall back to "light".
func terminalScheme() (dark bool, ok bool) {
	if termenv.ColorProfile() == termenv.Ascii {
		return false, false
	}
	return termenv.HasDarkBackground(), true
}
