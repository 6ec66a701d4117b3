package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDanger
	BadgeVariantInfo
)

// ParseBadgeVariant maps a schema keyword to a variant, defaulting to the
// neutral variant for unknown keywords.
func ParseBadgeVariant(name string) BadgeVariant {
	switch name {
	case "success":
		return BadgeVariantSuccess
	case "warning":
		return BadgeVariantWarning
	case "danger":
		return BadgeVariantDanger
	case "info":
		return BadgeVariantInfo
	default:
		return BadgeVariantDefault
	}
}

// Badge is a small status indicator widget.
type Badge struct {
	text    string
	variant BadgeVariant
}

// NewBadge creates a badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Render implements Widget.
func (b *Badge) Render(p theme.Palette) string {
	background := p.Muted
	switch b.variant {
	case BadgeVariantSuccess:
		background = p.Success
	case BadgeVariantWarning:
		background = p.Warning
	case BadgeVariantDanger:
		background = p.Danger
	case BadgeVariantInfo:
		background = p.Accent
	}

	return lipgloss.NewStyle().
		Background(background).
		Foreground(p.Surface).
		Padding(0, 1).
		Render(b.text)
}
