package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

// Text is the primitive widget for styled text content.
type Text struct {
	content string
	bold    bool
	italic  bool
	muted   bool
}

// NewText creates a text widget with the given content.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Bold renders the text in bold.
func (t *Text) Bold() *Text {
	t.bold = true
	return t
}

// Italic renders the text in italics.
func (t *Text) Italic() *Text {
	t.italic = true
	return t
}

// Muted renders the text in the palette's muted colour.
func (t *Text) Muted() *Text {
	t.muted = true
	return t
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// Render implements Widget.
func (t *Text) Render(p theme.Palette) string {
	style := lipgloss.NewStyle().Foreground(p.OnSurface)
	if t.muted {
		style = style.Foreground(p.Muted)
	}
	if t.bold {
		style = style.Bold(true)
	}
	if t.italic {
		style = style.Italic(true)
	}
	return style.Render(t.content)
}

// Heading is a title widget rendered in the primary colour.
type Heading struct {
	content string
	level   int
}

// NewHeading creates a level-1 heading.
func NewHeading(content string) *Heading {
	return &Heading{content: content, level: 1}
}

// WithLevel sets the heading level (1 or 2).
func (h *Heading) WithLevel(level int) *Heading {
	if level < 1 {
		level = 1
	}
	if level > 2 {
		level = 2
	}
	h.level = level
	return h
}

// Render implements Widget.
func (h *Heading) Render(p theme.Palette) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	if h.level > 1 {
		style = style.Foreground(p.Secondary)
	}
	return style.Render(h.content)
}
