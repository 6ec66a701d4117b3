package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

// Card is a bordered container grouping child widgets under an optional
// title.
type Card struct {
	title    string
	children []Widget
	width    int
}

// NewCard creates a card around the supplied children.
func NewCard(children ...Widget) *Card {
	return &Card{children: children}
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithWidth fixes the card's inner width. Zero means natural width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// AddChild appends a child widget.
func (c *Card) AddChild(child Widget) *Card {
	c.children = append(c.children, child)
	return c
}

// Render implements Widget.
func (c *Card) Render(p theme.Palette) string {
	var parts []string
	if c.title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
		parts = append(parts, titleStyle.Render(c.title))
	}
	for _, child := range c.children {
		parts = append(parts, child.Render(p))
	}

	body := strings.Join(parts, "\n")
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)
	if c.width > 0 {
		style = style.Width(c.width)
	}
	return style.Render(body)
}

// Divider renders a horizontal separator line.
type Divider struct {
	width int
}

// NewDivider creates a divider with the default width.
func NewDivider() *Divider {
	return &Divider{width: 24}
}

// WithWidth sets the divider width.
func (d *Divider) WithWidth(width int) *Divider {
	if width > 0 {
		d.width = width
	}
	return d
}

// Render implements Widget.
func (d *Divider) Render(p theme.Palette) string {
	return lipgloss.NewStyle().
		Foreground(p.Muted).
		Render(strings.Repeat("─", d.width))
}
