package screen

import (
	"strings"

	"github.com/alexisbeaulieu97/maquette/internal/components"
	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

// Build constructs the widget tree a spec list describes.
func Build(specs []WidgetSpec) []components.Widget {
	widgets := make([]components.Widget, 0, len(specs))
	for _, spec := range specs {
		switch spec.Type {
		case "heading":
			heading := components.NewHeading(spec.Text)
			if spec.Level > 0 {
				heading = heading.WithLevel(spec.Level)
			}
			widgets = append(widgets, heading)
		case "text":
			text := components.NewText(spec.Text)
			if spec.Bold {
				text = text.Bold()
			}
			if spec.Italic {
				text = text.Italic()
			}
			if spec.Muted {
				text = text.Muted()
			}
			widgets = append(widgets, text)
		case "badge":
			widgets = append(widgets, components.NewBadge(spec.Text).
				WithVariant(components.ParseBadgeVariant(spec.Variant)))
		case "divider":
			divider := components.NewDivider()
			if spec.Width > 0 {
				divider = divider.WithWidth(spec.Width)
			}
			widgets = append(widgets, divider)
		case "card":
			card := components.NewCard(Build(spec.Children)...)
			if spec.Title != "" {
				card = card.WithTitle(spec.Title)
			}
			if spec.Width > 0 {
				card = card.WithWidth(spec.Width)
			}
			widgets = append(widgets, card)
		}
	}
	return widgets
}

// Render projects the document onto styled terminal output using p.
func Render(doc *Document, p theme.Palette) string {
	parts := []string{components.NewHeading(doc.Screen.Title).Render(p)}
	for _, widget := range Build(doc.Screen.Widgets) {
		parts = append(parts, widget.Render(p))
	}
	return strings.Join(parts, "\n")
}
