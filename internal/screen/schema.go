package screen

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/maquette/internal/theme"
	maquetteerrors "github.com/alexisbeaulieu97/maquette/pkg/errors"
)

// Document is a parsed mock-screen description.
type Document struct {
	Screen Screen `yaml:"screen" validate:"required"`
}

// Screen declares a titled list of widgets and an optional theme to
// render them with.
type Screen struct {
	Title   string       `yaml:"title" validate:"required,min=1,max=100"`
	Theme   string       `yaml:"theme,omitempty" validate:"omitempty,theme_id"`
	Widgets []WidgetSpec `yaml:"widgets" validate:"required,min=1,dive"`
}

// WidgetSpec is one declarative widget entry. Type selects the widget;
// the remaining fields apply to the types that use them.
type WidgetSpec struct {
	Type string `yaml:"type" validate:"required,oneof=heading text badge divider card"`

	Text    string `yaml:"text,omitempty"`
	Level   int    `yaml:"level,omitempty" validate:"omitempty,min=1,max=2"`
	Bold    bool   `yaml:"bold,omitempty"`
	Italic  bool   `yaml:"italic,omitempty"`
	Muted   bool   `yaml:"muted,omitempty"`
	Variant string `yaml:"variant,omitempty" validate:"omitempty,oneof=default success warning danger info"`
	Width   int    `yaml:"width,omitempty" validate:"omitempty,min=1,max=200"`
	Title   string `yaml:"title,omitempty"`

	Children []WidgetSpec `yaml:"children,omitempty" validate:"omitempty,dive"`
}

// ParseScreen decodes and validates a screen document. A document that
// fails either step is rejected whole.
func ParseScreen(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, maquetteerrors.NewParseError("screen", 0, err)
	}

	if err := theme.GetValidator().Struct(&doc); err != nil {
		return nil, maquetteerrors.NewValidationError("", "screen validation failed", err)
	}

	if err := validateWidgets("screen.widgets", doc.Screen.Widgets); err != nil {
		return nil, err
	}

	return &doc, nil
}

// validateWidgets enforces the per-type field requirements the struct
// tags cannot express.
func validateWidgets(path string, widgets []WidgetSpec) error {
	for i, w := range widgets {
		field := fmt.Sprintf("%s[%d]", path, i)

		switch w.Type {
		case "heading", "text", "badge":
			if w.Text == "" {
				return maquetteerrors.NewValidationError(field+".text", "required for "+w.Type+" widgets", nil)
			}
		case "card":
			if len(w.Children) == 0 {
				return maquetteerrors.NewValidationError(field+".children", "cards need at least one child widget", nil)
			}
			if err := validateWidgets(field+".children", w.Children); err != nil {
				return err
			}
		}
	}
	return nil
}
