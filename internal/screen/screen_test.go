package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/maquette/internal/theme"
	maquetteerrors "github.com/alexisbeaulieu97/maquette/pkg/errors"
)

const sampleScreen = `
screen:
  title: Billing overview
  theme: dark
  widgets:
    - type: heading
      text: Invoices
    - type: text
      text: 3 invoices due this week
      muted: true
    - type: badge
      text: Paid
      variant: success
    - type: divider
      width: 30
    - type: card
      title: Totals
      children:
        - type: text
          text: "$1,204.00"
          bold: true
`

func TestParseScreen(t *testing.T) {
	doc, err := ParseScreen([]byte(sampleScreen))
	require.NoError(t, err)

	assert.Equal(t, "Billing overview", doc.Screen.Title)
	assert.Equal(t, "dark", doc.Screen.Theme)
	require.Len(t, doc.Screen.Widgets, 5)
	assert.Equal(t, "card", doc.Screen.Widgets[4].Type)
	require.Len(t, doc.Screen.Widgets[4].Children, 1)
}

func TestParseScreenRejectsMalformedYAML(t *testing.T) {
	_, err := ParseScreen([]byte("screen: [broken"))
	require.Error(t, err)

	var parseErr *maquetteerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseScreenRejectsUnknownWidgetType(t *testing.T) {
	data := "screen:\n  title: T\n  widgets:\n    - type: carousel\n      text: nope\n"
	_, err := ParseScreen([]byte(data))
	require.Error(t, err)

	var validationErr *maquetteerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseScreenRequiresWidgetText(t *testing.T) {
	data := "screen:\n  title: T\n  widgets:\n    - type: badge\n"
	_, err := ParseScreen([]byte(data))
	require.Error(t, err)

	var validationErr *maquetteerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "widgets[0].text")
}

func TestParseScreenRequiresCardChildren(t *testing.T) {
	data := "screen:\n  title: T\n  widgets:\n    - type: card\n      title: Empty\n"
	_, err := ParseScreen([]byte(data))
	require.Error(t, err)

	var validationErr *maquetteerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "children")
}

func TestParseScreenValidatesNestedChildren(t *testing.T) {
	data := `
screen:
  title: T
  widgets:
    - type: card
      children:
        - type: text
`
	_, err := ParseScreen([]byte(data))
	require.Error(t, err)

	var validationErr *maquetteerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "children[0].text")
}

func TestRenderContainsEveryWidget(t *testing.T) {
	doc, err := ParseScreen([]byte(sampleScreen))
	require.NoError(t, err)

	out := Render(doc, theme.DarkTheme().Palette)
	assert.Contains(t, out, "Billing overview")
	assert.Contains(t, out, "Invoices")
	assert.Contains(t, out, "3 invoices due this week")
	assert.Contains(t, out, "Paid")
	assert.Contains(t, out, "Totals")
	assert.Contains(t, out, "$1,204.00")
}

func TestBuildSkipsNothingForValidSpecs(t *testing.T) {
	doc, err := ParseScreen([]byte(sampleScreen))
	require.NoError(t, err)

	widgets := Build(doc.Screen.Widgets)
	assert.Len(t, widgets, 5)
}
