package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("themes.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "themes.yaml", parseErr.Source)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "themes.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("custom_themes[1].id", "must match ^[a-z0-9_-]+$", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "custom_themes[1].id", validationErr.Field)
	require.Contains(t, validationErr.Message, "must match")
}

func TestNotFoundErrorNamesKindAndID(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("theme", "solarized")

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	require.Equal(t, "theme", notFoundErr.Kind)
	require.Equal(t, "solarized", notFoundErr.ID)
	require.Equal(t, "theme not found: solarized", err.Error())
}

func TestStoreErrorIncludesOperationContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("read-only filesystem")
	err := NewStoreError("set", "maquette.theme", underlying)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "set", storeErr.Op)
	require.Equal(t, "maquette.theme", storeErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
}
