package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	storePath := filepath.Join(t.TempDir(), "preferences.json")

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--store", storePath}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestThemesCommand_TableOutput(t *testing.T) {
	stdout, err := executeCommand(t, "themes")
	require.NoError(t, err)

	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "dark")
	require.Contains(t, stdout, "light")
	require.Contains(t, stdout, "built-in")
}

func TestThemesCommand_JSONOutput(t *testing.T) {
	stdout, err := executeCommand(t, "themes", "--json")
	require.NoError(t, err)

	var entries []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		BuiltIn bool   `json:"built_in"`
		Active  bool   `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "dark", entries[0].ID)
	require.Equal(t, "light", entries[1].ID)
	require.True(t, entries[0].BuiltIn)
	require.True(t, entries[1].Active)
}

func TestThemesCommand_UsePersistsSelection(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "preferences.json")

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--store", storePath, "themes", "--use", "dark", "--json"})
	require.NoError(t, root.Execute())

	// A fresh invocation against the same store resolves the saved theme.
	root = newRootCmd()
	buf = &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--store", storePath, "themes", "--json"})
	require.NoError(t, root.Execute())

	var entries []struct {
		ID     string `json:"id"`
		Active bool   `json:"active"`
		Saved  bool   `json:"saved"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Equal(t, "dark", entries[0].ID)
	require.True(t, entries[0].Active)
	require.True(t, entries[0].Saved)
}

func TestThemesCommand_UseUnknownThemeFails(t *testing.T) {
	_, err := executeCommand(t, "themes", "--use", "neon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "neon")
}

func TestThemesCommand_CustomThemeFromConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "themes.yaml")
	config := `default_theme: midnight
custom_themes:
  - id: midnight
    name: Midnight
    variables:
      primary: "#11182b"
`
	writeTestFile(t, configPath, config)

	stdout, err := executeCommand(t, "--theme-config", configPath, "themes", "--json")
	require.NoError(t, err)

	var entries []struct {
		ID      string `json:"id"`
		BuiltIn bool   `json:"built_in"`
		Active  bool   `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 3)

	var found bool
	for _, entry := range entries {
		if entry.ID == "midnight" {
			found = true
			require.False(t, entry.BuiltIn)
			require.True(t, entry.Active)
		}
	}
	require.True(t, found)
}

func TestThemesCommand_InvalidConfigFails(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "themes.yaml")
	writeTestFile(t, configPath, "custom_themes:\n  - id: BAD ID\n    name: Broken\n")

	_, err := executeCommand(t, "--theme-config", configPath, "themes")
	require.Error(t, err)
}
