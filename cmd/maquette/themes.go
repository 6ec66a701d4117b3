package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

type themesOptions struct {
	jsonOutput bool
	use        string
	clear      bool
}

func newThemesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List registered themes and manage the saved selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.use, "use", "", "Apply and persist the given theme")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Forget the saved theme selection")

	return cmd
}

func runThemes(cmd *cobra.Command, rootFlags *rootFlags, opts *themesOptions) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	if opts.clear {
		app.registry.ClearSavedTheme()
	}
	if opts.use != "" {
		if !app.registry.Apply(opts.use) {
			return newCommandError("themes", "applying theme", fmt.Errorf("unknown theme %q", opts.use), "Run 'maquette themes' to list the registered themes.")
		}
	}

	if opts.jsonOutput {
		return renderThemesJSON(cmd, app.registry)
	}
	return renderThemesTable(cmd, app.registry)
}

func renderThemesTable(cmd *cobra.Command, registry *theme.Registry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tSOURCE\tACTIVE\tSAVED")

	saved, _ := registry.SavedTheme()
	current := registry.CurrentID()

	for _, t := range registry.List() {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Name,
			themeSource(t),
			marker(t.ID == current),
			marker(t.ID == saved),
		)
	}

	return writer.Flush()
}

type themeListEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BuiltIn     bool   `json:"built_in"`
	Active      bool   `json:"active"`
	Saved       bool   `json:"saved"`
}

func renderThemesJSON(cmd *cobra.Command, registry *theme.Registry) error {
	saved, _ := registry.SavedTheme()
	current := registry.CurrentID()

	entries := make([]themeListEntry, 0)
	for _, t := range registry.List() {
		entries = append(entries, themeListEntry{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			BuiltIn:     t.BuiltIn,
			Active:      t.ID == current,
			Saved:       t.ID == saved,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func themeSource(t theme.Theme) string {
	if t.BuiltIn {
		return "built-in"
	}
	return "custom"
}

func marker(on bool) string {
	if on {
		return "*"
	}
	return ""
}
