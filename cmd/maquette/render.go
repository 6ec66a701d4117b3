package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/maquette/internal/screen"
)

type renderOptions struct {
	themeID string
	width   int
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <screen-file>",
		Short: "Render a mock screen file to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.themeID, "theme", "", "Theme to render with, overriding the screen file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Maximum output width (defaults to the terminal width)")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, path string) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("render", "reading screen file", err, "Check that the screen file path exists.")
	}

	doc, err := screen.ParseScreen(data)
	if err != nil {
		return newCommandError("render", "parsing screen file", err, "Fix the reported screen error and retry.")
	}

	themeID := doc.Screen.Theme
	if opts.themeID != "" {
		themeID = opts.themeID
	}
	if themeID != "" && !app.registry.Apply(themeID) {
		return newCommandError("render", "applying theme", fmt.Errorf("unknown theme %q", themeID), "Run 'maquette themes' to list the registered themes.")
	}

	output := screen.Render(doc, app.registry.ActivePalette())

	width := opts.width
	if width == 0 {
		width = outputWidth(cmd.OutOrStdout())
	}
	if width > 0 {
		output = lipgloss.NewStyle().MaxWidth(width).Render(output)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

// outputWidth reports the terminal width of writer, or 0 when the writer
// is not a terminal.
func outputWidth(writer any) int {
	file, ok := writer.(*os.File)
	if !ok {
		return 0
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
