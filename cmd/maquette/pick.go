package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/maquette/internal/daterange"
	"github.com/alexisbeaulieu97/maquette/internal/tui/picker"
)

const pickDateLayout = "2006-01-02"

type pickOptions struct {
	from      string
	to        string
	minDate   string
	maxDate   string
	weekStart int
}

func newPickCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date range interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Initial range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Initial range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.minDate, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.maxDate, "max", "", "Latest selectable date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.weekStart, "week-start", 1, "First day of the week: 0 for Sunday, 1 for Monday")

	return cmd
}

func runPick(cmd *cobra.Command, rootFlags *rootFlags, opts *pickOptions) error {
	selector, err := buildSelector(opts)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("pick", "checking the terminal", fmt.Errorf("stdout is not a terminal"), "Run the picker from an interactive terminal.")
	}

	app, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	model := picker.NewModel(selector, app.registry)
	program := tea.NewProgram(model, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return newCommandError("pick", "running the picker", err, "Check the terminal environment and try again.")
	}

	result, ok := final.(picker.Model)
	if !ok {
		return fmt.Errorf("unexpected picker model type %T", final)
	}

	if result.Canceled() {
		fmt.Fprintln(cmd.OutOrStdout(), "selection canceled")
		return nil
	}

	value := result.Selector().Value()
	if !value.Complete() {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing selected")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s - %s (%d days)\n",
		value.From.Format(pickDateLayout),
		value.To.Format(pickDateLayout),
		value.Days(),
	)
	return nil
}

func buildSelector(opts *pickOptions) (*daterange.Selector, error) {
	selectorOpts := daterange.Options{
		WeekStartsOn: opts.weekStart,
		Presets:      daterange.DefaultPresets(nil),
	}

	var err error
	if selectorOpts.MinDate, err = parsePickDate("min", opts.minDate); err != nil {
		return nil, err
	}
	if selectorOpts.MaxDate, err = parsePickDate("max", opts.maxDate); err != nil {
		return nil, err
	}

	selector := daterange.NewSelector(selectorOpts)

	from, err := parsePickDate("from", opts.from)
	if err != nil {
		return nil, err
	}
	to, err := parsePickDate("to", opts.to)
	if err != nil {
		return nil, err
	}
	if from != nil || to != nil {
		selector.SetValue(daterange.Range{From: from, To: to})
	}

	return selector, nil
}

func parsePickDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(pickDateLayout, value)
	if err != nil {
		return nil, newCommandError("pick", "parsing the --"+flag+" flag", err, "Use the YYYY-MM-DD date format.")
	}
	return &parsed, nil
}
