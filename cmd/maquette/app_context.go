package main

import (
	"os"

	"github.com/alexisbeaulieu97/maquette/internal/events"
	"github.com/alexisbeaulieu97/maquette/internal/logger"
	"github.com/alexisbeaulieu97/maquette/internal/store"
	"github.com/alexisbeaulieu97/maquette/internal/theme"
)

// appContext carries the shared services every subcommand needs: the
// configured logger and a fully initialized theme registry.
type appContext struct {
	log      *logger.Logger
	registry *theme.Registry
}

func newAppContext(flags *rootFlags) (*appContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: os.Stderr})
	if err != nil {
		return nil, newCommandError("initialize", "creating logger", err, "Check the logging configuration and try again.")
	}

	storePath := flags.storePath
	if storePath == "" {
		storePath, err = store.DefaultPath()
		if err != nil {
			return nil, newCommandError("initialize", "determining preferences path", err, "Ensure your HOME directory is set correctly.")
		}
	}

	prefs, err := store.NewFileStore(storePath)
	if err != nil {
		return nil, newCommandError("initialize", "opening preferences store", err, "Check the store file permissions and try again.")
	}

	registry := theme.NewRegistry(theme.Options{
		Store:     prefs,
		Overlay:   theme.NewPaletteOverlay(),
		Publisher: events.NewLoggingPublisher(log),
		Logger:    log,
	})

	if flags.themeConfig != "" {
		data, err := os.ReadFile(flags.themeConfig)
		if err != nil {
			return nil, newCommandError("initialize", "reading theme configuration", err, "Check that the --theme-config path exists.")
		}
		if err := registry.LoadConfig(data); err != nil {
			return nil, newCommandError("initialize", "loading theme configuration", err, "Fix the reported configuration error and retry.")
		}
	}

	registry.Initialize()

	return &appContext{log: log, registry: registry}, nil
}
