package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/product"
	"github.com/alexisbeaulieu97/showcase/internal/tui"
)

const dotEnvPath = ".env"

// AppContext bundles the resolved configuration and logger of one command run.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger

	logFile io.Closer
}

// newAppContext resolves configuration for a command. A positional location
// overrides the configured source. When toFile is set, logs go to a file so
// they do not corrupt the terminal UI.
func newAppContext(cmd *cobra.Command, flags *rootFlags, args []string, toFile bool) (*AppContext, error) {
	cfg, err := config.Load(config.LoadOptions{Path: flags.configPath, DotEnvPath: dotEnvPath})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading configuration", err, "Check the configuration file and SHOWCASE_* environment variables.")
	}

	if len(args) > 0 {
		cfg.Source = args[0]
		if err := config.Validate(cfg); err != nil {
			return nil, newCommandError(cmd.Name(), "validating location", err, "Pass an http(s) URL or a path to a JSON file.")
		}
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}

	app := &AppContext{Config: cfg}

	var writer io.Writer = cmd.ErrOrStderr()
	path := flags.logFile
	if path == "" {
		path = cfg.LogFile
	}
	if path == "" && toFile {
		path = filepath.Join(os.TempDir(), "showcase.log")
	}
	if path != "" {
		f, err := logger.OpenFile(path)
		if err != nil {
			return nil, newCommandError(cmd.Name(), "opening log file", err, "Choose a writable path with --log-file.")
		}
		app.logFile = f
		writer = f
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.HumanLogs,
		Writer:        writer,
		Component:     cmd.Name(),
	})
	if err != nil {
		app.Close() //nolint:errcheck
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of trace, debug, info, warn or error as log level.")
	}
	app.Logger = log

	return app, nil
}

// Source returns the document source for the configured location.
func (a *AppContext) Source() catalog.Source {
	return catalog.NewSource(a.Config.Source, a.Config.Timeout)
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a == nil || a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// loadPage fetches the document synchronously and returns the page state
// built from it. On failure the entry is left loading and the error is
// returned alongside it.
func (a *AppContext) loadPage(ctx context.Context) (*product.Entry, *gallery.Gallery, error) {
	src := a.Source()
	entry, gal := tui.NewPage(a.Logger.WithFields(map[string]any{"location": src.Location()}))

	if a.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancel()
	}

	doc, err := catalog.Load(ctx, src)
	if err != nil {
		entry.Fail(err)
		return entry, gal, err
	}
	entry.Load(doc)
	return entry, gal, nil
}
