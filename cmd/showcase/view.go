package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/showcase/internal/tui"
)

const snapshotWidth = 100

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newViewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [location]",
		Short: "Open the product detail page",
		Long: "Open the product detail page for the document at location (a file path or http(s) URL).\n" +
			"When stdout is not a terminal, a text snapshot of the loaded page is printed instead.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags, args)
		},
	}

	return cmd
}

func runView(cmd *cobra.Command, flags *rootFlags, args []string) error {
	interactive := stdoutIsTerminal()

	app, err := newAppContext(cmd, flags, args, interactive)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	if !interactive {
		return printSnapshot(cmd, app)
	}

	model := tui.NewModel(tui.Options{
		Source:  app.Source(),
		Timeout: app.Config.Timeout,
		Logger:  app.Logger,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return newCommandError("view", "running the terminal UI", err, "Run with a non-interactive stdout to print a snapshot instead.")
	}
	return nil
}

// printSnapshot loads the document and prints the first loaded frame. A load
// failure leaves the page in its loading state, exactly as the live view would.
func printSnapshot(cmd *cobra.Command, app *AppContext) error {
	entry, gal, _ := app.loadPage(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSnapshot(entry, gal, snapshotWidth))
	return nil
}
