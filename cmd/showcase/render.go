package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/render"
	"github.com/alexisbeaulieu97/showcase/pkg/diff"
)

type renderOptions struct {
	out      string
	check    bool
	markdown bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [location]",
		Short: "Write the product page as static HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.check && (opts.out == "" || opts.out == "-") {
				return newCommandError("render", "checking snapshot", errors.New("--check requires --out"), "Pass the snapshot file to compare with --out.")
			}
			return runRender(cmd, flags, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare with the existing --out file instead of writing it")
	cmd.Flags().BoolVar(&opts.markdown, "markdown-description", false, "Render the description as Markdown (overrides markdown_description in the config)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, args []string, opts *renderOptions) error {
	app, err := newAppContext(cmd, flags, args, false)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	entry, gal, err := app.loadPage(cmd.Context())
	if err != nil {
		return newCommandError("render", fmt.Sprintf("loading %s", app.Config.Source), err, "Check that the location exists and holds a valid product document.")
	}

	markdown := app.Config.MarkdownDescription
	if cmd.Flags().Changed("markdown-description") {
		markdown = opts.markdown
	}

	var page bytes.Buffer
	if err := render.HTML(&page, entry, gal, render.WithMarkdownDescription(markdown)); err != nil {
		return newCommandError("render", "writing HTML", err, "Re-run with --verbose for details.")
	}

	log := app.Logger.WithFields(map[string]any{"out": opts.out, "bytes": page.Len()})

	switch {
	case opts.check:
		existing, err := os.ReadFile(opts.out)
		if err != nil {
			return newCommandError("render", "reading snapshot", err, "Render the snapshot once without --check.")
		}
		if d := diff.Unified(existing, page.Bytes(), opts.out, "rendered"); d != "" {
			fmt.Fprint(cmd.OutOrStdout(), d)
			return newCommandError("render", "checking snapshot", fmt.Errorf("%s is out of date", opts.out), "Re-run render without --check to update it.")
		}
		log.Debug("snapshot up to date")
		return nil

	case opts.out == "" || opts.out == "-":
		_, err = cmd.OutOrStdout().Write(page.Bytes())

	default:
		err = os.WriteFile(opts.out, page.Bytes(), 0o644)
	}
	if err != nil {
		return newCommandError("render", "writing HTML", err, "Choose a writable path with --out.")
	}

	log.Debug("product page rendered")
	return nil
}
