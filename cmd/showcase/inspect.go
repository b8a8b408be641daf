package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
	"github.com/alexisbeaulieu97/showcase/internal/config"
)

// maxConcurrentInspections bounds parallel document fetches.
const maxConcurrentInspections = 4

type inspectOptions struct {
	jsonOutput bool
}

type inspectReport struct {
	Location string        `json:"location"`
	Name     string        `json:"name"`
	Features int           `json:"features"`
	Sizes    []inspectSize `json:"sizes"`
}

type inspectSize struct {
	Key    string         `json:"key"`
	Price  string         `json:"price"`
	Colors []inspectColor `json:"colors"`
}

type inspectColor struct {
	Key    string `json:"key"`
	Images int    `json:"images"`
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect [location...]",
		Short: "Validate product documents and summarise their variants",
		Long: "Load and validate each location (the configured source when none is given) and\n" +
			"print its sizes, prices and image counts in document order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, flags, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the summaries as a JSON array")

	return cmd
}

func runInspect(cmd *cobra.Command, flags *rootFlags, args []string, opts *inspectOptions) error {
	app, err := newAppContext(cmd, flags, nil, false)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	locations := args
	if len(locations) == 0 {
		locations = []string{app.Config.Source}
	}
	for _, location := range locations {
		if err := config.GetValidator().Var(location, "source_location"); err != nil {
			return newCommandError("inspect", fmt.Sprintf("validating location %q", location), err, "Pass an http(s) URL or a path to a JSON file.")
		}
	}

	reports, err := inspectAll(cmd.Context(), locations, app)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printInspectReport(cmd.OutOrStdout(), report)
	}
	return nil
}

// inspectAll loads every location concurrently. Reports keep argument order;
// the first failure cancels the remaining fetches.
func inspectAll(ctx context.Context, locations []string, app *AppContext) ([]inspectReport, error) {
	reports := make([]inspectReport, len(locations))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentInspections)

	for i, location := range locations {
		i, location := i, location
		eg.Go(func() error {
			src := catalog.NewSource(location, app.Config.Timeout)
			doc, err := catalog.Load(egCtx, src)
			if err != nil {
				app.Logger.WithFields(map[string]any{"location": location}).Error(err, "inspection failed")
				return newCommandError("inspect", fmt.Sprintf("loading %s", location), err, "Fix the reported field and run inspect again.")
			}
			reports[i] = newInspectReport(src.Location(), doc)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func newInspectReport(location string, doc *catalog.Document) inspectReport {
	report := inspectReport{
		Location: location,
		Name:     doc.Name,
		Features: len(doc.Features),
	}
	for _, sizeKey := range doc.Sizes.Keys() {
		entry, _ := doc.Sizes.Get(sizeKey)
		size := inspectSize{Key: sizeKey, Price: entry.Price}
		for _, colorKey := range entry.Colors.Keys() {
			images, _ := entry.Colors.Get(colorKey)
			size.Colors = append(size.Colors, inspectColor{Key: colorKey, Images: len(images)})
		}
		report.Sizes = append(report.Sizes, size)
	}
	return report
}

func printInspectReport(w io.Writer, report inspectReport) {
	fmt.Fprintf(w, "%s (%s)\n", report.Name, report.Location)
	fmt.Fprintf(w, "features: %d\n", report.Features)
	for _, size := range report.Sizes {
		colors := make([]string, 0, len(size.Colors))
		for _, c := range size.Colors {
			colors = append(colors, fmt.Sprintf("%s (%d)", c.Key, c.Images))
		}
		fmt.Fprintf(w, "  %-8s %-8s %s\n", size.Key, size.Price, strings.Join(colors, ", "))
	}
}
