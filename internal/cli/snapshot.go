package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/snapshot"
	"github.com/rileyhilliard/sysview/internal/ui"
	"github.com/rileyhilliard/sysview/internal/util"
)

var snapshotFormat string

// statusOut receives progress output that must stay out of the report.
var statusOut io.Writer = os.Stderr

// snapshotCmd captures once and prints the result
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [category...]",
	Short: "Capture this machine's state once and print it",
	Long: `Capture the selected categories and print them to stdout.

Categories: processor (cpu), graphics (gpu), storage (disk), memory (ram),
os, network (net), sensors (temp). With no categories, an interactive
terminal asks which to capture; otherwise everything is captured.

Examples:
  sysview snapshot
  sysview snapshot cpu ram
  sysview snapshot --format yaml storage
  sysview snapshot --json`,
	ValidArgs: categoryNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd.Context(), cmd.OutOrStdout(), args, snapshotFormat)
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotFormat, "format", "f", "", "output format: text, json, or yaml (default from config)")
	rootCmd.AddCommand(snapshotCmd)
}

// pickCategories asks which categories to capture.
var pickCategories = func() ([]snapshot.Category, error) {
	options := make([]huh.Option[snapshot.Category], 0, len(snapshot.Categories))
	for _, c := range snapshot.Categories {
		options = append(options, huh.NewOption(c.Title(), c).Selected(true))
	}

	var picked []snapshot.Category
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[snapshot.Category]().
				Title("Which categories should be captured?").
				Options(options...).
				Value(&picked),
		),
	)

	if err := form.Run(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Pass categories as arguments instead, e.g. 'sysview snapshot cpu ram'")
	}
	return picked, nil
}

// snapshotCommand resolves categories and format, captures, and writes the report.
func snapshotCommand(ctx context.Context, w io.Writer, args []string, format string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	if format == "" {
		format = cfg.Output.Format
	}
	if machineMode {
		format = "json"
	}
	if err := checkFormat(format); err != nil {
		return err
	}

	categories, err := parseCategories(args)
	if err != nil {
		return err
	}
	if len(categories) == 0 && !machineMode && isInteractive() {
		if categories, err = pickCategories(); err != nil {
			return err
		}
		if len(categories) == 0 {
			return errors.New(errors.ErrConfig,
				"No categories selected",
				"Select at least one category, or pass them as arguments.")
		}
	}
	if len(categories) == 0 {
		categories = snapshot.Categories
	}

	log := logger.NewEnvLogger("[snapshot]")
	agg, err := newAggregator(cfg, log)
	if err != nil {
		return err
	}

	var spin *ui.Spinner
	if isInteractive() && !machineMode {
		spin = ui.NewSpinner(statusOut, "Capturing "+joinCategories(categories))
		spin.Start()
	}

	report := capture(ctx, agg, categories)
	if spin != nil {
		spin.Success()
	}
	return writeReport(w, report, format)
}

// report is one capture of a chosen set of categories.
type report struct {
	Snapshot   snapshot.Snapshot
	Categories []snapshot.Category
}

// capture runs every probe concurrently when all categories are wanted, and
// only the selected probes otherwise.
func capture(ctx context.Context, agg *snapshot.Aggregator, categories []snapshot.Category) report {
	if len(categories) == len(snapshot.Categories) {
		return report{Snapshot: agg.Capture(ctx), Categories: categories}
	}

	snap := snapshot.Neutral()
	for _, c := range categories {
		part := agg.CaptureCategory(ctx, c)
		snap = snap.WithCategory(c, part)
		snap.CapturedAt = part.CapturedAt
	}
	return report{Snapshot: snap, Categories: categories}
}

// document is the structured form of a report: capture time plus one
// record per selected category, keyed by category name.
func (r report) document() map[string]interface{} {
	doc := map[string]interface{}{
		"captured_at": r.Snapshot.CapturedAt.Format(time.RFC3339),
	}
	for _, c := range r.Categories {
		doc[c.String()] = record(r.Snapshot, c)
	}
	return doc
}

// record returns the sub-record of s for c.
func record(s snapshot.Snapshot, c snapshot.Category) interface{} {
	switch c {
	case snapshot.Processor:
		return s.Processor
	case snapshot.Graphics:
		return s.Graphics
	case snapshot.Storage:
		return s.Storage
	case snapshot.Memory:
		return s.Memory
	case snapshot.OSIdentity:
		return s.OS
	case snapshot.Network:
		return s.Network
	case snapshot.Sensors:
		return s.Sensors
	}
	return nil
}

// writeReport writes r in the given format.
func writeReport(w io.Writer, r report, format string) error {
	var err error
	switch format {
	case "json":
		if machineMode {
			err = WriteJSONSuccess(w, r.document())
			break
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r.document())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(r.document())
		if err == nil {
			err = enc.Close()
		}
	default:
		_, err = io.WriteString(w, renderText(r))
	}

	if err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Failed to write snapshot",
			"Check that stdout is writable")
	}
	return nil
}

// renderText renders each category's canonical text block under a heading.
func renderText(r report) string {
	var b strings.Builder
	for i, c := range r.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "== %s ==\n", c.Title())
		if text := r.Snapshot.Text(c); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// parseCategories converts arguments to categories, dropping duplicates.
func parseCategories(args []string) ([]snapshot.Category, error) {
	var out []snapshot.Category
	seen := make(map[snapshot.Category]bool)
	for _, arg := range args {
		c, err := snapshot.ParseCategory(arg)
		if err != nil || !c.Bound() {
			hint := "Use one of: " + strings.Join(categoryNames(), ", ")
			if guess := util.DidYouMean(util.SuggestSimilar(arg, categoryNames(), 2)); guess != "" {
				hint = guess + " " + hint
			}
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a category", arg),
				hint)
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

func joinCategories(categories []snapshot.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func categoryNames() []string {
	names := make([]string, 0, len(snapshot.Categories))
	for _, c := range snapshot.Categories {
		names = append(names, c.String())
	}
	return names
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown output format '%s'", format),
		"Use text, json, or yaml.")
}
