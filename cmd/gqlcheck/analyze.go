package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gqlcheck/internal/cache"
	"gqlcheck/internal/config"
	"gqlcheck/internal/driver"
	"gqlcheck/internal/reportfmt"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <file-or-directory>",
	Short: "Analyze GraphQL query documents",
	Long: `Analyze parses, validates and runs the analyzer passes over query
documents, reporting depth, complexity and alias violations plus
batch-wide field usage`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	analyzeCmd.Flags().Bool("metrics", false, "show per-operation metrics")
	analyzeCmd.Flags().Bool("field-usage", false, "show batch field usage counts")
	analyzeCmd.Flags().Bool("no-cache", false, "disable the report cache")
	analyzeCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	analyzeCmd.Flags().Int("max-depth", -1, "override max query depth (0 disables)")
	analyzeCmd.Flags().Int("max-complexity", -1, "override max query complexity (0 disables)")
	analyzeCmd.Flags().Int("max-aliases", -1, "override max aliases (0 disables)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	target := args[0]

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	opts.Tracer = tracer

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var reports []*driver.FileReport
	if info.IsDir() {
		jobs, _ := cmd.Flags().GetInt("jobs")
		reports, err = driver.AnalyzeDir(cmd.Context(), target, jobs, opts)
	} else {
		var report *driver.FileReport
		report, err = driver.AnalyzeFile(target, opts)
		if report != nil {
			reports = []*driver.FileReport{report}
		}
	}
	if err != nil {
		return err
	}

	if err := render(cmd, os.Stdout, reports); err != nil {
		return err
	}

	for _, r := range reports {
		if r.HasErrors() {
			// Diagnostics already rendered; fail the command quietly.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("analysis found errors")
		}
	}
	return nil
}

func buildOptions(cmd *cobra.Command) (driver.Options, error) {
	cfg, _, err := config.Discover(".")
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return driver.Options{}, err
	}

	// Flag overrides win over the manifest.
	if v, _ := cmd.Flags().GetInt("max-depth"); v >= 0 {
		cfg.Limits.MaxDepth = v
	}
	if v, _ := cmd.Flags().GetInt("max-complexity"); v >= 0 {
		cfg.Limits.MaxComplexity = v
	}
	if v, _ := cmd.Flags().GetInt("max-aliases"); v >= 0 {
		cfg.Limits.MaxAliases = v
	}
	if v, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err == nil && v > 0 {
		cfg.Limits.MaxDiagnostics = v
	}

	opts := driver.Options{Config: cfg}

	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache && cfg.Cache.Enabled {
		store, err := cache.Open("gqlcheck", cfg.Cache.Dir)
		if err == nil {
			opts.Cache = store
		}
		// A cache failure degrades to uncached operation.
	}

	opts.EnableTimings, _ = cmd.Root().PersistentFlags().GetBool("timings")
	return opts, nil
}

func render(cmd *cobra.Command, w io.Writer, reports []*driver.FileReport) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	showMetrics, _ := cmd.Flags().GetBool("metrics")
	showUsage, _ := cmd.Flags().GetBool("field-usage")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	fmtOpts := reportfmt.Options{
		Color:       useColor(cmd, os.Stdout),
		ShowMetrics: showMetrics,
		ShowUsage:   showUsage,
		Quiet:       quiet,
	}

	switch format {
	case "pretty":
		reportfmt.PrettyAll(w, reports, fmtOpts)
		return nil
	case "json":
		return reportfmt.JSON(w, reports, fmtOpts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
