package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/emaildiff/internal/extract"
	"github.com/desertthunder/emaildiff/internal/formatter"
	"github.com/desertthunder/emaildiff/internal/models"
	"github.com/desertthunder/emaildiff/internal/shared"
	"github.com/desertthunder/emaildiff/internal/tasks"
	"github.com/desertthunder/emaildiff/internal/ui"
	"github.com/urfave/cli/v3"
)

// Summary output styles accepted by --summary.
const (
	summaryTable = "table"
	summaryJSON  = "json"
	summaryYAML  = "yaml"
)

// Compare reads the old (first) and new (second) files, writes the comparison report and prints its path.
func (r *Runner) Compare(ctx context.Context, cmd *cli.Command) error {
	oldPath, newPath, err := fileArgs(cmd)
	if err != nil {
		return err
	}

	summary := cmd.String("summary")
	switch summary {
	case "", summaryTable, summaryJSON, summaryYAML:
	default:
		return fmt.Errorf("%w: summary %q (must be table, json or yaml)", shared.ErrInvalidFlag, summary)
	}

	config, err := r.configure(cmd)
	if err != nil {
		return err
	}

	result, err := r.run(ctx, config, oldPath, newPath)
	if err != nil {
		return err
	}

	report := formatter.NewReport(config.Report.Title, result.Old, result.New, result.Comparison, r.clock())
	path, err := formatter.WriteReport(report, config.Report.OutputDir, config.Report.Prefix, config.Report.Format)
	if err != nil {
		return err
	}

	onlyNew := len(result.Comparison.OnlyNew)
	onlyOld := len(result.Comparison.OnlyOld)
	r.logger.Info("report written", "id", report.ID, "path", path, "format", config.Report.Format)
	r.logger.Debugf("%d %s only in new file, %d only in old file",
		onlyNew, shared.Pluralize(onlyNew, "address", "addresses"), onlyOld)

	if err := r.writePlain("Comparison report saved as %s\n", path); err != nil {
		return err
	}
	if err := r.writeSummary(summary, report.Summary()); err != nil {
		return err
	}

	if cmd.Bool("open") {
		if err := r.open(path); err != nil {
			r.logger.Warn("could not open report", "path", path, "error", err)
		}
	}
	return nil
}

// run builds a pipeline from config and compares the two files.
func (r *Runner) run(ctx context.Context, config *shared.Config, oldPath, newPath string) (*tasks.Result, error) {
	extractor, err := extract.New(extract.Options{
		Marker:     config.Extract.Marker,
		AllowSpace: config.Extract.AllowSpace,
		FoldCase:   config.Extract.FoldCase,
	})
	if err != nil {
		return nil, err
	}

	pipeline := tasks.NewPipeline(tasks.PipelineOpts{Extractor: extractor, Logger: r.logger})
	return pipeline.Run(ctx, oldPath, newPath)
}

func (r *Runner) writeSummary(style string, s models.Summary) error {
	switch style {
	case summaryTable:
		return r.writePlain("%s\n", ui.SummaryTable(s))
	case summaryJSON:
		data, err := formatter.SummaryJSON(s, true)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return r.writePlain("%s\n", data)
	case summaryYAML:
		data, err := formatter.SummaryYAML(s)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	default:
		return nil
	}
}

// fileArgs returns the two positional file paths, old first.
func fileArgs(cmd *cli.Command) (string, string, error) {
	switch n := cmd.NArg(); {
	case n < 2:
		return "", "", fmt.Errorf("%w: expected <file1> <file2>, got %d", shared.ErrMissingArgument, n)
	case n > 2:
		return "", "", fmt.Errorf("%w: expected exactly two files, got %d", shared.ErrInvalidArgument, n)
	}
	return cmd.Args().Get(0), cmd.Args().Get(1), nil
}
