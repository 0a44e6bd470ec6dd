package main

import (
	"context"

	"github.com/desertthunder/emaildiff/internal/formatter"
	"github.com/desertthunder/emaildiff/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve compares the two files and serves the report over HTTP until interrupted. No file is written.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	oldPath, newPath, err := fileArgs(cmd)
	if err != nil {
		return err
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
	r.logger.Info("report ready", "id", report.ID)

	return server.New(cmd.String("addr"), report, r.logger).Run(ctx)
}
