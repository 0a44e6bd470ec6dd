package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Browse compares the two files and opens the interactive browser. No report is written.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
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

	return r.browse(ctx, result)
}
