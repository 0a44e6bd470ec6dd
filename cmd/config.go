package main

import (
	"context"

	"github.com/desertthunder/emaildiff/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration. An existing file is left untouched.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("Configuration written to %s\n", path)
}
