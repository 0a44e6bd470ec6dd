package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/emaildiff/internal/shared"
	"github.com/desertthunder/emaildiff/internal/tasks"
	"github.com/desertthunder/emaildiff/internal/ui"
	"github.com/urfave/cli/v3"
)

// BrowseFunc presents a comparison result interactively. [ui.Run] is the default.
type BrowseFunc func(ctx context.Context, result *tasks.Result) error

// OpenFunc opens a written report for viewing. [shared.OpenReport] is the default.
type OpenFunc func(path string) error

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
	clock  func() time.Time
	browse BrowseFunc
	open   OpenFunc
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
	Clock  func() time.Time
	Browse BrowseFunc
	Open   OpenFunc
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Browse == nil {
		opts.Browse = ui.Run
	}
	if opts.Open == nil {
		opts.Open = shared.OpenReport
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		clock:  opts.Clock,
		browse: opts.Browse,
		open:   opts.Open,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){browseCommand, serveCommand, configCommand} {
		commands = append(commands, fn(r))
	}

	return commands
}

// configure resolves the effective configuration for one invocation.
//
// The config file is loaded when present (or required when --config was given explicitly),
// then command-line flags override individual settings.
func (r *Runner) configure(cmd *cli.Command) (*shared.Config, error) {
	config := *r.config
	path := cmd.String("config")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := shared.LoadConfig(path)
			if err != nil {
				return nil, err
			}
			config = *loaded
			r.logger.Debug("loaded config", "path", path)
		} else if cmd.IsSet("config") {
			return nil, fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
		}
	}

	if cmd.IsSet("marker") {
		config.Extract.Marker = cmd.String("marker")
	}
	if cmd.IsSet("allow-space") {
		config.Extract.AllowSpace = cmd.Bool("allow-space")
	}
	if cmd.IsSet("fold-case") {
		config.Extract.FoldCase = cmd.Bool("fold-case")
	}
	if cmd.IsSet("output-dir") {
		config.Report.OutputDir = cmd.String("output-dir")
	}
	if cmd.IsSet("format") {
		format := cmd.String("format")
		if !shared.IsFormat(format) {
			return nil, fmt.Errorf("%w: format %q", shared.ErrInvalidFlag, format)
		}
		config.Report.Format = format
	}
	if cmd.IsSet("log-level") {
		config.Log.Level = cmd.String("log-level")
	}

	if config.Log.Level != "" {
		lvl, err := shared.ParseLogLevel(config.Log.Level)
		if err != nil {
			return nil, err
		}
		shared.SetLogLevel(r.logger, lvl)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
