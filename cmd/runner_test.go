package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/emaildiff/internal/shared"
	"github.com/desertthunder/emaildiff/internal/tasks"
	tu "github.com/desertthunder/emaildiff/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(io.Discard)
			output := &bytes.Buffer{}
			browsed := false

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
				Clock:  tu.FixedClock,
				Browse: func(context.Context, *tasks.Result) error { browsed = true; return nil },
			})

			assert.Same(t, config, runner.config)
			assert.Same(t, logger, runner.logger)
			assert.Same(t, output, runner.output)
			assert.Equal(t, tu.FixedTime, runner.clock())
			require.NoError(t, runner.browse(context.Background(), nil))
			assert.True(t, browsed)
		})

		t.Run("with nil options uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			assert.NotNil(t, runner.config)
			assert.NotNil(t, runner.logger)
			assert.Equal(t, os.Stdout, runner.output)
			assert.NotNil(t, runner.clock)
			assert.NotNil(t, runner.browse)
			assert.NotNil(t, runner.open)
			assert.Equal(t, "1003EML", runner.config.Extract.Marker)
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			require.NoError(t, err)
			assert.Equal(t, "hello world", output.String())
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to write output")
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := make([]string, 0, len(commands))
		for i, cmd := range commands {
			require.NotNil(t, cmd, "command at index %d is nil", i)
			names = append(names, cmd.Name)
		}
		assert.Equal(t, []string{"browse", "serve", "config"}, names)
	})

	t.Run("newApp", func(t *testing.T) {
		app := newApp(NewRunner(RunnerOpts{}))

		assert.Equal(t, "emaildiff", app.Name)
		assert.Equal(t, version, app.Version)
		assert.NotNil(t, app.Action)

		var flags []string
		for _, f := range app.Flags {
			flags = append(flags, f.Names()...)
		}
		joined := strings.Join(flags, " ")
		for _, name := range []string{"config", "output-dir", "format", "summary", "open", "marker", "allow-space", "fold-case", "log-level"} {
			assert.Contains(t, joined, name)
		}
	})
}
