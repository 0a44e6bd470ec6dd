// submodule cmd contains command definitions
package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/emaildiff/internal/shared"
	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

// newApp builds the root command. With two file arguments and no subcommand it runs the comparison.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "emaildiff",
		Usage:     "Compare the tagged email addresses of two files and write a report",
		Version:   version,
		ArgsUsage: "<file1> <file2>",
		Flags:     compareFlags(),
		Action:    r.Compare,
		Commands:  r.register(),
	}
}

// configFlag is repeated on every command; flags are local so a subcommand never inherits a duplicate.
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Local:   true,
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
		Sources: cli.EnvVars("EMAILDIFF_CONFIG"),
	}
}

// extractFlags control how tagged addresses are recognized.
func extractFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "marker",
			Local: true,
			Usage: "Token that must precede an address",
		},
		&cli.BoolFlag{
			Name:  "allow-space",
			Local: true,
			Usage: "Accept spaces or tabs between the marker and the address",
		},
		&cli.BoolFlag{
			Name:  "fold-case",
			Local: true,
			Usage: "Lowercase the local part as well as the domain",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Local:   true,
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars("EMAILDIFF_LOG_LEVEL"),
		},
	}
}

func compareFlags() []cli.Flag {
	return append(extractFlags(),
		&cli.StringFlag{
			Name:    "output-dir",
			Local:   true,
			Aliases: []string{"o"},
			Usage:   "Directory the report is written to",
		},
		&cli.StringFlag{
			Name:    "format",
			Local:   true,
			Aliases: []string{"f"},
			Usage:   fmt.Sprintf("Report format (%s)", strings.Join(shared.Formats, ", ")),
		},
		&cli.StringFlag{
			Name:    "summary",
			Local:   true,
			Aliases: []string{"s"},
			Usage:   "Also print the counts to stdout (table, json, yaml)",
		},
		&cli.BoolFlag{
			Name:  "open",
			Local: true,
			Usage: "Open the written report with the default viewer",
		},
	)
}

// browseCommand opens the interactive browser
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "Browse the comparison interactively without writing a report",
		ArgsUsage: "<file1> <file2>",
		Flags:     extractFlags(),
		Action:    r.Browse,
	}
}

// serveCommand serves the report over HTTP
func serveCommand(r *Runner) *cli.Command {
	flags := append(extractFlags(), &cli.StringFlag{
		Name:  "addr",
		Local: true,
		Usage: "Address to listen on",
		Value: "127.0.0.1:8080",
	})

	return &cli.Command{
		Name:      "serve",
		Usage:     "Serve the comparison report over HTTP without writing a file",
		ArgsUsage: "<file1> <file2>",
		Flags:     flags,
		Action:    r.Serve,
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration file operations",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Local:   true,
						Aliases: []string{"p"},
						Usage:   "Where to write the file",
						Value:   "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
