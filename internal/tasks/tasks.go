// package tasks runs the comparison pipeline over two input files.
//
// The core abstraction is Pipeline, which reads both files, extracts their tagged emails and compares them.
package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/emaildiff/internal/diff"
	"github.com/desertthunder/emaildiff/internal/extract"
	"github.com/desertthunder/emaildiff/internal/models"
	"github.com/desertthunder/emaildiff/internal/reader"
	"github.com/desertthunder/emaildiff/internal/shared"
)

// Result contains both inputs and their comparison.
type Result struct {
	Old        models.Source      // Old (first) file
	New        models.Source      // New (second) file
	Comparison *models.Comparison // Sets, counts and listings
}

// LineReader loads the lines of a file. [reader.ReadLines] is the default.
type LineReader func(path string) ([]string, error)

// Pipeline implements read → extract → compare for a pair of files.
type Pipeline struct {
	extractor *extract.Extractor
	readLines LineReader
	logger    *log.Logger
}

// PipelineOpts contains configuration options for creating a Pipeline.
type PipelineOpts struct {
	Extractor *extract.Extractor
	ReadLines LineReader
	Logger    *log.Logger
}

// NewPipeline creates a Pipeline, filling unset options with defaults.
func NewPipeline(opts PipelineOpts) *Pipeline {
	if opts.Extractor == nil {
		opts.Extractor = extract.Default()
	}
	if opts.ReadLines == nil {
		opts.ReadLines = reader.ReadLines
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Pipeline{
		extractor: opts.Extractor,
		readLines: opts.ReadLines,
		logger:    opts.Logger,
	}
}

// Run reads oldPath then newPath in full, extracts both and compares them.
//
// The first read error aborts the run. Cancellation is checked between phases.
func (p *Pipeline) Run(ctx context.Context, oldPath, newPath string) (*Result, error) {
	oldSrc, err := p.Load(ctx, "old", oldPath)
	if err != nil {
		return nil, err
	}

	newSrc, err := p.Load(ctx, "new", newPath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("comparing", "phase", Compare, "old", len(oldSrc.Emails), "new", len(newSrc.Emails))
	comparison := diff.Compare(oldSrc.Emails, newSrc.Emails)

	summary := comparison.Summary()
	p.logger.Info("comparison complete",
		"both", summary.InBoth,
		"only_new", summary.OnlyNew,
		"only_old", summary.OnlyOld,
	)

	return &Result{Old: oldSrc, New: newSrc, Comparison: comparison}, nil
}

// Load reads one file and extracts its emails into a [models.Source] labelled label.
func (p *Pipeline) Load(ctx context.Context, label, path string) (models.Source, error) {
	if err := ctx.Err(); err != nil {
		return models.Source{}, err
	}

	logger := shared.WithLogger(p.logger, "file", label, "path", path)

	logger.Debug("reading", "phase", Read)
	lines, err := p.readLines(path)
	if err != nil {
		return models.Source{}, fmt.Errorf("%s file: %w", label, err)
	}

	logger.Debug("extracting", "phase", Extract, "lines", len(lines))
	emails := p.extractor.Extract(lines)
	logger.Info("extracted emails", "lines", len(lines), "emails", len(emails))

	return models.Source{Label: label, Path: path, Lines: len(lines), Emails: emails}, nil
}
