// package formatter renders comparison reports to HTML, CSV, Markdown and plain text, and writes them to disk
package formatter

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/desertthunder/emaildiff/internal/models"
	"github.com/desertthunder/emaildiff/internal/shared"
	"gopkg.in/yaml.v3"
)

// DefaultTitle heads every report unless configured otherwise.
const DefaultTitle = "Email Comparison Report"

// TimestampLayout is the local-time layout embedded in report filenames (YYYYMMDD_HHMMSS).
const TimestampLayout = "20060102_150405"

//go:embed templates/*.tmpl
var templateFiles embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFiles, "templates/report.html.tmpl"))

// Report is everything a renderer needs: the comparison plus run metadata.
type Report struct {
	ID          string
	Title       string
	GeneratedAt time.Time
	Old         models.Source
	New         models.Source
	Comparison  *models.Comparison
}

// NewReport assembles a [Report] with a fresh ID. An empty title falls back to [DefaultTitle].
func NewReport(title string, oldSrc, newSrc models.Source, c *models.Comparison, now time.Time) *Report {
	if title == "" {
		title = DefaultTitle
	}
	return &Report{
		ID:          shared.GenerateID(),
		Title:       title,
		GeneratedAt: now,
		Old:         oldSrc,
		New:         newSrc,
		Comparison:  c,
	}
}

// Summary returns the report's headline counts.
func (r *Report) Summary() models.Summary {
	return r.Comparison.Summary()
}

type htmlSection struct {
	Title   string
	Entries []models.Entry
}

type htmlView struct {
	ID        string
	Title     string
	Generated string
	OldPath   string
	NewPath   string
	Metrics   []models.Metric
	Sections  []htmlSection
}

// RenderHTML renders a self-contained HTML document with a summary table and one table per category.
func RenderHTML(r *Report) ([]byte, error) {
	view := htmlView{
		ID:        r.ID,
		Title:     r.Title,
		Generated: r.GeneratedAt.Format(time.RFC3339),
		OldPath:   r.Old.Path,
		NewPath:   r.New.Path,
		Metrics:   r.Summary().Metrics(),
	}
	for _, cat := range models.Categories {
		view.Sections = append(view.Sections, htmlSection{Title: cat.Title(), Entries: r.Comparison.Entries(cat)})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRender, err)
	}
	return buf.Bytes(), nil
}

// ExportToCSV converts a Report to CSV with columns: Category, Email, Count in New, Count in Old
func ExportToCSV(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Category", "Email", "Count in New", "Count in Old"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, cat := range models.Categories {
		for _, entry := range r.Comparison.Entries(cat) {
			record := []string{
				cat.String(),
				entry.Email,
				strconv.Itoa(entry.NewCount),
				strconv.Itoa(entry.OldCount),
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Report to Markdown with a summary table and one table per category
func ExportToMarkdown(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", r.Title))
	buf.WriteString(fmt.Sprintf("**Old file**: %s\n", r.Old.Path))
	buf.WriteString(fmt.Sprintf("**New file**: %s\n", r.New.Path))
	buf.WriteString(fmt.Sprintf("**Generated**: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	buf.WriteString("## Summary\n\n")
	buf.WriteString("| Metric | Count |\n|---|---|\n")
	for _, m := range r.Summary().Metrics() {
		buf.WriteString(fmt.Sprintf("| %s | %d |\n", m.Label, m.Count))
	}

	for _, cat := range models.Categories {
		buf.WriteString(fmt.Sprintf("\n## %s\n\n", cat.Title()))
		entries := r.Comparison.Entries(cat)
		if len(entries) == 0 {
			buf.WriteString("_None_\n")
			continue
		}
		buf.WriteString("| Email | Count in New | Count in Old |\n|---|---|---|\n")
		for _, e := range entries {
			buf.WriteString(fmt.Sprintf("| %s | %d | %d |\n", e.Email, e.NewCount, e.OldCount))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a Report to plain text
func ExportToText(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", r.Title))
	buf.WriteString(fmt.Sprintf("Old file: %s\n", r.Old.Path))
	buf.WriteString(fmt.Sprintf("New file: %s\n\n", r.New.Path))

	for _, m := range r.Summary().Metrics() {
		buf.WriteString(fmt.Sprintf("%s: %d\n", m.Label, m.Count))
	}

	for _, cat := range models.Categories {
		entries := r.Comparison.Entries(cat)
		buf.WriteString(fmt.Sprintf("\n%s (%d)\n", cat.Title(), len(entries)))
		for i, e := range entries {
			buf.WriteString(fmt.Sprintf("%d. %s (new: %d, old: %d)\n", i+1, e.Email, e.NewCount, e.OldCount))
		}
	}

	return buf.Bytes(), nil
}

// Render dispatches to the renderer for format.
func Render(r *Report, format string) ([]byte, error) {
	switch format {
	case shared.FormatHTML:
		return RenderHTML(r)
	case shared.FormatCSV:
		return ExportToCSV(r)
	case shared.FormatMarkdown:
		return ExportToMarkdown(r)
	case shared.FormatText:
		return ExportToText(r)
	default:
		return nil, fmt.Errorf("%w: unknown report format %q", shared.ErrInvalidArgument, format)
	}
}

// Extension returns the file extension (with dot) for format.
func Extension(format string) string {
	switch format {
	case shared.FormatCSV:
		return ".csv"
	case shared.FormatMarkdown:
		return ".md"
	case shared.FormatText:
		return ".txt"
	default:
		return ".html"
	}
}

// ReportFilename builds "{prefix}_YYYYMMDD_HHMMSS{ext}" from the local time t.
func ReportFilename(prefix, format string, t time.Time) string {
	return fmt.Sprintf("%s_%s%s", prefix, t.Local().Format(TimestampLayout), Extension(format))
}

// WriteReport renders r in format and writes it to dir under a timestamped name derived from r.GeneratedAt.
//
// An existing file is never overwritten: the call fails with [shared.ErrReportExists].
// A render or write failure part-way through leaves whatever was written in place.
func WriteReport(r *Report, dir, prefix, format string) (string, error) {
	data, err := Render(r, format)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, ReportFilename(prefix, format, r.GeneratedAt))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", shared.ErrReportExists, path)
		}
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close report file: %w", err)
	}

	return path, nil
}

// SummaryJSON renders the summary counts as JSON.
func SummaryJSON(s models.Summary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// SummaryYAML renders the summary counts as YAML.
func SummaryYAML(s models.Summary) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}
