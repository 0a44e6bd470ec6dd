package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/emaildiff/internal/formatter"
	"github.com/desertthunder/emaildiff/internal/shared"
)

var _ Handler = (*ReportHandler)(nil)

// Content types per served path.
var contentTypes = map[string]string{
	"/":             "text/html; charset=utf-8",
	"/report.csv":   "text/csv; charset=utf-8",
	"/report.md":    "text/markdown; charset=utf-8",
	"/report.txt":   "text/plain; charset=utf-8",
	"/summary.json": "application/json",
	"/summary.yaml": "application/yaml",
}

// ReportHandler serves one report in every export format.
type ReportHandler struct {
	report *formatter.Report
	logger *log.Logger
}

// NewReportHandler creates a handler for report.
func NewReportHandler(report *formatter.Report, logger *log.Logger) *ReportHandler {
	return &ReportHandler{report: report, logger: logger}
}

func (h *ReportHandler) Routes() []string {
	return []string{
		"GET /{$}",
		"GET /report.csv",
		"GET /report.md",
		"GET /report.txt",
		"GET /summary.json",
		"GET /summary.yaml",
	}
}

func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, err := h.render(r.URL.Path)
	if err != nil {
		h.logger.Error("failed to render", "path", r.URL.Path, "error", err)
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypes[r.URL.Path])
	w.Header().Set("X-Report-ID", h.report.ID)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("failed to write response", "path", r.URL.Path, "error", err)
	}
}

func (h *ReportHandler) render(path string) ([]byte, error) {
	switch path {
	case "/report.csv":
		return formatter.Render(h.report, shared.FormatCSV)
	case "/report.md":
		return formatter.Render(h.report, shared.FormatMarkdown)
	case "/report.txt":
		return formatter.Render(h.report, shared.FormatText)
	case "/summary.json":
		return formatter.SummaryJSON(h.report.Summary(), true)
	case "/summary.yaml":
		return formatter.SummaryYAML(h.report.Summary())
	default:
		return formatter.Render(h.report, shared.FormatHTML)
	}
}
