package formatter

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/emaildiff/internal/diff"
	"github.com/desertthunder/emaildiff/internal/models"
	"github.com/desertthunder/emaildiff/internal/shared"
	th "github.com/desertthunder/emaildiff/internal/testing"
	"gopkg.in/yaml.v3"
)

func testReport() *Report {
	oldEmails := []string{"alice@example.com", "dave@example.com"}
	newEmails := []string{"alice@example.com", "alice@example.com", "bob+news@example.com"}

	return NewReport("",
		models.Source{Label: "old", Path: "old.txt", Lines: 3, Emails: oldEmails},
		models.Source{Label: "new", Path: "new.txt", Lines: 3, Emails: newEmails},
		diff.Compare(oldEmails, newEmails),
		th.FixedTime,
	)
}

func TestNewReport(t *testing.T) {
	r := testReport()

	if r.Title != DefaultTitle {
		t.Errorf("expected default title, got %q", r.Title)
	}
	if len(r.ID) != 36 {
		t.Errorf("expected uuid report id, got %q", r.ID)
	}
	if !r.GeneratedAt.Equal(th.FixedTime) {
		t.Errorf("expected generated time %v, got %v", th.FixedTime, r.GeneratedAt)
	}

	custom := NewReport("Quarterly", r.Old, r.New, r.Comparison, th.FixedTime)
	if custom.Title != "Quarterly" {
		t.Errorf("expected custom title, got %q", custom.Title)
	}
}

func TestExporters(t *testing.T) {
	t.Run("RenderHTML", func(t *testing.T) {
		data, err := RenderHTML(testReport())
		if err != nil {
			t.Fatalf("RenderHTML failed: %v", err)
		}

		output := string(data)

		for _, want := range []string{
			"<title>Email Comparison Report</title>",
			"<h2>Summary</h2>",
			"<tr><td>Total email count in new file</td><td>3</td></tr>",
			"<tr><td>Total email count in old file</td><td>2</td></tr>",
			"<tr><td>Total unique email count in new file</td><td>2</td></tr>",
			"<tr><td>Total unique email count in old file</td><td>2</td></tr>",
			"<tr><td>Emails found in both files</td><td>1</td></tr>",
			"<tr><td>Emails only in new file</td><td>1</td></tr>",
			"<tr><td>Emails only in old file</td><td>1</td></tr>",
			"<h2>Email ID found in both files</h2>",
			"<h2>Email ID found in new file but not in old file</h2>",
			"<h2>Email ID found in old file but not in new file</h2>",
			"<tr><td>alice@example.com</td><td>2</td><td>1</td></tr>",
			"<tr><td>dave@example.com</td><td>0</td><td>1</td></tr>",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("HTML missing %q", want)
			}
		}
	})

	t.Run("RenderHTML escapes addresses", func(t *testing.T) {
		data, err := RenderHTML(testReport())
		if err != nil {
			t.Fatalf("RenderHTML failed: %v", err)
		}

		output := string(data)
		if strings.Contains(output, "bob+news") {
			t.Errorf("expected + to be escaped in HTML text")
		}
		if !strings.Contains(output, "<tr><td>bob&#43;news@example.com</td><td>1</td><td>0</td></tr>") {
			t.Errorf("HTML missing escaped only-new row, got: %s", output)
		}
	})

	t.Run("RenderHTML empty categories", func(t *testing.T) {
		r := NewReport("", models.Source{Path: "a"}, models.Source{Path: "b"}, diff.Compare(nil, nil), th.FixedTime)

		data, err := RenderHTML(r)
		if err != nil {
			t.Fatalf("RenderHTML failed: %v", err)
		}

		output := string(data)
		if strings.Count(output, `colspan="3">None`) != 3 {
			t.Errorf("expected three empty listings, got: %s", output)
		}
		if !strings.Contains(output, "<tr><td>Total email count in new file</td><td>0</td></tr>") {
			t.Errorf("expected zero counts")
		}
	})

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testReport())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		want := "Category,Email,Count in New,Count in Old\n" +
			"both,alice@example.com,2,1\n" +
			"only_new,bob+news@example.com,1,0\n" +
			"only_old,dave@example.com,0,1\n"
		if string(data) != want {
			t.Errorf("unexpected CSV:\n%s", data)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(testReport())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Email Comparison Report",
			"**Old file**: old.txt",
			"| Emails found in both files | 1 |",
			"## Email ID found in both files",
			"| alice@example.com | 2 | 1 |",
			"| dave@example.com | 0 | 1 |",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q", want)
			}
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testReport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Emails only in new file: 1") {
			t.Errorf("Text missing summary line")
		}
		if !strings.Contains(output, "1. bob+news@example.com (new: 1, old: 0)") {
			t.Errorf("Text missing only-new entry, got: %s", output)
		}
	})

	t.Run("Render unknown format", func(t *testing.T) {
		if _, err := Render(testReport(), "pdf"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("idempotent output", func(t *testing.T) {
		a := testReport()
		b := testReport()
		b.ID = a.ID

		first, _ := RenderHTML(a)
		second, _ := RenderHTML(b)
		if string(first) != string(second) {
			t.Error("expected identical HTML for identical inputs")
		}
	})
}

func TestReportFilename(t *testing.T) {
	tc := []struct {
		format string
		want   string
	}{
		{format: shared.FormatHTML, want: "email_comparison_20240305_140709.html"},
		{format: shared.FormatCSV, want: "email_comparison_20240305_140709.csv"},
		{format: shared.FormatMarkdown, want: "email_comparison_20240305_140709.md"},
		{format: shared.FormatText, want: "email_comparison_20240305_140709.txt"},
	}

	for _, tt := range tc {
		t.Run(tt.format, func(t *testing.T) {
			got := ReportFilename("email_comparison", tt.format, th.FixedTime)
			if got != tt.want {
				t.Errorf("ReportFilename() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteReport(t *testing.T) {
	t.Run("writes timestamped file", func(t *testing.T) {
		dir := t.TempDir()

		path, err := WriteReport(testReport(), dir, "email_comparison", shared.FormatHTML)
		if err != nil {
			t.Fatalf("WriteReport failed: %v", err)
		}

		if path != filepath.Join(dir, "email_comparison_20240305_140709.html") {
			t.Errorf("unexpected path %s", path)
		}
		th.AssertFileExists(t, path)

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, "<h1>Email Comparison Report</h1>") {
			t.Errorf("report file missing heading")
		}
	})

	t.Run("never overwrites", func(t *testing.T) {
		dir := t.TempDir()
		existing := th.WriteFile(t, dir, "email_comparison_20240305_140709.html", []byte("keep me"))

		_, err := WriteReport(testReport(), dir, "email_comparison", shared.FormatHTML)
		if !errors.Is(err, shared.ErrReportExists) {
			t.Fatalf("expected ErrReportExists, got %v", err)
		}

		if th.MustReadFile(t, existing) != "keep me" {
			t.Error("existing report was modified")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := WriteReport(testReport(), filepath.Join(t.TempDir(), "nope"), "email_comparison", shared.FormatText)
		if err == nil {
			t.Fatal("expected error for missing output directory")
		}
		if errors.Is(err, shared.ErrReportExists) {
			t.Errorf("unexpected ErrReportExists")
		}
	})

	t.Run("empty dir defaults to working directory", func(t *testing.T) {
		dir := t.TempDir()
		th.MustChdir(t, dir)

		path, err := WriteReport(testReport(), "", "email_comparison", shared.FormatCSV)
		if err != nil {
			t.Fatalf("WriteReport failed: %v", err)
		}
		if path != "email_comparison_20240305_140709.csv" {
			t.Errorf("unexpected path %s", path)
		}
		if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
			t.Errorf("report not written in working directory: %v", err)
		}
	})
}

func TestSummaryDocuments(t *testing.T) {
	s := testReport().Summary()

	t.Run("json", func(t *testing.T) {
		data, err := SummaryJSON(s, false)
		if err != nil {
			t.Fatalf("SummaryJSON failed: %v", err)
		}

		var decoded map[string]int
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded["total_new"] != 3 || decoded["only_old"] != 1 {
			t.Errorf("unexpected JSON summary: %s", data)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := SummaryYAML(s)
		if err != nil {
			t.Fatalf("SummaryYAML failed: %v", err)
		}

		var decoded models.Summary
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		if decoded != s {
			t.Errorf("YAML summary = %+v, want %+v", decoded, s)
		}
		if !strings.Contains(string(data), "in_both: 1") {
			t.Errorf("expected snake_case keys, got: %s", data)
		}
	})
}
