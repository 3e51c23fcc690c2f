package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReport_RoundTrip(t *testing.T) {
	report := sampleReport()
	path := filepath.Join(t.TempDir(), "report.md")

	written, err := WriteReport(report, "markdown", path)
	if err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	if written != path {
		t.Errorf("written path = %q, want %q", written, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	content := string(data)

	// The written file carries the literal detected language and count.
	if !strings.Contains(content, "Python") {
		t.Error("file missing detected language")
	}
	if !strings.Contains(content, "**Comments Analyzed:** 3") {
		t.Error("file missing comment count")
	}
	if !strings.HasPrefix(content, "# ") {
		t.Error("file should start with a Markdown heading")
	}
}

func TestWriteReport_JSON(t *testing.T) {
	report := sampleReport()
	path := filepath.Join(t.TempDir(), "report.json")

	if _, err := WriteReport(report, "json", path); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["language"] != "python" {
		t.Errorf("language = %v, want python", decoded["language"])
	}
	if decoded["commentCount"] != float64(3) {
		t.Errorf("commentCount = %v, want 3", decoded["commentCount"])
	}
}

func TestWriteReport_UnsupportedFormat(t *testing.T) {
	if _, err := WriteReport(sampleReport(), "sarif", ""); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriteReport_UnwritablePath(t *testing.T) {
	if _, err := WriteReport(sampleReport(), "markdown", "/nonexistent/dir/report.md"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestDefaultPath(t *testing.T) {
	report := sampleReport()

	got := DefaultPath(report, "markdown")
	want := "empathetic_review_report_20250825_103000.md"
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}

	if got := DefaultPath(report, "json"); !strings.HasSuffix(got, ".json") {
		t.Errorf("json DefaultPath = %q, want .json suffix", got)
	}
}
