package output

import (
	"strings"
	"testing"
	"time"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/classify"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/review"
)

func sampleReport() *review.Report {
	return &review.Report{
		GeneratedAt:  time.Date(2025, 8, 25, 10, 30, 0, 0, time.UTC),
		Language:     classify.LangPython,
		CommentCount: 3,
		Body:         "## Transformed feedback\n\nGreat start!",
		Success:      true,
		Provider:     "openai",
		Model:        "gpt-4",
		TokensUsed:   120,
		Timing:       review.Timing{LLMMs: 2300, TotalMs: 2340},
	}
}

func TestMarkdownWriter(t *testing.T) {
	var b strings.Builder
	w := &MarkdownWriter{}
	if err := w.Write(&b, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := b.String()

	checks := []string{
		"# Empathetic Code Review Report",
		"**Generated:** 2025-08-25 10:30:00",
		"**Language Detected:** Python",
		"**Comments Analyzed:** 3",
		"**Processing Time:** 2.34 seconds",
		"## Transformed feedback",
		"## Review Summary & Encouragement",
		"## Technical Details",
		"**Analysis Model:** gpt-4 (openai)",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Errorf("Markdown output missing %q", c)
		}
	}
	if strings.Contains(out, "fallback template") {
		t.Error("Successful report should not carry the fallback note")
	}
}

func TestMarkdownWriter_BodyVerbatim(t *testing.T) {
	report := sampleReport()
	report.Body = "line with *stars* and `ticks`\n\n> quoted"

	var b strings.Builder
	if err := (&MarkdownWriter{}).Write(&b, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(b.String(), report.Body) {
		t.Error("Body must appear verbatim, untransformed")
	}
}

func TestMarkdownWriter_FallbackNote(t *testing.T) {
	report := sampleReport()
	report.Success = false

	var b strings.Builder
	if err := (&MarkdownWriter{}).Write(&b, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(b.String(), "fallback template") {
		t.Error("Failed report should note the fallback template")
	}
}

func TestMarkdownWriter_EmptyBody(t *testing.T) {
	report := sampleReport()
	report.Body = ""
	report.CommentCount = 0

	var b strings.Builder
	if err := (&MarkdownWriter{}).Write(&b, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "**Comments Analyzed:** 0") {
		t.Error("Header must still report a zero comment count")
	}
	if !strings.Contains(out, "## Review Summary & Encouragement") {
		t.Error("Footer must be present even with an empty body")
	}
}

func TestMarkdownWriter_CacheNote(t *testing.T) {
	report := sampleReport()
	report.FromCache = true

	var b strings.Builder
	if err := (&MarkdownWriter{}).Write(&b, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(b.String(), "cached analysis") {
		t.Error("Cached report should note its source")
	}
}
