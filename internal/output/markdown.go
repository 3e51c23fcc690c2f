package output

import (
	"fmt"
	"io"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/review"
)

// MarkdownWriter renders the full report: metadata header, body verbatim,
// encouragement footer with a technical-details block. The body is never
// transformed here; assembly is pure templating.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *review.Report) error {
	// Header
	fmt.Fprintf(w, "# Empathetic Code Review Report\n\n")
	fmt.Fprintf(w, "**Generated:** %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "**Language Detected:** %s\n", report.Language.Display())
	fmt.Fprintf(w, "**Comments Analyzed:** %d\n", report.CommentCount)
	fmt.Fprintf(w, "**Processing Time:** %.2f seconds\n\n", float64(report.Timing.TotalMs)/1000)
	fmt.Fprintf(w, "---\n\n")

	// Body: model output or fallback, verbatim
	if report.Body != "" {
		fmt.Fprintf(w, "%s\n\n", report.Body)
	}

	// Footer
	fmt.Fprintf(w, "---\n\n")
	fmt.Fprintf(w, "## Review Summary & Encouragement\n\n")
	fmt.Fprintf(w, "This code review represents an excellent opportunity for growth and learning. Every piece of feedback is meant to help you become an even stronger developer. Remember that all experienced developers have been through similar learning experiences, and each suggestion is a stepping stone toward writing more robust, maintainable code.\n\n")
	fmt.Fprintf(w, "Keep up the great work, stay curious, and remember that coding is a journey of continuous improvement.\n\n")

	fmt.Fprintf(w, "## Technical Details\n")
	fmt.Fprintf(w, "- **Analysis Model:** %s (%s)\n", report.Model, report.Provider)
	fmt.Fprintf(w, "- **Contextual Awareness:** Severity-based tone adaptation\n")
	fmt.Fprintf(w, "- **Educational Focus:** Software engineering principles and best practices\n")
	if report.FromCache {
		fmt.Fprintf(w, "- **Source:** cached analysis\n")
	}
	if !report.Success {
		fmt.Fprintf(w, "- **Note:** generated with the fallback template; the full analysis was unavailable\n")
	}
	fmt.Fprintf(w, "\n*This empathetic analysis was generated by the Empathetic Code Reviewer, designed to transform critical feedback into constructive growth opportunities.*\n")

	return nil
}
