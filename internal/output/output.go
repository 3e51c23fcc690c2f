package output

import (
	"fmt"
	"io"
	"os"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/review"
)

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *review.Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DefaultPath returns the timestamped default output filename for a report.
func DefaultPath(report *review.Report, format string) string {
	ext := ".md"
	if format == "json" {
		ext = ".json"
	}
	return "empathetic_review_report_" + report.GeneratedAt.Format("20060102_150405") + ext
}

// WriteReport writes the report to outPath, or to the timestamped default
// filename when outPath is empty. Returns the path written.
func WriteReport(report *review.Report, format, outPath string) (string, error) {
	writer, err := GetWriter(format)
	if err != nil {
		return "", err
	}

	if outPath == "" {
		outPath = DefaultPath(report, format)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := writer.Write(f, report); err != nil {
		return "", err
	}
	return outPath, nil
}
