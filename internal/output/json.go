package output

import (
	"encoding/json"
	"io"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/review"
)

// JSONWriter emits the report struct as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *review.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
