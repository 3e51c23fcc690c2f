package review

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/classify"
)

// Request is the validated input document.
type Request struct {
	CodeSnippet    string   `json:"code_snippet"`
	ReviewComments []string `json:"review_comments"`
}

// ValidationError describes a malformed input document. It is surfaced to the
// user before any model call and never produces an output file.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// rawRequest distinguishes missing keys from zero values during parsing.
type rawRequest struct {
	CodeSnippet    *string         `json:"code_snippet"`
	ReviewComments json.RawMessage `json:"review_comments"`
}

// ParseRequest decodes and validates the input JSON. Both keys must be
// present and review_comments must be an array (possibly empty).
func ParseRequest(data []byte) (Request, error) {
	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return Request{}, fmt.Errorf("parsing input JSON: %w", err)
	}
	if raw.CodeSnippet == nil {
		return Request{}, &ValidationError{Reason: "missing required key 'code_snippet'"}
	}
	if raw.ReviewComments == nil {
		return Request{}, &ValidationError{Reason: "missing required key 'review_comments'"}
	}
	var comments []string
	if err := json.Unmarshal(raw.ReviewComments, &comments); err != nil {
		return Request{}, &ValidationError{Reason: "'review_comments' must be an array of strings"}
	}
	if comments == nil {
		// JSON null decodes cleanly into a nil slice; reject it, a null is
		// not a sequence.
		if string(bytes.TrimSpace(raw.ReviewComments)) == "null" {
			return Request{}, &ValidationError{Reason: "'review_comments' must be an array of strings"}
		}
		comments = []string{}
	}
	return Request{
		CodeSnippet:    *raw.CodeSnippet,
		ReviewComments: comments,
	}, nil
}

// Timing contains performance metrics.
type Timing struct {
	LLMMs   int64 `json:"llmMs"`
	TotalMs int64 `json:"totalMs"`
}

// Report is the assembled review. Immutable once built; written once.
type Report struct {
	GeneratedAt  time.Time             `json:"generatedAt"`
	Language     classify.Language     `json:"language"`
	CommentCount int                   `json:"commentCount"`
	Annotations  []classify.Annotation `json:"annotations"`
	Body         string                `json:"body"`
	Success      bool                  `json:"success"`
	FromCache    bool                  `json:"fromCache"`
	Provider     string                `json:"provider"`
	Model        string                `json:"model"`
	TokensUsed   int                   `json:"tokensUsed"`
	Timing       Timing                `json:"timing"`
}
