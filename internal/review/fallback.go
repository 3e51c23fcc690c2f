package review

import (
	"fmt"
	"strings"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/classify"
)

// FallbackBody builds the degraded report body used when the provider call
// fails. It echoes each original comment with a supportive placeholder so the
// written file is still well-formed and useful.
func FallbackBody(snippet string, comments []string, lang classify.Language) string {
	var b strings.Builder

	b.WriteString("## Analysis Error Recovery\n\n")
	b.WriteString("I encountered an issue while generating the full empathetic analysis. Here's a basic supportive framework:\n\n")

	b.WriteString("### Code Review Comments Transformation\n\n")
	for _, comment := range comments {
		fmt.Fprintf(&b, "**Original**: %s\n", comment)
		b.WriteString("**Supportive Approach**: Let's explore how we can improve this area together.\n\n")
	}

	b.WriteString("### Code Snippet Analysis\n")
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", lang, snippet)

	b.WriteString("### Encouragement\n")
	b.WriteString("Every developer is on a learning journey, and code reviews are valuable opportunities for growth. The suggestions provided are meant to help you write even better code and develop stronger programming skills.\n\n")
	b.WriteString("*Note: This is a fallback analysis because the full AI analysis was unavailable.*\n")

	return b.String()
}
