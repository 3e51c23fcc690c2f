package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/classify"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/tone"
)

const systemPromptTemplate = `You are an exceptionally skilled senior software developer and mentor with 15+ years of experience. You have a gift for transforming harsh, critical feedback into supportive, educational guidance that helps developers grow with confidence.

Your expertise includes:
- Deep knowledge of %s programming best practices and idioms
- Understanding of software engineering principles (performance, maintainability, readability)
- Exceptional communication skills and emotional intelligence
- Experience mentoring junior developers with patience and empathy
- Ability to explain complex technical concepts in accessible ways

Your role is to act as the ideal mentor - someone who sees potential in every developer and knows how to nurture growth through positive, constructive feedback. You understand that behind every piece of code is a human being trying to learn and improve.`

// SystemPrompt returns the mentoring persona prompt for the detected language.
func SystemPrompt(lang classify.Language) string {
	return fmt.Sprintf(systemPromptTemplate, lang)
}

// BuildUserPrompt constructs the transformation prompt. The comment list and
// severity annotations are embedded as JSON rather than free interpolation so
// that stray formatting in a comment cannot break the prompt structure.
func BuildUserPrompt(snippet string, annotations []classify.Annotation, lang classify.Language, pack tone.Pack) (string, error) {
	comments := make([]string, 0, len(annotations))
	for _, a := range annotations {
		comments = append(comments, a.Comment)
	}
	commentsJSON, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding comments: %w", err)
	}
	annotationsJSON, err := json.MarshalIndent(annotations, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding annotations: %w", err)
	}

	var b strings.Builder

	b.WriteString("I need you to transform critical code review comments into empathetic, educational feedback. The goal is to maintain the technical accuracy while making the feedback supportive and growth-oriented.\n\n")

	b.WriteString("CONTEXT:\n")
	fmt.Fprintf(&b, "- Programming Language: %s\n", lang)
	b.WriteString("- Code Snippet:\n")
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", lang, snippet)

	b.WriteString("REVIEW COMMENTS TO TRANSFORM:\n")
	b.Write(commentsJSON)
	b.WriteString("\n\n")

	b.WriteString("COMMENT SEVERITY ANALYSIS:\n")
	b.Write(annotationsJSON)
	b.WriteString("\n")

	if section := buildToneSection(annotations, lang, pack); section != "" {
		b.WriteString(section)
	}

	b.WriteString(transformationFramework)

	return b.String(), nil
}

// buildToneSection injects the phrase banks for severities that actually
// appear, plus the learning resources for the detected language.
func buildToneSection(annotations []classify.Annotation, lang classify.Language, pack tone.Pack) string {
	var b strings.Builder

	seen := make(map[classify.Severity]bool)
	for _, a := range annotations {
		if seen[a.Severity] {
			continue
		}
		seen[a.Severity] = true
		phrases, ok := pack.Empathy[a.Severity]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\nTone examples for %s comments (use phrasing in this spirit):\n", a.Severity)
		for _, p := range phrases.Intro {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	hints := pack.Hints(lang)
	if hints.StyleGuideURL != "" || hints.BestPracticesURL != "" {
		b.WriteString("\nPreferred learning resources for this language:\n")
		if hints.StyleGuideURL != "" {
			fmt.Fprintf(&b, "- Style guide: %s\n", hints.StyleGuideURL)
		}
		if hints.BestPracticesURL != "" {
			fmt.Fprintf(&b, "- Best practices: %s\n", hints.BestPracticesURL)
		}
		for _, imp := range hints.CommonImprovements {
			fmt.Fprintf(&b, "- Common improvement: %s\n", imp)
		}
	}

	return b.String()
}

const transformationFramework = `
TRANSFORMATION FRAMEWORK:

For each review comment, create a section with:

1. **Positive Rephrasing**: Transform the criticism into encouraging, supportive language
   - Acknowledge what's working well in the code
   - Frame improvements as opportunities rather than failures
   - Use "we" language to create partnership feeling
   - Adjust tone based on severity (gentle for critical, encouraging for minor)

2. **The 'Why'**: Provide clear, educational explanation of the underlying principle
   - Explain the software engineering principle being addressed
   - Connect to real-world implications (performance, maintainability, readability)
   - Use analogies or examples when helpful

3. **Suggested Improvement**: Provide concrete, working code examples
   - Show the improved version of the code
   - Explain what makes the improvement better

4. **Learning Resources**: Include 1-2 relevant documentation links or resources

5. **Contextual Adaptation**:
   - For CRITICAL severity: Use extra gentleness and reassurance
   - For MAJOR severity: Focus on the learning opportunity
   - For MINOR severity: Be encouraging and supportive
   - For STYLE severity: Frame as professional polish

ADDITIONAL REQUIREMENTS:
- Generate a holistic summary at the end that encourages continued growth
- Use encouraging language throughout
- Ensure all code examples are syntactically correct and represent best practices

Format your response as a professional Markdown report with clear sections and proper code blocks.
`
