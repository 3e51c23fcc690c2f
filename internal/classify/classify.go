package classify

import "strings"

// Severity is a coarse heuristic label for how harshly a review comment reads.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
	SeverityStyle    Severity = "style"
)

// Rank returns a numeric rank for a severity (higher = harsher).
func Rank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityMajor:
		return 3
	case SeverityMinor:
		return 2
	case SeverityStyle:
		return 1
	default:
		return 0
	}
}

// Language is the detected source language of a reviewed snippet. It is used
// only to select phrasing and documentation hints, never to parse code.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangJava       Language = "java"
	LangCPP        Language = "cpp"
	LangCSharp     Language = "csharp"
)

// Display returns the human-readable form used in report headers.
func (l Language) Display() string {
	switch l {
	case LangPython:
		return "Python"
	case LangJavaScript:
		return "JavaScript"
	case LangJava:
		return "Java"
	case LangCPP:
		return "C++"
	case LangCSharp:
		return "C#"
	default:
		return strings.ToUpper(string(l)[:1]) + string(l)[1:]
	}
}

// Annotation pairs a review comment with its classified severity. Annotations
// are derived on every run and never persisted.
type Annotation struct {
	Comment  string   `json:"comment"`
	Severity Severity `json:"severity"`
}

// severityRule sets are checked in slice order; the first set with any
// case-insensitive substring match wins. Priority: critical > major > minor >
// style. Unmatched comments default to minor.
var severityRules = []struct {
	severity Severity
	keywords []string
}{
	{SeverityCritical, []string{"terrible", "awful", "wrong", "bad", "broken", "horrible", "disaster"}},
	{SeverityMajor, []string{"inefficient", "slow", "poor", "unclear", "confusing", "problematic"}},
	{SeverityMinor, []string{"consider", "could be", "might", "perhaps", "small", "minor"}},
	{SeverityStyle, []string{"format", "style", "convention", "naming", "whitespace", "indentation"}},
}

// languageRules are checked in slice order; the first language whose token
// count reaches 2 wins. The order (python, javascript, java, cpp, csharp) is
// the documented tie-break for snippets that score on several languages.
// Tokens are stored lowercase; the snippet is lowercased before matching.
var languageRules = []struct {
	language Language
	tokens   []string
}{
	{LangPython, []string{"def ", "import ", "class ", ":", "elif", "lambda"}},
	{LangJavaScript, []string{"function", "var ", "let ", "const ", "=>", "console.log"}},
	{LangJava, []string{"public class", "private ", "public ", "static ", "void main"}},
	{LangCPP, []string{"#include", "std::", "cout", "endl", "int main()"}},
	{LangCSharp, []string{"using system", "public class", "console.writeline", "namespace"}},
}

// ClassifySeverity labels a review comment by scanning the severity keyword
// sets in priority order. Comments matching no set are minor.
func ClassifySeverity(comment string) Severity {
	lower := strings.ToLower(comment)
	for _, rule := range severityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.severity
			}
		}
	}
	return SeverityMinor
}

// DetectLanguage returns the first language with at least 2 signature-token
// matches in the snippet, or python when nothing qualifies.
func DetectLanguage(snippet string) Language {
	lower := strings.ToLower(snippet)
	for _, rule := range languageRules {
		score := 0
		for _, tok := range rule.tokens {
			if strings.Contains(lower, tok) {
				score++
			}
		}
		if score >= 2 {
			return rule.language
		}
	}
	return LangPython
}

// Annotate classifies every comment, preserving input order.
func Annotate(comments []string) []Annotation {
	annotations := make([]Annotation, 0, len(comments))
	for _, c := range comments {
		annotations = append(annotations, Annotation{
			Comment:  c,
			Severity: ClassifySeverity(c),
		})
	}
	return annotations
}
