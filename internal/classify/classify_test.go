package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		comment string
		want    Severity
	}{
		{"This is terrible code", SeverityCritical},
		{"This is AWFUL", SeverityCritical},
		{"Variable names are bad here", SeverityCritical},
		{"This loop is inefficient", SeverityMajor},
		{"The intent is unclear", SeverityMajor},
		{"Consider using a map", SeverityMinor},
		{"Perhaps extract a helper", SeverityMinor},
		{"Fix the indentation", SeverityStyle},
		{"Follow the naming convention", SeverityStyle},
		{"Add a unit test for this path", SeverityMinor}, // no keyword -> minor
		{"", SeverityMinor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifySeverity(tt.comment), "comment: %q", tt.comment)
	}
}

func TestClassifySeverity_PriorityOrder(t *testing.T) {
	// Matches both the critical set ("terrible") and the minor ("minor") and
	// style ("style") sets. Priority order is the only tie-break.
	got := ClassifySeverity("this is a terrible but minor style issue")
	assert.Equal(t, SeverityCritical, got)

	// Major beats minor and style.
	got = ClassifySeverity("inefficient, but consider the formatting too")
	assert.Equal(t, SeverityMajor, got)

	// Minor beats style.
	got = ClassifySeverity("consider fixing the whitespace")
	assert.Equal(t, SeverityMinor, got)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    Language
	}{
		{
			"python",
			"def get_users(data):\n    return [u for u in data if u.active]",
			LangPython,
		},
		{
			"javascript",
			"const add = (a, b) => a + b;\nconsole.log(add(1, 2));",
			LangJavaScript,
		},
		{
			"java",
			"public class Foo { public static void main(String[] a) {} }",
			LangJava,
		},
		{
			"cpp",
			"#include <iostream>\nint main() { std::cout << 1; }",
			LangCPP,
		},
		{
			"csharp",
			"using System;\nnamespace App { }",
			LangCSharp,
		},
		{
			"default python when nothing scores twice",
			"SELECT * FROM users;",
			LangPython,
		},
		{
			"empty snippet",
			"",
			LangPython,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.snippet))
		})
	}
}

func TestDetectLanguage_TieBreakOrder(t *testing.T) {
	// Scores >=2 for python ("def ", ":") before java is ever consulted, even
	// though java tokens also appear. First matching language wins.
	snippet := "def handler(): # converted from public static void main"
	assert.Equal(t, LangPython, DetectLanguage(snippet))
}

func TestRank(t *testing.T) {
	assert.Greater(t, Rank(SeverityCritical), Rank(SeverityMajor))
	assert.Greater(t, Rank(SeverityMajor), Rank(SeverityMinor))
	assert.Greater(t, Rank(SeverityMinor), Rank(SeverityStyle))
	assert.Equal(t, 0, Rank(Severity("bogus")))
}

func TestAnnotate(t *testing.T) {
	comments := []string{"this is terrible", "consider a rename", "fix formatting"}
	annotations := Annotate(comments)

	assert.Len(t, annotations, 3)
	assert.Equal(t, Annotation{Comment: "this is terrible", Severity: SeverityCritical}, annotations[0])
	assert.Equal(t, Annotation{Comment: "consider a rename", Severity: SeverityMinor}, annotations[1])
	assert.Equal(t, Annotation{Comment: "fix formatting", Severity: SeverityStyle}, annotations[2])
}

func TestAnnotate_Empty(t *testing.T) {
	assert.Empty(t, Annotate(nil))
	assert.Empty(t, Annotate([]string{}))
}

func TestLanguageDisplay(t *testing.T) {
	assert.Equal(t, "Python", LangPython.Display())
	assert.Equal(t, "C++", LangCPP.Display())
	assert.Equal(t, "C#", LangCSharp.Display())
	assert.Equal(t, "Ruby", Language("ruby").Display())
}
