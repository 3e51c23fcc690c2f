// Package tone holds the phrase banks and per-language learning resources
// that steer the empathetic register of the generated feedback.
//
// The defaults are compiled in and immutable; an optional YAML pack loaded
// with --tone overlays individual entries without mutating the defaults.
package tone

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/classify"
)

// Phrases is a bank of openers and reinforcement lines for one severity.
type Phrases struct {
	Intro         []string `yaml:"intro"`
	Encouragement []string `yaml:"encouragement"`
}

// LanguageHints points the model at authoritative references for a language.
type LanguageHints struct {
	StyleGuideURL      string   `yaml:"styleGuide"`
	BestPracticesURL   string   `yaml:"bestPractices"`
	CommonImprovements []string `yaml:"commonImprovements"`
}

// Pack bundles the severity phrase banks and language hints.
type Pack struct {
	Empathy   map[classify.Severity]Phrases       `yaml:"empathy"`
	Languages map[classify.Language]LanguageHints `yaml:"languages"`
}

// Default returns the built-in pack.
func Default() Pack {
	return Pack{
		Empathy: map[classify.Severity]Phrases{
			classify.SeverityCritical: {
				Intro: []string{
					"I can see you put thought into this!",
					"Great start on tackling this problem!",
					"You're on the right track here!",
				},
				Encouragement: []string{
					"This shows good problem-solving thinking.",
					"You've got the core concept right.",
				},
			},
			classify.SeverityMajor: {
				Intro: []string{
					"Nice work on this function!",
					"I like your approach here!",
					"Good job structuring this code!",
				},
				Encouragement: []string{
					"With a small adjustment, this will be even better.",
					"You're developing good coding instincts.",
				},
			},
			classify.SeverityMinor: {
				Intro: []string{
					"This looks great!",
					"Really solid implementation!",
				},
				Encouragement: []string{
					"Just a tiny refinement to make it perfect.",
					"You're demonstrating strong coding skills.",
				},
			},
			classify.SeverityStyle: {
				Intro: []string{
					"Your logic is spot-on!",
					"You've nailed the core implementation!",
				},
				Encouragement: []string{
					"A quick style adjustment will make this shine.",
					"Your attention to detail is impressive.",
				},
			},
		},
		Languages: map[classify.Language]LanguageHints{
			classify.LangPython: {
				StyleGuideURL:    "https://peps.python.org/pep-0008/",
				BestPracticesURL: "https://docs.python.org/3/tutorial/",
				CommonImprovements: []string{
					"List comprehensions for efficiency",
					"Descriptive variable names",
					"Function documentation with docstrings",
					"Exception handling",
				},
			},
			classify.LangJavaScript: {
				StyleGuideURL:    "https://developer.mozilla.org/en-US/docs/MDN/Writing_guidelines/Writing_style_guide/Code_style_guide/JavaScript",
				BestPracticesURL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide",
				CommonImprovements: []string{
					"const/let instead of var",
					"Array methods like map/filter/reduce",
					"Proper error handling",
				},
			},
			classify.LangJava: {
				StyleGuideURL:    "https://google.github.io/styleguide/javaguide.html",
				BestPracticesURL: "https://docs.oracle.com/javase/tutorial/",
				CommonImprovements: []string{
					"Proper access modifiers",
					"Generic types for type safety",
					"Javadoc documentation",
				},
			},
			classify.LangCPP: {
				StyleGuideURL:    "https://google.github.io/styleguide/cppguide.html",
				BestPracticesURL: "https://isocpp.org/get-started",
				CommonImprovements: []string{
					"RAII and smart pointers",
					"const correctness",
					"STL container usage",
				},
			},
			classify.LangCSharp: {
				StyleGuideURL:    "https://learn.microsoft.com/en-us/dotnet/csharp/fundamentals/coding-style/coding-conventions",
				BestPracticesURL: "https://learn.microsoft.com/en-us/dotnet/csharp/",
				CommonImprovements: []string{
					"Expression-bodied members",
					"LINQ for collection pipelines",
					"XML documentation comments",
				},
			},
		},
	}
}

// Load reads a YAML pack from disk and overlays it on the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Pack, error) {
	pack := Default()
	if path == "" {
		return pack, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("reading tone pack: %w", err)
	}
	var overlay Pack
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Pack{}, fmt.Errorf("parsing tone pack: %w", err)
	}
	for sev, phrases := range overlay.Empathy {
		merged := pack.Empathy[sev]
		if len(phrases.Intro) > 0 {
			merged.Intro = phrases.Intro
		}
		if len(phrases.Encouragement) > 0 {
			merged.Encouragement = phrases.Encouragement
		}
		pack.Empathy[sev] = merged
	}
	for lang, hints := range overlay.Languages {
		merged := pack.Languages[lang]
		if hints.StyleGuideURL != "" {
			merged.StyleGuideURL = hints.StyleGuideURL
		}
		if hints.BestPracticesURL != "" {
			merged.BestPracticesURL = hints.BestPracticesURL
		}
		if len(hints.CommonImprovements) > 0 {
			merged.CommonImprovements = hints.CommonImprovements
		}
		pack.Languages[lang] = merged
	}
	return pack, nil
}

// Hints returns the hints for a language, falling back to python so that
// the prompt always carries at least one reference link.
func (p Pack) Hints(lang classify.Language) LanguageHints {
	if h, ok := p.Languages[lang]; ok {
		return h
	}
	return p.Languages[classify.LangPython]
}
