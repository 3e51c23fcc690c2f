// Empath is a CLI that turns harsh code review comments into empathetic,
// educational feedback using an LLM provider.
//
// It reads a JSON input file containing a code snippet and a list of review
// comments, classifies comment severity and the snippet's language with
// keyword heuristics, and writes a Markdown report. When the provider call
// fails, a well-formed fallback report is written instead.
//
// Usage:
//
//	empath review input.json           # generate a report
//	empath config init                 # create a default config file
//	empath models list                 # list known providers and models
//	empath models doctor               # validate provider credentials
//	empath cache clear                 # clear cached responses
//
// The input file format:
//
//	{
//	  "code_snippet": "def get_users():\n    return users",
//	  "review_comments": ["This is inefficient", "Bad variable names"]
//	}
package main
