// Package classify implements the keyword heuristics that label review
// comments with a severity and detect the programming language of a code
// snippet.
//
// Both classifiers are ordered lists of (tag, keyword-set) rules evaluated in
// a fixed priority order with early return. They are coarse substring
// heuristics, not semantic classification: a comment matching keywords from
// several severity sets gets the highest-priority set, full stop. That
// behavior is deliberate and pinned by tests.
package classify
