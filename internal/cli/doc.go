// Package cli wires together the Cobra command tree for the empath binary.
//
// It defines the root command and all subcommands (review, config, models,
// cache, version), binds flags, reads configuration, invokes the review
// engine, and returns deterministic exit codes. Validation and credential
// problems halt before any output file is written; a provider failure during
// the review does not, because the engine degrades to a fallback report.
package cli
