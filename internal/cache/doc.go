// Package cache provides an opt-in file-based cache for LLM responses.
//
// Entries are keyed on a SHA-256 hash of provider, model, the (redacted)
// snippet, and the comment list, so an identical request within the TTL skips
// the provider call entirely. The cache is disabled by default; nothing else
// in the tool persists state between runs.
package cache
