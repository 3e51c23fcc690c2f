// Package redact strips secret-looking strings from a code snippet before it
// is sent to an external LLM provider.
//
// Detection is regex-heuristic: API keys, bearer tokens, JWTs, private key
// blocks, and credential-looking assignments are replaced with [REDACTED].
// Redaction is on by default and can be disabled with --no-redact.
package redact
