// Package providers implements the Completer interface for each supported
// LLM provider.
//
// Supported providers: OpenAI (GPT, the default), Anthropic (Claude), and
// Ollama / LMStudio for local models.
//
// Every adapter makes exactly one attempt per call: a failed completion is
// reported to the caller, which substitutes a fallback report instead of
// retrying. A missing credential is detected at construction time and carries
// a distinct error type so the CLI can refuse to run before any input is
// processed.
//
// HTTP endpoints are injected via a base-URL field so that tests can redirect
// calls to local httptest servers without making live API requests.
//
// Use [New] to obtain a Completer by provider name and model string.
package providers
