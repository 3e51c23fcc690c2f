// Package review contains the core types and engine for transforming harsh
// review comments into empathetic, educational feedback.
//
// It validates the input document, classifies comments and the snippet via
// the classify package, assembles the mentoring prompt, calls the configured
// LLM provider exactly once, and wraps the response (or the fallback body
// when the provider fails) into a Report.
//
// The flow is strictly linear and single-threaded: validate, classify, build
// prompt, call model, assemble. A provider failure is not an error at this
// layer; it produces a Report with Success=false and a fallback body so the
// caller still writes a well-formed file.
package review
