// Package output renders the assembled review report.
//
// The markdown writer wraps the report body (model output or fallback,
// verbatim) in a metadata header and an encouragement footer; the json writer
// emits the report struct for downstream tooling. Reports are written to a
// timestamped file by default.
package output
