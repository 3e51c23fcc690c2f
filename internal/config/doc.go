// Package config handles loading and merging empath configuration.
//
// The effective config is built by layering: built-in defaults, then the JSON
// config file in the platform config directory, then EMPATH_* environment
// variables, then CLI flag overrides. The defaults mirror the sampling
// parameters the tool was tuned with (gpt-4, 3000 max tokens, temperature
// 0.4, top-p 0.9).
package config
