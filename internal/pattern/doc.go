// Package pattern holds the static registry of built-in agent templates.
// The seven patterns (tools, model tier, system prompt) are embedded at
// build time and read-only after process start.
package pattern
