// Package logging provides structured logging using Go's standard library
// log/slog, plus an adapter exposing a logger as a substitution tracer.
// Logs are emitted in JSON format.
package logging
