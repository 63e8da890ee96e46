// Package logging assembles the structured slog loggers used across picflow.
//
// It centralizes level and output plumbing (including mirroring to the
// configured log directory) and exposes small Attr helpers so per-file import
// decisions are logged with a consistent shape. Prefer these constructors over
// hand-rolled slog setup.
package logging
