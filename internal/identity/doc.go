// Package identity detects byte-identical files within a single import run.
//
// Files are keyed by (streaming SHA-256 digest, size). The registry answers
// "have I seen this exact content before" without ever modifying the files it
// inspects; duplicate handling policy belongs to the caller. Note the key is
// a run-level screen only — placement decisions that overwrite or skip
// existing destination files additionally require a full byte comparison.
package identity
