// Package manifest persists a SQLite audit log of completed placements.
//
// The manifest is append-only during an import and is read back only by the
// history command. It is a report, not state: dedup and collision decisions
// never consult it, and deleting the database loses nothing but history.
// Schema changes bump schemaVersion in schema.go; users delete the database
// to adopt the new schema.
package manifest
