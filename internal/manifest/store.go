package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages manifest persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the manifest database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Record appends one placement entry. RecordedAt defaults to now.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	recordedAt := entry.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO placements (
            run_id, source_path, final_path, digest, size_bytes,
            capture_date, disposition, recorded_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.SourcePath,
		entry.FinalPath,
		entry.Digest,
		entry.Size,
		entry.CaptureDate,
		entry.Disposition,
		recordedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert placement: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first. limit <= 0 applies a
// default of 50.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, source_path, final_path, digest, size_bytes,
            capture_date, disposition, recorded_at
        FROM placements ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query placements: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var recordedAt string
		if err := rows.Scan(
			&entry.ID,
			&entry.RunID,
			&entry.SourcePath,
			&entry.FinalPath,
			&entry.Digest,
			&entry.Size,
			&entry.CaptureDate,
			&entry.Disposition,
			&recordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, recordedAt); err == nil {
			entry.RecordedAt = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate placements: %w", err)
	}
	return entries, nil
}

// CountForRun returns the number of entries recorded under the given run ID.
func (s *Store) CountForRun(ctx context.Context, runID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		"SELECT COUNT(1) FROM placements WHERE run_id = ?",
		runID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count placements: %w", err)
	}
	return count, nil
}
