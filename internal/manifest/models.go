package manifest

import "time"

// Entry records one completed placement.
type Entry struct {
	ID          int64
	RunID       string
	SourcePath  string
	FinalPath   string
	Digest      string // lowercase hex content digest
	Size        int64
	CaptureDate string // YYYY-MM-DD as resolved during import
	Disposition string // moved, renamed, or skipped-identical
	RecordedAt  time.Time
}
