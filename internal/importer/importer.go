package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"picflow/internal/capturedate"
	"picflow/internal/config"
	"picflow/internal/exifdata"
	"picflow/internal/identity"
	"picflow/internal/library"
	"picflow/internal/logging"
	"picflow/internal/manifest"
)

var (
	// ErrSourceMissing aborts a run before any file is touched.
	ErrSourceMissing = errors.New("source folder missing")
	// ErrLibraryLocked means another import holds the library lock.
	ErrLibraryLocked = errors.New("library locked by another import")
)

// Options selects what a single run processes.
type Options struct {
	// Sources are the folders to ingest. All must exist up front.
	Sources []string
	// Recursive descends into subdirectories of each source.
	Recursive bool
}

// Stats accumulates run-level counters. Moved includes renamed moves.
type Stats struct {
	Scanned    int
	Unique     int
	Moved      int
	Renamed    int
	Duplicates int
	Identical  int
	NoDate     int
	Failures   int
}

// Importer drives the per-file pipeline: identity check, date resolution,
// destination routing, and collision-safe placement. One importer performs
// one synchronous run; registry and counters live and die with it.
type Importer struct {
	cfg    *config.Config
	logger *slog.Logger
	exif   exifdata.Reader
	store  *manifest.Store
}

// New constructs an importer with the goexif-backed metadata reader.
func New(cfg *config.Config, store *manifest.Store, logger *slog.Logger) *Importer {
	return NewWithDependencies(cfg, store, logger, exifdata.NewReader())
}

// NewWithDependencies allows injecting the metadata reader (used in tests).
func NewWithDependencies(cfg *config.Config, store *manifest.Store, logger *slog.Logger, exif exifdata.Reader) *Importer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Importer{
		cfg:    cfg,
		logger: logger.With(logging.String("component", "importer")),
		exif:   exif,
		store:  store,
	}
}

// Run ingests every regular file beneath the configured sources. Per-file
// failures are logged and counted but never abort the run; only preflight
// validation and lock acquisition do.
func (i *Importer) Run(ctx context.Context, opts Options) (Stats, error) {
	var stats Stats

	if len(opts.Sources) == 0 {
		return stats, fmt.Errorf("%w: no source folders given", ErrSourceMissing)
	}
	for _, source := range opts.Sources {
		info, err := os.Stat(source)
		if err != nil || !info.IsDir() {
			return stats, fmt.Errorf("%w: %s", ErrSourceMissing, source)
		}
	}

	libraryRoot := i.cfg.Paths.LibraryDir
	if err := os.MkdirAll(libraryRoot, 0o755); err != nil {
		return stats, fmt.Errorf("create library root %s: %w", libraryRoot, err)
	}

	lock := flock.New(filepath.Join(libraryRoot, ".picflow.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return stats, fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return stats, ErrLibraryLocked
	}
	defer func() { _ = lock.Unlock() }()

	runID := uuid.NewString()
	logger := i.logger.With(logging.String("run_id", runID))
	logger.Info("import started",
		logging.String("library", libraryRoot),
		logging.Bool("recursive", opts.Recursive),
		logging.Int("sources", len(opts.Sources)),
	)

	registry := identity.NewRegistry()
	router := library.NewRouter(libraryRoot)

	for _, source := range opts.Sources {
		logger.Info("scanning directory", logging.String("directory", source))
		files, err := collectFiles(source, opts.Recursive)
		if err != nil {
			logger.Error("directory scan failed", logging.String("directory", source), logging.Error(err))
			stats.Failures++
			continue
		}
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			stats.Scanned++
			i.importFile(ctx, logger, registry, router, runID, path, &stats)
		}
	}

	stats.Unique = registry.UniqueCount()
	logger.Info("import complete",
		logging.Int("unique_files", stats.Unique),
		logging.Int("moved", stats.Moved),
	)
	return stats, nil
}

// importFile runs one file through the pipeline. Every failure mode leaves
// the file at its original location.
func (i *Importer) importFile(ctx context.Context, logger *slog.Logger, registry *identity.Registry, router library.Router, runID, path string, stats *Stats) {
	id, err := registry.Register(path)
	if err != nil {
		logger.Error("cannot read file", logging.String("file", path), logging.Error(err))
		stats.Failures++
		return
	}
	if id.Duplicate() {
		logger.Warn("duplicate content, skipping",
			logging.String("file", path),
			logging.String("first_seen", id.Existing),
		)
		stats.Duplicates++
		return
	}

	name := filepath.Base(path)
	var date capturedate.Date
	if i.cfg.IsVideoExtension(name) {
		parsed, ok := capturedate.FromVideoName(name)
		if !ok {
			logger.Error("unable to parse date from video filename", logging.String("file", path))
			stats.NoDate++
			return
		}
		date = parsed
	} else {
		tag, ok, err := i.exif.DateTimeOriginal(path)
		if err != nil {
			logger.Error("cannot read image metadata", logging.String("file", path), logging.Error(err))
			stats.Failures++
			return
		}
		if !ok {
			logger.Error("missing capture date tag", logging.String("file", path))
			stats.NoDate++
			return
		}
		parsed, ok := capturedate.FromExifTag(tag)
		if !ok {
			logger.Error("malformed capture date tag",
				logging.String("file", path),
				logging.String("tag", tag),
			)
			stats.NoDate++
			return
		}
		date = parsed
	}

	destDir := router.DirFor(date)
	if err := router.Ensure(destDir); err != nil {
		logger.Error("cannot create destination directory",
			logging.String("directory", destDir),
			logging.Error(err),
		)
		stats.Failures++
		return
	}

	placement, err := library.Place(path, destDir)
	if err != nil {
		logger.Error("cannot move file", logging.String("file", path), logging.Error(err))
		stats.Failures++
		return
	}

	switch placement.Disposition {
	case library.Moved:
		stats.Moved++
		logger.Info("moved",
			logging.String("file", path),
			logging.String("destination", placement.FinalPath),
		)
	case library.RenamedMoved:
		stats.Moved++
		stats.Renamed++
		logger.Info("renamed and moved",
			logging.String("file", path),
			logging.String("destination", placement.FinalPath),
			logging.Int("renames", placement.Renames),
		)
	case library.SkippedIdentical:
		stats.Identical++
		logger.Warn("already present in library, not moving",
			logging.String("file", path),
			logging.String("existing", placement.FinalPath),
		)
	}

	i.recordPlacement(ctx, logger, runID, path, date, id, placement)
}

func (i *Importer) recordPlacement(ctx context.Context, logger *slog.Logger, runID, path string, date capturedate.Date, id identity.Result, placement library.Placement) {
	if i.store == nil {
		return
	}
	entry := manifest.Entry{
		RunID:       runID,
		SourcePath:  path,
		FinalPath:   placement.FinalPath,
		Digest:      id.Digest,
		Size:        id.Size,
		CaptureDate: date.Year + "-" + date.Month + "-" + date.Day,
		Disposition: placement.Disposition.String(),
	}
	if err := i.store.Record(ctx, entry); err != nil {
		// Manifest trouble never interferes with the import itself.
		logger.Warn("manifest record failed", logging.String("file", path), logging.Error(err))
	}
}
