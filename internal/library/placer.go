package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"picflow/internal/fileutil"
)

// Disposition describes how a placement concluded.
type Disposition int

const (
	// Moved: the original basename was free and the file was renamed in.
	Moved Disposition = iota
	// RenamedMoved: at least one -N suffix was needed before a free name.
	RenamedMoved
	// SkippedIdentical: a byte-identical file already occupies the
	// destination; the source was left where it was.
	SkippedIdentical
)

func (d Disposition) String() string {
	switch d {
	case Moved:
		return "moved"
	case RenamedMoved:
		return "renamed"
	case SkippedIdentical:
		return "skipped-identical"
	default:
		return "unknown"
	}
}

// Placement reports the final location and disposition of one file.
type Placement struct {
	Disposition Disposition
	// FinalPath is the destination path for Moved and RenamedMoved, or the
	// pre-existing identical file for SkippedIdentical.
	FinalPath string
	// Renames counts how many occupied names were passed over.
	Renames int
}

// Place moves the file at src into destDir, resolving basename collisions.
// A collision with byte-identical content skips the move entirely; a
// collision with different content retries under base-1.ext, base-2.ext and
// so on until a free name is found. Moves use os.Rename with no copy
// fallback, so a cross-device source surfaces as an error and the file stays
// at src.
func Place(src, destDir string) (Placement, error) {
	base := filepath.Base(src)
	candidate := base
	for suffix := 1; ; suffix++ {
		candidatePath := filepath.Join(destDir, candidate)

		_, err := os.Lstat(candidatePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if err := os.Rename(src, candidatePath); err != nil {
				return Placement{}, fmt.Errorf("move %s to %s: %w", src, candidatePath, err)
			}
			disposition := Moved
			if suffix > 1 {
				disposition = RenamedMoved
			}
			return Placement{
				Disposition: disposition,
				FinalPath:   candidatePath,
				Renames:     suffix - 1,
			}, nil
		case err != nil:
			return Placement{}, fmt.Errorf("inspect %s: %w", candidatePath, err)
		}

		equal, err := fileutil.EqualContents(src, candidatePath)
		if err != nil {
			return Placement{}, fmt.Errorf("compare %s with %s: %w", src, candidatePath, err)
		}
		if equal {
			return Placement{Disposition: SkippedIdentical, FinalPath: candidatePath}, nil
		}
		candidate = numberedName(base, suffix)
	}
}

// numberedName inserts -n before the extension: photo.jpg -> photo-1.jpg.
// Only the final extension moves; names without one get a plain suffix, and
// dotfiles keep their leading dot intact.
func numberedName(base string, n int) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// ".hidden" has no stem to suffix; append instead.
		return base + "-" + strconv.Itoa(n)
	}
	return stem + "-" + strconv.Itoa(n) + ext
}
