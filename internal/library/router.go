package library

import (
	"fmt"
	"os"
	"path/filepath"

	"picflow/internal/capturedate"
)

// Router computes date-partitioned destination directories beneath a library
// root.
type Router struct {
	root string
}

// NewRouter returns a router rooted at the given library directory.
func NewRouter(root string) Router {
	return Router{root: root}
}

// Root returns the library root directory.
func (r Router) Root() string { return r.root }

// DirFor returns <root>/<year>/<month>/<day> for the given capture date.
func (r Router) DirFor(date capturedate.Date) string {
	return filepath.Join(r.root, date.Year, date.Month, date.Day)
}

// Ensure creates the destination directory and any missing parents. Failure
// affects only the file being routed, never the whole run.
func (r Router) Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create destination directory %s: %w", dir, err)
	}
	return nil
}
