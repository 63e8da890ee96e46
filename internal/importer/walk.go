package importer

import (
	"io/fs"
	"os"
	"path/filepath"
)

// collectFiles lists the regular files to process for one source folder.
// The list is gathered before any file moves so freshly placed files are
// never rediscovered mid-run (the library may live beneath a source).
func collectFiles(source string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(source)
		if err != nil {
			return nil, err
		}
		files := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			files = append(files, filepath.Join(source, entry.Name()))
		}
		return files, nil
	}

	var files []string
	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
