// Package exifdata wraps the goexif decoder behind the one lookup the import
// pipeline needs: the raw DateTimeOriginal tag string.
package exifdata

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// Reader resolves the DateTimeOriginal tag for an image file. The importer
// consumes this interface so tests can substitute fixed tag values.
type Reader interface {
	// DateTimeOriginal returns the tag's raw string form. ok is false when
	// the file carries no usable EXIF block or lacks the tag; err is
	// reserved for I/O failures opening the file.
	DateTimeOriginal(path string) (value string, ok bool, err error)
}

// EXIFReader reads tags with github.com/rwcarlsen/goexif.
type EXIFReader struct{}

// NewReader returns the goexif-backed Reader.
func NewReader() EXIFReader {
	return EXIFReader{}
}

func (EXIFReader) DateTimeOriginal(path string) (string, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	meta, err := exif.Decode(file)
	if err != nil {
		// Not decodable as EXIF (plain PNG, corrupt header, ...): same
		// outcome as a missing tag.
		return "", false, nil
	}

	tag, err := meta.Get(exif.DateTimeOriginal)
	if err != nil {
		return "", false, nil
	}
	value, err := tag.StringVal()
	if err != nil {
		return "", false, nil
	}
	return value, true, nil
}
