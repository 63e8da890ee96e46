package exifdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDateTimeOriginalMissingFile(t *testing.T) {
	reader := NewReader()
	if _, _, err := reader.DateTimeOriginal(filepath.Join(t.TempDir(), "absent.jpg")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDateTimeOriginalNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.jpg")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	reader := NewReader()
	value, ok, err := reader.DateTimeOriginal(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("expected tag-absent result, got %q, %v", value, ok)
	}
}
