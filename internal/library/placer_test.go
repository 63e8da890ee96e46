package library

import (
	"os"
	"path/filepath"
	"testing"

	"picflow/internal/capturedate"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRouterDirFor(t *testing.T) {
	router := NewRouter(filepath.Join("/library"))
	date := capturedate.Date{Year: "2023", Month: "04", Day: "01"}
	want := filepath.Join("/library", "2023", "04", "01")
	if got := router.DirFor(date); got != want {
		t.Fatalf("DirFor = %s, want %s", got, want)
	}
}

func TestRouterEnsureCreatesNestedDirs(t *testing.T) {
	root := t.TempDir()
	router := NewRouter(root)
	dir := router.DirFor(capturedate.Date{Year: "2022", Month: "12", Day: "25"})
	if err := router.Ensure(dir); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("destination not created: %v", err)
	}
	// Second call is a no-op.
	if err := router.Ensure(dir); err != nil {
		t.Fatalf("Ensure (repeat): %v", err)
	}
}

func TestPlaceIntoFreeName(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	srcPath := filepath.Join(src, "photo.jpg")
	writeFile(t, srcPath, "content")

	placement, err := Place(srcPath, dest)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if placement.Disposition != Moved {
		t.Fatalf("disposition = %s, want moved", placement.Disposition)
	}
	if placement.FinalPath != filepath.Join(dest, "photo.jpg") {
		t.Fatalf("final path = %s", placement.FinalPath)
	}
	if _, err := os.Stat(srcPath); !os.IsNotExist(err) {
		t.Fatal("source still present after move")
	}
}

func TestPlaceSkipsIdenticalAndLeavesSource(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	srcPath := filepath.Join(src, "photo.jpg")
	writeFile(t, srcPath, "same bytes")
	writeFile(t, filepath.Join(dest, "photo.jpg"), "same bytes")

	placement, err := Place(srcPath, dest)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if placement.Disposition != SkippedIdentical {
		t.Fatalf("disposition = %s, want skipped-identical", placement.Disposition)
	}
	if _, err := os.Stat(srcPath); err != nil {
		t.Fatal("source must remain in place for identical skips")
	}

	// Idempotence: placing again makes the same decision.
	again, err := Place(srcPath, dest)
	if err != nil {
		t.Fatal(err)
	}
	if again.Disposition != SkippedIdentical {
		t.Fatalf("repeat disposition = %s", again.Disposition)
	}
}

func TestPlaceRenamesAroundDifferentContent(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	srcPath := filepath.Join(src, "photo.jpg")
	writeFile(t, srcPath, "new content")
	writeFile(t, filepath.Join(dest, "photo.jpg"), "existing A")
	writeFile(t, filepath.Join(dest, "photo-1.jpg"), "existing B")

	placement, err := Place(srcPath, dest)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if placement.Disposition != RenamedMoved {
		t.Fatalf("disposition = %s, want renamed", placement.Disposition)
	}
	want := filepath.Join(dest, "photo-2.jpg")
	if placement.FinalPath != want {
		t.Fatalf("final path = %s, want %s", placement.FinalPath, want)
	}
	if placement.Renames != 2 {
		t.Fatalf("renames = %d, want 2", placement.Renames)
	}
	data, err := os.ReadFile(want)
	if err != nil || string(data) != "new content" {
		t.Fatalf("moved content wrong: %q, %v", data, err)
	}
	// Neither occupant was overwritten.
	for name, content := range map[string]string{"photo.jpg": "existing A", "photo-1.jpg": "existing B"} {
		data, err := os.ReadFile(filepath.Join(dest, name))
		if err != nil || string(data) != content {
			t.Fatalf("%s was disturbed: %q, %v", name, data, err)
		}
	}
}

func TestPlaceIdenticalMatchBehindSuffix(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	srcPath := filepath.Join(src, "photo.jpg")
	writeFile(t, srcPath, "duplicate")
	writeFile(t, filepath.Join(dest, "photo.jpg"), "different")
	writeFile(t, filepath.Join(dest, "photo-1.jpg"), "duplicate")

	placement, err := Place(srcPath, dest)
	if err != nil {
		t.Fatal(err)
	}
	if placement.Disposition != SkippedIdentical {
		t.Fatalf("disposition = %s, want skipped-identical", placement.Disposition)
	}
	if placement.FinalPath != filepath.Join(dest, "photo-1.jpg") {
		t.Fatalf("final path = %s", placement.FinalPath)
	}
}

func TestPlaceMissingDestinationDirErrors(t *testing.T) {
	src := t.TempDir()
	srcPath := filepath.Join(src, "photo.jpg")
	writeFile(t, srcPath, "content")

	if _, err := Place(srcPath, filepath.Join(src, "nope", "deeper")); err == nil {
		t.Fatal("expected move error for missing destination directory")
	}
	if _, err := os.Stat(srcPath); err != nil {
		t.Fatal("source must be untouched after a failed move")
	}
}

func TestNumberedName(t *testing.T) {
	cases := []struct {
		base string
		n    int
		want string
	}{
		{"photo.jpg", 1, "photo-1.jpg"},
		{"photo.jpg", 12, "photo-12.jpg"},
		{"archive.tar.gz", 1, "archive.tar-1.gz"},
		{"noext", 3, "noext-3"},
		{".hidden", 1, ".hidden-1"},
	}
	for _, tc := range cases {
		if got := numberedName(tc.base, tc.n); got != tc.want {
			t.Errorf("numberedName(%q, %d) = %q, want %q", tc.base, tc.n, got, tc.want)
		}
	}
}
