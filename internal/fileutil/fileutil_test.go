package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEqualContentsIdentical(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	data := bytes.Repeat([]byte("payload"), 40000) // spans multiple chunks
	writeFile(t, a, data)
	writeFile(t, b, data)

	equal, err := EqualContents(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Fatal("identical files reported as different")
	}
}

func TestEqualContentsSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	writeFile(t, a, []byte("short"))
	writeFile(t, b, []byte("slightly longer"))

	equal, err := EqualContents(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if equal {
		t.Fatal("files of different size reported as equal")
	}
}

func TestEqualContentsSameSizeDifferentBytes(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	data := bytes.Repeat([]byte{0xAA}, 200000)
	other := bytes.Repeat([]byte{0xAA}, 200000)
	other[199999] = 0xAB
	writeFile(t, a, data)
	writeFile(t, b, other)

	equal, err := EqualContents(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if equal {
		t.Fatal("files with differing bytes reported as equal")
	}
}

func TestEqualContentsMissingFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	writeFile(t, a, []byte("data"))

	if _, err := EqualContents(a, filepath.Join(dir, "missing.bin")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
