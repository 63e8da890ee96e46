package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// hashChunkSize bounds the read buffer used while digesting a file. The
// value only affects I/O efficiency, never the resulting key.
const hashChunkSize = 64 * 1024

// Key identifies file content by full-stream digest plus byte length. Two
// files with equal keys are treated as content-identical for the run.
type Key struct {
	digest [sha256.Size]byte
	size   int64
}

// Result reports the outcome of registering one file.
type Result struct {
	// Digest is the lowercase hex form of the content digest.
	Digest string
	// Size is the number of content bytes digested.
	Size int64
	// Existing holds the path of the first file registered with the same
	// key. Empty for unique content.
	Existing string
}

// Duplicate reports whether the file repeats content already registered.
func (r Result) Duplicate() bool { return r.Existing != "" }

// Registry tracks the content identities observed during a single run. It is
// created empty, lives in memory only, and is not safe for concurrent use.
type Registry struct {
	seen map[Key]string
	buf  []byte
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		seen: make(map[Key]string),
		buf:  make([]byte, hashChunkSize),
	}
}

// Register digests the file at path and records its identity. When the key
// was already registered the result references the earlier path and the
// registry is left unchanged; the file itself is never touched. A read
// failure leaves the registry unchanged and the caller must skip the file.
func (r *Registry) Register(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	size, err := io.CopyBuffer(hasher, file, r.buf)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	var key Key
	copy(key.digest[:], hasher.Sum(nil))
	key.size = size

	result := Result{
		Digest: hex.EncodeToString(key.digest[:]),
		Size:   size,
	}
	if existing, ok := r.seen[key]; ok {
		result.Existing = existing
		return result, nil
	}
	r.seen[key] = path
	return result, nil
}

// UniqueCount returns the number of distinct identity keys registered.
func (r *Registry) UniqueCount() int {
	return len(r.seen)
}
