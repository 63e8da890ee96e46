// Package fileutil provides low-level file helpers shared by the import
// pipeline.
package fileutil

import (
	"bytes"
	"errors"
	"io"
	"os"
)

const compareChunkSize = 64 * 1024

// EqualContents reports whether two files hold byte-identical content. It
// short-circuits on a size mismatch and otherwise compares both streams in
// fixed-size chunks so arbitrarily large files never load into memory.
func EqualContents(pathA, pathB string) (bool, error) {
	infoA, err := os.Stat(pathA)
	if err != nil {
		return false, err
	}
	infoB, err := os.Stat(pathB)
	if err != nil {
		return false, err
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fileA, err := os.Open(pathA)
	if err != nil {
		return false, err
	}
	defer fileA.Close()

	fileB, err := os.Open(pathB)
	if err != nil {
		return false, err
	}
	defer fileB.Close()

	bufA := make([]byte, compareChunkSize)
	bufB := make([]byte, compareChunkSize)
	for {
		n, readErr := fileA.Read(bufA)
		if n > 0 {
			if _, err := io.ReadFull(fileB, bufB[:n]); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					// Second file ended early despite matching sizes.
					return false, nil
				}
				return false, err
			}
			if !bytes.Equal(bufA[:n], bufB[:n]) {
				return false, nil
			}
		}
		if errors.Is(readErr, io.EOF) {
			return true, nil
		}
		if readErr != nil {
			return false, readErr
		}
	}
}
