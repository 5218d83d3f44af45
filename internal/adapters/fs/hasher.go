package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher computes cheap content digests of file sets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	sum, err := hashFile(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file"), "path", path)
	}
	return sum, nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}

// ComputeSetHash digests the paths and contents of files. Path order does not
// matter and missing files contribute a marker instead of failing.
func (h *Hasher) ComputeSetHash(paths []string) (string, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	digest := xxhash.New()
	for _, path := range sorted {
		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0})

		sum, err := hashFile(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				_, _ = digest.Write([]byte{1})
				continue
			}
			return "", zerr.With(zerr.Wrap(err, "failed to hash file"), "path", path)
		}
		if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
