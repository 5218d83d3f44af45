package domain

import (
	"path/filepath"
	"strings"
)

// dirKeySeparator joins path components in a DirKey.
const dirKeySeparator = "_"

// DirKey is a path-derived identity for a project root.
// It is not reversible to a path.
type DirKey string

// NewDirKey derives the DirKey of the absolute directory dir.
// Components under home are kept relative to home, so identical layouts
// under different home directories produce the same key.
func NewDirKey(dir, home string) DirKey {
	dir = filepath.Clean(dir)
	if home != "" {
		home = filepath.Clean(home)
		if rel, err := filepath.Rel(home, dir); err == nil && rel != ".." &&
			!strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			dir = rel
		}
	}

	parts := strings.FieldsFunc(filepath.ToSlash(dir), func(r rune) bool {
		return r == '/' || r == ':'
	})
	parts = dropDots(parts)
	if len(parts) == 0 {
		return DirKey(dirKeySeparator)
	}
	return DirKey(strings.Join(parts, dirKeySeparator))
}

// String returns the key as a plain string.
func (k DirKey) String() string {
	return string(k)
}

func dropDots(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "." {
			out = append(out, p)
		}
	}
	return out
}
