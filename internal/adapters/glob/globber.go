// Package glob expands workspace patterns into directories.
package glob

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Globber = (*Globber)(nil)

const negatePrefix = '!'

// Globber implements ports.Globber with doublestar patterns.
type Globber struct {
	logger ports.Logger
}

// NewGlobber creates a Globber that reports unusable patterns to logger.
func NewGlobber(logger ports.Logger) *Globber {
	return &Globber{logger: logger}
}

// Collect evaluates patterns in order relative to baseDir.
//
// With negation enabled, a pattern led by an odd number of "!" removes every
// previously collected entry that lies at or below one of its matches.
// The result is absolute, deduplicated and sorted.
func (g *Globber) Collect(baseDir string, patterns []string, negation bool) ([]string, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNotAccessible.Error()), "path", baseDir)
	}
	fsys := os.DirFS(abs)

	var entries []string
	for _, raw := range patterns {
		pattern, negate := parseNegate(raw, negation)
		pattern = normalize(pattern)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			g.logger.Warn(fmt.Sprintf("ignoring invalid workspace pattern %q", raw))
			continue
		}

		matched, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			g.logger.Warn(fmt.Sprintf("failed to expand workspace pattern %q: %v", raw, err))
			continue
		}

		if negate {
			entries = slices.DeleteFunc(entries, func(entry string) bool {
				return slices.ContainsFunc(matched, func(m string) bool {
					return hasPathPrefix(entry, m)
				})
			})
			continue
		}
		entries = append(entries, matched...)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, filepath.Join(abs, filepath.FromSlash(entry)))
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// parseNegate strips the leading run of "!" and reports whether it negates.
func parseNegate(pattern string, enabled bool) (string, bool) {
	if !enabled {
		return pattern, false
	}
	negate := false
	i := 0
	for i < len(pattern) && pattern[i] == negatePrefix {
		negate = !negate
		i++
	}
	return pattern[i:], negate
}

func normalize(pattern string) string {
	for strings.HasPrefix(pattern, "./") {
		pattern = pattern[2:]
	}
	return strings.TrimRight(pattern, "/")
}

// hasPathPrefix reports whether prefix equals path or is one of its ancestors.
// Both are slash-separated paths relative to the same root.
func hasPathPrefix(path, prefix string) bool {
	if prefix == "." {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
