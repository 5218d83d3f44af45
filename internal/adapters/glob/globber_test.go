package glob_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syncnm/internal/adapters/glob"
	"go.trai.ch/syncnm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestGlobber_Collect(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		negation bool
		files    []string
		expected []string
	}{
		{name: "literal", patterns: []string{"foo"}, negation: true, files: []string{"foo"}, expected: []string{"foo"}},
		{name: "no match", patterns: []string{"bar"}, negation: true, files: []string{"foo"}},
		{name: "prefix wildcard", patterns: []string{"f*"}, negation: true, files: []string{"foo"}, expected: []string{"foo"}},
		{name: "infix wildcard", patterns: []string{"*fo*"}, negation: true, files: []string{"foo"}, expected: []string{"foo"}},
		{name: "globstar at root", patterns: []string{"**/foo"}, negation: true, files: []string{"foo"}, expected: []string{"foo"}},
		{
			name:     "globstar directory",
			patterns: []string{"**/baz"},
			negation: true,
			files:    []string{"foo/bar/baz/qux"},
			expected: []string{"foo/bar/baz"},
		},
		{
			name:     "globstar nested file",
			patterns: []string{"**/bar"},
			negation: true,
			files:    []string{"foo/bar"},
			expected: []string{"foo/bar"},
		},
		{name: "negated after", patterns: []string{"foo", "!foo"}, negation: true, files: []string{"foo/bar"}},
		{
			name:     "negated before",
			patterns: []string{"!foo", "foo"},
			negation: true,
			files:    []string{"foo/bar"},
			expected: []string{"foo"},
		},
		{
			name:     "negation keeps later matches",
			patterns: []string{"foo", "!foo", "bar"},
			negation: true,
			files:    []string{"foo", "bar"},
			expected: []string{"bar"},
		},
		{
			name:     "sorted output",
			patterns: []string{"!foo", "foo", "bar"},
			negation: true,
			files:    []string{"foo", "bar"},
			expected: []string{"bar", "foo"},
		},
		{
			name:     "everything negated",
			patterns: []string{"foo", "!foo", "bar", "!bar"},
			negation: true,
			files:    []string{"foo", "bar"},
		},
		{
			name:     "negation removes descendants",
			patterns: []string{"packages/*/*", "!packages/internal"},
			negation: true,
			files:    []string{"packages/a/package.json", "packages/internal/x/package.json"},
			expected: []string{"packages/a/package.json"},
		},
		{
			name:     "negation disabled treats bang literally",
			patterns: []string{"packages/*", "!packages/b"},
			negation: false,
			files:    []string{"packages/a/x", "packages/b/x"},
			expected: []string{"packages/a", "packages/b"},
		},
		{
			name:     "double negation is positive",
			patterns: []string{"!!foo"},
			negation: true,
			files:    []string{"foo"},
			expected: []string{"foo"},
		},
		{
			name:     "dot slash and trailing slash",
			patterns: []string{"./packages/*/"},
			negation: true,
			files:    []string{"packages/a/x"},
			expected: []string{"packages/a"},
		},
		{
			name:     "duplicates removed",
			patterns: []string{"packages/*", "packages/a"},
			negation: true,
			files:    []string{"packages/a/x"},
			expected: []string{"packages/a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				path := filepath.Join(dir, filepath.FromSlash(f))
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
				require.NoError(t, os.WriteFile(path, nil, 0o600))
			}

			ctrl := gomock.NewController(t)
			got, err := glob.NewGlobber(mocks.NewMockLogger(ctrl)).Collect(dir, tt.patterns, tt.negation)
			require.NoError(t, err)

			expected := make([]string, 0, len(tt.expected))
			for _, e := range tt.expected {
				expected = append(expected, filepath.Join(dir, filepath.FromSlash(e)))
			}
			assert.Equal(t, expected, got)
		})
	}
}

func TestGlobber_InvalidPatternWarns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "foo"), 0o750))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	got, err := glob.NewGlobber(log).Collect(dir, []string{"[unclosed", "foo"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "foo")}, got)
}

func TestParseNegate(t *testing.T) {
	tests := []struct {
		input       string
		wantPattern string
		wantNegate  bool
	}{
		{"foo", "foo", false},
		{"!foo", "foo", true},
		{"!!foo", "foo", false},
		{"!!!foo", "foo", true},
		{"foo!bar", "foo!bar", false},
		{"foo!!!!!!!!!!bar", "foo!!!!!!!!!!bar", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pattern, negate := glob.ParseNegate(tt.input, true)
			assert.Equal(t, tt.wantPattern, pattern)
			assert.Equal(t, tt.wantNegate, negate)
		})
	}

	pattern, negate := glob.ParseNegate("!foo", false)
	assert.Equal(t, "!foo", pattern)
	assert.False(t, negate)
}
