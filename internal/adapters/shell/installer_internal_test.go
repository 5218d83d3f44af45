package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syncnm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestTailBuffer(t *testing.T) {
	b := &tailBuffer{limit: 8}

	_, _ = b.Write([]byte("abc"))
	assert.Equal(t, "abc", b.String())

	_, _ = b.Write([]byte("defghijkl"))
	assert.Equal(t, "efghijkl", b.String())

	n, err := b.Write([]byte(strings.Repeat("x", 20)))
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.Equal(t, strings.Repeat("x", 8), b.String())
}

func TestLogWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Info("first"),
		log.EXPECT().Info("second"),
		log.EXPECT().Info("partial"),
	)

	w := &logWriter{logger: log, level: levelInfo}
	_, _ = w.Write([]byte("first\r\nsec"))
	_, _ = w.Write([]byte("ond\n\npar"))
	_, _ = w.Write([]byte("tial"))
	require.NoError(t, w.Close())
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "npm")
	//nolint:gosec // test executable
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "yarn"), []byte("#!/bin/sh\n"), 0o600))

	got, err := lookPath("npm", []string{"HOME=/tmp", "PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = lookPath("yarn", []string{"PATH=" + dir})
	require.Error(t, err, "non-executable files are skipped")

	_, err = lookPath("npm", []string{"HOME=/tmp"})
	require.Error(t, err)
}
