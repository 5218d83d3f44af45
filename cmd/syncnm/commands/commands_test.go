package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syncnm/cmd/syncnm/commands"
	"go.trai.ch/syncnm/internal/app"
	"go.trai.ch/syncnm/internal/build"
	"go.trai.ch/syncnm/internal/core/domain"
)

type mockApp struct {
	runFunc       func(ctx context.Context, opts app.Options) (app.RunResult, error)
	installFunc   func(ctx context.Context, opts app.Options) (app.RunResult, error)
	uninstallFunc func(ctx context.Context, opts app.Options) error
	pruneFunc     func(ctx context.Context, opts app.Options) ([]domain.Hash, error)
	statusFunc    func(ctx context.Context, opts app.Options) (app.Status, error)
	watchFunc     func(ctx context.Context, opts app.Options) error
}

func (m *mockApp) Run(ctx context.Context, opts app.Options) (app.RunResult, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return app.RunResult{}, nil
}

func (m *mockApp) Install(ctx context.Context, opts app.Options) (app.RunResult, error) {
	if m.installFunc != nil {
		return m.installFunc(ctx, opts)
	}
	return app.RunResult{}, nil
}

func (m *mockApp) Uninstall(ctx context.Context, opts app.Options) error {
	if m.uninstallFunc != nil {
		return m.uninstallFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Prune(ctx context.Context, opts app.Options) ([]domain.Hash, error) {
	if m.pruneFunc != nil {
		return m.pruneFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Status(ctx context.Context, opts app.Options) (app.Status, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, opts)
	}
	return app.Status{}, nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.Options) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.Options
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.Options) (app.RunResult, error) {
				captured = opts
				called = true
				return app.RunResult{}, nil
			},
		}

		cacheDir := t.TempDir()
		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "web", "-c", cacheDir, "--target-dir", "deps", "-v", "--log-format", "json"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, "web", captured.BaseDir)
		assert.Equal(t, cacheDir, captured.CacheDir)
		assert.Equal(t, filepath.Join(wd, "deps"), captured.TargetDir)
		assert.True(t, captured.Verbose)
		assert.Equal(t, domain.LogFormatJSON, captured.LogFormat)
	})

	t.Run("defaults to the working directory", func(t *testing.T) {
		var captured app.Options
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.Options) (app.RunResult, error) {
				captured = opts
				return app.RunResult{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})
		require.NoError(t, cli.Execute(context.Background()))

		assert.Equal(t, ".", captured.BaseDir)
		assert.Empty(t, captured.CacheDir)
		assert.Empty(t, captured.TargetDir)
		assert.False(t, captured.Verbose)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.Options) (app.RunResult, error) {
				return app.RunResult{}, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Equal(t, "simulated error", err.Error())
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"run", "a", "b"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Install(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		installFunc: func(_ context.Context, opts app.Options) (app.RunResult, error) {
			captured = opts
			return app.RunResult{}, nil
		},
	}

	cacheDir := t.TempDir()
	cli := commands.New(mock)
	cli.SetArgs([]string{"install", "--cache-dir", cacheDir})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, cacheDir, captured.CacheDir)
}

func TestCommands_Uninstall(t *testing.T) {
	called := false
	mock := &mockApp{
		uninstallFunc: func(_ context.Context, opts app.Options) error {
			called = true
			assert.Equal(t, "app", opts.BaseDir)
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"uninstall", "app"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Watch(t *testing.T) {
	watchErr := errors.New("watch failed")
	mock := &mockApp{
		watchFunc: func(_ context.Context, _ app.Options) error {
			return watchErr
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch"})
	assert.ErrorIs(t, cli.Execute(context.Background()), watchErr)
}

func TestCommands_Status(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("lists snapshots", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(_ context.Context, _ app.Options) (app.Status, error) {
				return app.Status{
					DirKey:   "work_app",
					CacheDir: "/cache",
					Current:  "k1",
					Entries: []app.StatusEntry{
						{Key: "k1", Provenance: domain.Provenance{Branch: "main", Commit: "abcdef1234"}, Current: true},
						{Key: "k2"},
					},
				}, nil
			},
		}

		stdout := new(bytes.Buffer)
		cli := commands.New(mock)
		cli.SetArgs([]string{"status"})
		cli.SetOutput(stdout, new(bytes.Buffer))
		require.NoError(t, cli.Execute(context.Background()))

		expected := "project work_app\n" +
			"cache   /cache\n" +
			"● k1  main@abcdef1\n" +
			"○ k2\n"
		assert.Equal(t, expected, stdout.String())
	})

	t.Run("empty history", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(_ context.Context, _ app.Options) (app.Status, error) {
				return app.Status{DirKey: "work_app", CacheDir: "/cache"}, nil
			},
		}

		stdout := new(bytes.Buffer)
		cli := commands.New(mock)
		cli.SetArgs([]string{"status"})
		cli.SetOutput(stdout, new(bytes.Buffer))
		require.NoError(t, cli.Execute(context.Background()))

		assert.Contains(t, stdout.String(), "no cached snapshots")
	})
}

func TestCommands_Prune(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	mock := &mockApp{
		pruneFunc: func(_ context.Context, _ app.Options) ([]domain.Hash, error) {
			return []domain.Hash{"k2", "k3"}, nil
		},
	}

	stdout := new(bytes.Buffer)
	cli := commands.New(mock)
	cli.SetArgs([]string{"prune"})
	cli.SetOutput(stdout, new(bytes.Buffer))
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, "✗ k2\n✗ k3\n", stdout.String())
}

func TestCommands_Version(t *testing.T) {
	t.Run("version subcommand", func(t *testing.T) {
		stdout := new(bytes.Buffer)
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"version"})
		cli.SetOutput(stdout, new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), "syncnm version "+build.Version)
	})

	t.Run("version flag", func(t *testing.T) {
		stdout := new(bytes.Buffer)
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"--version"})
		cli.SetOutput(stdout, new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), build.Commit)
	})
}
