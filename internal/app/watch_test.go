package app_test

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/syncnm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeWatcher feeds events from a channel and ends them on Stop.
func fakeWatcher(ctrl *gomock.Controller, started *[][]string) (*mocks.MockWatcher, chan ports.WatchEvent) {
	events := make(chan ports.WatchEvent)
	var once sync.Once

	w := mocks.NewMockWatcher(ctrl)
	w.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, files []string) error {
		*started = append(*started, files)
		return nil
	}).AnyTimes()
	w.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for event := range events {
			if !yield(event) {
				return
			}
		}
	}))
	w.EXPECT().Stop().DoAndReturn(func() error {
		once.Do(func() { close(events) })
		return nil
	}).AnyTimes()

	return w, events
}

func TestApp_Watch_RerunsOnlyWhenDigestChanges(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.settings.WatchDebounce = 100 * time.Millisecond
		ctrl := gomock.NewController(t)

		var started [][]string
		w, events := fakeWatcher(ctrl, &started)
		f.watchers.EXPECT().New().Return(w, nil)

		f.config.EXPECT().Load(f.base, domain.Settings{}).Return(f.settings, nil)
		f.stores.EXPECT().Open(gomock.Any()).Return(f.store, nil)
		f.lockfiles.EXPECT().Detect(f.base).Return(domain.Lockfile{Kind: domain.Npm, Path: f.lockPath}, nil).Times(2)
		f.projects.EXPECT().Build(gomock.Any(), f.base, domain.Npm).Return(f.project(), nil).Times(2)
		f.store.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		gomock.InOrder(
			f.hasher.EXPECT().ComputeSetHash(gomock.Any()).Return("d1", nil).Times(2),
			f.hasher.EXPECT().ComputeSetHash(gomock.Any()).Return("d2", nil).Times(2),
		)

		f.logger.EXPECT().Debug("watched files unchanged, skipping run").Times(1)
		f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
		f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() {
			errCh <- f.app.Watch(ctx, f.opts())
		}()
		synctest.Wait()

		manifest := filepath.Join(f.base, "package.json")

		// Same digest: no second run.
		events <- ports.WatchEvent{Path: manifest, Operation: ports.OpWrite}
		time.Sleep(200 * time.Millisecond)
		synctest.Wait()

		// New digest: re-run.
		events <- ports.WatchEvent{Path: manifest, Operation: ports.OpWrite}
		time.Sleep(200 * time.Millisecond)
		synctest.Wait()

		cancel()
		require.NoError(t, <-errCh)

		require.NotEmpty(t, started)
		assert.Contains(t, started[0], manifest)
		assert.Contains(t, started[0], filepath.Join(f.base, "yarn.lock"))
		assert.Contains(t, started[0], filepath.Join(f.base, "pnpm-workspace.yaml"))
	})
}

func TestApp_Watch_InitialRunFailure(t *testing.T) {
	f := newFixture(t)

	f.expectOpen()
	f.expectDerive()
	f.store.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(domain.ErrNotDir)
	f.logger.EXPECT().Debug(gomock.Any())
	f.store.EXPECT().RevokeCurrent(gomock.Any()).Return(nil)
	f.installer.EXPECT().Install(gomock.Any(), domain.Npm, f.base).Return(domain.ErrInstallFailed)

	err := f.app.Watch(t.Context(), f.opts())
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
}

func TestApp_Watch_WatcherFailure(t *testing.T) {
	f := newFixture(t)

	f.expectOpen()
	f.expectDerive()
	f.store.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(nil)
	f.logger.EXPECT().Info(gomock.Any())
	f.watchers.EXPECT().New().Return(nil, domain.ErrWatchFailed)

	err := f.app.Watch(t.Context(), f.opts())
	assert.ErrorIs(t, err, domain.ErrWatchFailed)
}
