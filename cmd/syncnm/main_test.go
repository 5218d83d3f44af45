package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/syncnm/internal/app"
	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	config *mocks.MockConfigLoader
	logger *mocks.MockLogger
}

func newTestApp(ctrl *gomock.Controller) (*app.App, appMocks) {
	m := appMocks{
		config: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	application := app.New(
		m.config,
		mocks.NewMockLockfileDetector(ctrl),
		mocks.NewMockManifestReader(ctrl),
		mocks.NewMockProjectBuilder(ctrl),
		mocks.NewMockInstaller(ctrl),
		mocks.NewMockCacheStoreFactory(ctrl),
		mocks.NewMockTracer(ctrl),
		mocks.NewMockWatcherFactory(ctrl),
		mocks.NewMockHasher(ctrl),
		m.logger,
	)
	return application, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, m := newTestApp(ctrl)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, func() { cleaned = true }, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs the error when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, m := newTestApp(ctrl)

	loadErr := errors.New("load failed")
	m.config.EXPECT().Load(gomock.Any(), domain.Settings{}).Return(domain.Settings{}, loadErr)
	m.logger.EXPECT().Error(loadErr)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: m.logger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"run", t.TempDir()}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
