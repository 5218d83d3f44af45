package ports

import "go.trai.ch/syncnm/internal/core/domain"

// ConfigLoader resolves the settings of an invocation.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges overrides, environment, baseDir/syncnm.yaml and defaults, in that order.
	Load(baseDir string, overrides domain.Settings) (domain.Settings, error)

	// Save writes settings to baseDir/syncnm.yaml.
	Save(baseDir string, settings domain.Settings) error

	// Remove deletes baseDir/syncnm.yaml if present.
	Remove(baseDir string) error
}
