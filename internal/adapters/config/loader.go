// Package config provides the layered settings loader for syncnm.
package config

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "SYNCNM"

const (
	keyCacheDir      = "cache_dir"
	keyTargetDir     = "target_dir"
	keyLogFormat     = "log_format"
	keyWatchDebounce = "watch_debounce"
)

// Writer persists the project configuration file.
type Writer interface {
	AtomicWrite(path string, data []byte, perm os.FileMode) error
}

// Loader implements ports.ConfigLoader using viper.
type Loader struct {
	writer   Writer
	cacheDir func() (string, error)
}

// NewLoader creates a new Loader.
func NewLoader(writer Writer) *Loader {
	return &Loader{
		writer:   writer,
		cacheDir: domain.DefaultCacheDir,
	}
}

// Load resolves the settings for the project at baseDir.
// Non-zero overrides win over SYNCNM_* variables, which win over
// baseDir/syncnm.yaml, which wins over the defaults.
// Relative directories are resolved against baseDir.
func (l *Loader) Load(baseDir string, overrides domain.Settings) (domain.Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range []string{keyCacheDir, keyTargetDir, keyLogFormat, keyWatchDebounce} {
		if err := v.BindEnv(key); err != nil {
			return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
	}

	path := Path(baseDir)
	if err := readConfigFile(v, path); err != nil {
		return domain.Settings{}, err
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		logFormatDecodeHook(),
	))); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	applyOverrides(&settings, overrides)

	if settings.WatchDebounce <= 0 {
		settings.WatchDebounce = domain.DefaultWatchDebounce
	}

	if settings.CacheDir == "" {
		dir, err := l.cacheDir()
		if err != nil {
			return domain.Settings{}, err
		}
		settings.CacheDir = dir
	}
	settings.CacheDir = resolve(baseDir, settings.CacheDir)
	settings.TargetDir = resolve(baseDir, settings.TargetDir)

	return settings, nil
}

// Save writes the non-empty fields of settings to baseDir/syncnm.yaml.
func (l *Loader) Save(baseDir string, settings domain.Settings) error {
	path := Path(baseDir)

	data, err := yaml.Marshal(settings)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}

	if err := l.writer.AtomicWrite(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	return nil
}

// Remove deletes baseDir/syncnm.yaml. A missing file is not an error.
func (l *Loader) Remove(baseDir string) error {
	path := Path(baseDir)
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	return nil
}

// Path returns the location of the project configuration file.
func Path(baseDir string) string {
	return filepath.Join(baseDir, domain.ConfigFileName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyCacheDir, "")
	v.SetDefault(keyTargetDir, domain.NodeModulesDirName)
	v.SetDefault(keyLogFormat, string(domain.LogFormatAuto))
	v.SetDefault(keyWatchDebounce, domain.DefaultWatchDebounce.String())
}

func readConfigFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the project directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func applyOverrides(s *domain.Settings, o domain.Settings) {
	if o.CacheDir != "" {
		s.CacheDir = o.CacheDir
	}
	if o.TargetDir != "" {
		s.TargetDir = o.TargetDir
	}
	if o.LogFormat != "" {
		s.LogFormat = o.LogFormat
	}
	if o.WatchDebounce > 0 {
		s.WatchDebounce = o.WatchDebounce
	}
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// logFormatDecodeHook normalizes log format spelling; validation happens
// when the format is applied.
func logFormatDecodeHook() mapstructure.DecodeHookFunc {
	target := reflect.TypeOf(domain.LogFormat(""))

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != target || from.Kind() != reflect.String {
			return data, nil
		}
		return domain.LogFormat(strings.ToLower(strings.TrimSpace(data.(string)))), nil //nolint:forcetypeassert // Kind checked above
	}
}
