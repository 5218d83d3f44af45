package domain

import "time"

// LogFormat selects how log records are rendered.
type LogFormat string

const (
	// LogFormatAuto picks pretty output on a terminal and JSON otherwise.
	LogFormatAuto LogFormat = "auto"
	// LogFormatPretty forces colored human-readable output.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON forces structured JSON output.
	LogFormatJSON LogFormat = "json"
)

// DefaultWatchDebounce is the quiet period before a watch-triggered run.
const DefaultWatchDebounce = 300 * time.Millisecond

// Settings is the resolved configuration of one invocation.
// Zero values mean "not set" when passed as overrides.
type Settings struct {
	CacheDir      string        `mapstructure:"cache_dir" yaml:"cache_dir,omitempty"`
	TargetDir     string        `mapstructure:"target_dir" yaml:"target_dir,omitempty"`
	LogFormat     LogFormat     `mapstructure:"log_format" yaml:"log_format,omitempty"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce" yaml:"watch_debounce,omitempty"`
}

// CacheLayout locates the three directories a cache store operates on.
type CacheLayout struct {
	// BaseDir is the project root, used for identity.
	BaseDir string
	// TargetDir is the live dependency directory.
	TargetDir string
	// CacheDir is the root of the content-addressed store.
	CacheDir string
}
