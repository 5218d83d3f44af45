// Package detector inspects the terminal environment to pick log and process I/O modes.
package detector

import (
	"os"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Mode describes whether syncnm is attached to an interactive terminal.
type Mode int

const (
	// ModeInteractive means stdout is a terminal outside CI.
	ModeInteractive Mode = iota
	// ModePlain means output is piped, redirected or running under CI.
	ModePlain
)

// DetectEnvironment returns the mode of the current process.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() Mode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return classify(isTTY, os.Getenv("CI"))
}

func classify(isTTY bool, ci string) Mode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModeInteractive
}

// Interactive reports whether child processes should run under a pty.
func (m Mode) Interactive() bool {
	return m == ModeInteractive
}

// ResolveLogFormat applies the configured format on top of the detected mode.
// Auto selects pretty output for interactive sessions and JSON otherwise.
func ResolveLogFormat(mode Mode, format domain.LogFormat) (domain.LogFormat, error) {
	switch format {
	case domain.LogFormatPretty, domain.LogFormatJSON:
		return format, nil
	case domain.LogFormatAuto, "":
		if mode.Interactive() {
			return domain.LogFormatPretty, nil
		}
		return domain.LogFormatJSON, nil
	default:
		return "", zerr.With(domain.ErrInvalidLogFormat, "log_format", string(format))
	}
}
