// Package output creates termenv outputs shared by the logger and the CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal
// profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w, or to stderr when w is nil.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))
}

// Paint renders text in color for out. Ascii outputs get text unchanged.
func Paint(out *termenv.Output, text string, color lipgloss.Color) string {
	return out.String(text).Foreground(termenv.RGBColor(string(color))).String()
}

// Line writes text in color followed by a newline.
func Line(out *termenv.Output, text string, color lipgloss.Color) error {
	_, err := out.WriteString(Paint(out, text, color) + "\n")
	return err
}
