// Package style holds the colors and icons used in terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	// Cross marks errors and removed snapshots.
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	// Dot marks the live snapshot, Circle a parked one.
	Dot    = "●"
	Circle = "○"
)
