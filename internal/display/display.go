// Package display contains terminal formatting logic for CLI commands.
//
// Commands should keep fetching and state handling separate from rendering
// concerns by delegating all human-readable output to formatters in this
// package.
package display

import (
	"io"

	"github.com/fatih/color"
)

const ClearScreen = "\033[2J\033[H"

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Formatter writes formatted output to a writer.
type Formatter interface {
	Format(w io.Writer) error
}

// Clear writes ANSI clear screen sequence to w.
func Clear(w io.Writer) {
	_, _ = io.WriteString(w, ClearScreen)
}

// DisableColors turns off ANSI colors, e.g. for JSON output or when stdout
// is not a terminal.
func DisableColors() {
	color.NoColor = true
}
