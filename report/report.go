// Package report prints errors to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusquest/internal/osutil"
)

// Error prints err without exiting.
func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
