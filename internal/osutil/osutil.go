// Package osutil holds operating system specific constants
package osutil

import "io/fs"

// Windows is the value of runtime.GOOS on Windows.
const Windows = "windows"

// ExitCode is the status focusquest exits with.
type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

const (
	DirPermission  fs.FileMode = 0o755
	FilePermission fs.FileMode = 0o600
)
