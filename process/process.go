// Package process provides the OS-agnostic types and capabilities used to find and start processes
package process

import "errors"

// The capabilities themselves are implemented per platform:
// - process_linux: ProcessLister over /proc
// - process_gopsutil: ProcessLister over gopsutil (Windows, macOS)
// - spawn: ProcessSpawner over os/exec

var (
	// ErrEmptyName is returned by a ProcessLister asked for a process without a name.
	ErrEmptyName = errors.New("empty process name")

	// ErrEmptyExecutable is returned by a ProcessSpawner asked to start nothing.
	ErrEmptyExecutable = errors.New("empty executable path")
)
