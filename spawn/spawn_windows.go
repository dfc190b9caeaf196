//go:build windows

package spawn

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// command passes arguments through untouched as the tail of the raw command line,
// so quoting recovered from another process is preserved exactly.
func command(executablePath, arguments string) (*exec.Cmd, error) {
	line := windows.EscapeArg(executablePath)
	if arguments != "" {
		line += " " + arguments
	}

	cmd := exec.Command(executablePath)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:       line,
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
	return cmd, nil
}
