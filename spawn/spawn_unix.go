//go:build !windows

package spawn

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/mattn/go-shellwords"
)

func command(executablePath, arguments string) (*exec.Cmd, error) {
	// backslashes are literal, as in the raw command line a Windows child receives
	argv, err := shellwords.Parse(strings.ReplaceAll(arguments, `\`, `\\`))
	if err != nil {
		return nil, fmt.Errorf("split arguments %q: %w", arguments, err)
	}

	cmd := exec.Command(executablePath, argv...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd, nil
}
