// Package spawn starts a detached process from an executable path and a single
// argument string, the shape in which arguments are recovered from a running process.
package spawn

import (
	"fmt"
	"path/filepath"

	"relaunch/coloransi"
	"relaunch/process"

	"github.com/Moonlight-Companies/gologger/logger"
)

// Spawner implements process.ProcessSpawner with os/exec
type Spawner struct {
	log *logger.Logger
}

// New creates a Spawner
func New() *Spawner {
	return &Spawner{
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "spawn")),
	}
}

// Spawn starts executablePath and returns without waiting for it. The child runs
// in its own process group so it outlives this tool.
func (s *Spawner) Spawn(executablePath, arguments string) error {
	if executablePath == "" {
		return process.ErrEmptyExecutable
	}

	cmd, err := command(executablePath, arguments)
	if err != nil {
		return err
	}
	if filepath.IsAbs(executablePath) {
		cmd.Dir = filepath.Dir(executablePath)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", executablePath, err)
	}

	s.log.Infoln("Started", executablePath, "as pid", cmd.Process.Pid)
	// not waiting on the child; release its handle
	_ = cmd.Process.Release()
	return nil
}
