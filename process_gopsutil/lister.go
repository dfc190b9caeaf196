// Package process_gopsutil lists processes through gopsutil, which reaches the
// process table on Windows and macOS where there is no procfs to walk.
package process_gopsutil

import (
	"fmt"
	"runtime"
	"strings"

	"relaunch/cmdline"
	"relaunch/coloransi"
	"relaunch/process"

	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/samber/lo"
	ps "github.com/shirou/gopsutil/v3/process"
)

// Lister implements process.ProcessLister on top of gopsutil
type Lister struct {
	processes func() ([]*ps.Process, error)
	rawCmd    bool
	log       *logger.Logger
}

// NewLister creates a Lister over the live process table.
// On Windows the command line is taken verbatim so the original quoting survives;
// elsewhere it is rebuilt from argv.
func NewLister() *Lister {
	return &Lister{
		processes: ps.Processes,
		rawCmd:    runtime.GOOS == "windows",
		log:       logger.NewLogger(coloransi.Color(coloransi.ColorTeal, coloransi.ColorOrange, "ps-lister")),
	}
}

// ListByName returns every process whose executable name equals name, ignoring case
func (l *Lister) ListByName(name string) ([]process.ProcessInfo, error) {
	if name == "" {
		return nil, process.ErrEmptyName
	}

	procs, err := l.processes()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	out := lo.FilterMap(procs, func(p *ps.Process, _ int) (process.ProcessInfo, bool) {
		procName, err := p.Name()
		if err != nil || !strings.EqualFold(procName, name) {
			return process.ProcessInfo{}, false
		}

		return process.ProcessInfo{
			PID:         process.ProcessID(p.Pid),
			Name:        procName,
			CommandLine: l.commandLine(p),
		}, true
	})

	l.log.Debugln("listed", len(procs), "processes,", len(out), "named", name)
	return out, nil
}

// commandLine returns an empty string when the command line cannot be read,
// typically because the process belongs to another user.
func (l *Lister) commandLine(p *ps.Process) string {
	if l.rawCmd {
		line, err := p.Cmdline()
		if err != nil {
			l.log.Debugln("cmdline of pid", p.Pid, "unavailable:", err)
			return ""
		}
		return line
	}

	argv, err := p.CmdlineSlice()
	if err != nil {
		l.log.Debugln("cmdline of pid", p.Pid, "unavailable:", err)
		return ""
	}
	return cmdline.JoinArgs(argv)
}
