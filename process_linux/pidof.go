//go:build linux

package process_linux

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"relaunch/cmdline"
	"relaunch/coloransi"
	"relaunch/process"

	"github.com/Moonlight-Companies/gologger/logger"
)

// Lister implements process.ProcessLister by walking a procfs mount
type Lister struct {
	root string
	log  *logger.Logger
}

// NewLister creates a Lister over /proc
func NewLister() *Lister {
	return NewListerAt("/proc")
}

// NewListerAt creates a Lister over a procfs-shaped directory tree
func NewListerAt(root string) *Lister {
	return &Lister{
		root: root,
		log:  logger.NewLogger(coloransi.Color(coloransi.ColorTeal, coloransi.ColorOrange, "proc-lister")),
	}
}

// ListByName returns all processes whose comm, exe basename or argv[0] basename equals
// name, ignoring case. Results are ordered by PID.
func (l *Lister) ListByName(name string) ([]process.ProcessInfo, error) {
	if name == "" {
		return nil, process.ErrEmptyName
	}

	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.root, err)
	}

	selfPID := os.Getpid()
	var out []process.ProcessInfo

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 {
			continue // not a PID dir
		}
		if pid == selfPID {
			continue // skip ourselves
		}

		dir := filepath.Join(l.root, e.Name())
		argv := readArgv(dir)

		matched, ok := matchName(dir, argv, name)
		if !ok {
			continue
		}

		l.log.Debugln("matched pid", pid, "as", matched)
		out = append(out, process.ProcessInfo{
			PID:         process.ProcessID(pid),
			Name:        matched,
			CommandLine: cmdline.JoinArgs(argv),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out, nil
}

// matchName reports the name under which the process in dir matches want.
// comm is truncated to 15 bytes by the kernel, so exe and argv[0] are checked too.
func matchName(dir string, argv []string, want string) (string, bool) {
	comm, _ := os.ReadFile(filepath.Join(dir, "comm"))
	if c := string(bytesTrimNL(comm)); c != "" && strings.EqualFold(c, want) {
		return c, true
	}

	// Resolve <pid>/exe symlink; may fail if zombie or permission
	if exe, _ := os.Readlink(filepath.Join(dir, "exe")); exe != "" {
		exe = strings.TrimSuffix(exe, " (deleted)")
		if base := filepath.Base(exe); strings.EqualFold(base, want) {
			return base, true
		}
	}

	if len(argv) > 0 && argv[0] != "" {
		if base := cmdline.LastPathComponent(argv[0]); strings.EqualFold(base, want) {
			return base, true
		}
	}

	return "", false
}

// readArgv returns the NUL separated argument vector of the process in dir, or nil
// when it is empty (kernel threads) or unreadable (permission).
func readArgv(dir string) []string {
	raw, err := os.ReadFile(filepath.Join(dir, "cmdline"))
	if err != nil {
		return nil
	}

	raw = bytes.TrimRight(raw, "\x00")
	if len(raw) == 0 {
		return nil
	}

	var argv []string
	for _, arg := range bytes.Split(raw, []byte{0}) {
		argv = append(argv, string(arg))
	}
	return argv
}

func bytesTrimNL(b []byte) []byte {
	// Trim trailing '\n' if present (comm has a newline).
	for len(b) > 0 {
		switch b[len(b)-1] {
		case '\n', '\r', ' ', '\t':
			b = b[:len(b)-1]
		default:
			return b
		}
	}
	return b
}
