// Package relauncher starts a discovered instance's executable again with its data
// directory plus the arguments this tool was given.
package relauncher

import (
	"fmt"
	"strings"

	"relaunch/coloransi"
	"relaunch/process"
	"relaunch/scanner"

	"github.com/Moonlight-Companies/gologger/logger"
)

// SpawnError reports a relaunch that could not be started.
type SpawnError struct {
	Executable string
	Arguments  string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("could not start '%s': %v", e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Relauncher builds the relaunch command line and hands it to a spawner
type Relauncher struct {
	spawner process.ProcessSpawner
	flag    string
	log     *logger.Logger
}

// New creates a Relauncher that passes the data directory with flag
func New(spawner process.ProcessSpawner, flag string) *Relauncher {
	return &Relauncher{
		spawner: spawner,
		flag:    flag,
		log:     logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "relauncher")),
	}
}

// BuildArguments places the data-directory argument first so it wins over any
// conflicting value in extraArgs, which is appended verbatim.
func BuildArguments(flag, dataDir, extraArgs string) string {
	return strings.TrimSpace(fmt.Sprintf(`%s "%s" %s`, flag, dataDir, extraArgs))
}

// Arguments returns the argument string Relaunch would use for rec.
func (r *Relauncher) Arguments(rec scanner.Record, extraArgs string) string {
	return BuildArguments(r.flag, rec.DataDir, extraArgs)
}

// Relaunch starts rec's executable. A nil error means the new instance is running and
// the caller should exit; a *SpawnError leaves everything as it was.
func (r *Relauncher) Relaunch(rec scanner.Record, extraArgs string) error {
	args := r.Arguments(rec, extraArgs)

	if rec.ExecutablePath == "" {
		return &SpawnError{Executable: rec.ExecutablePath, Arguments: args, Err: process.ErrEmptyExecutable}
	}

	r.log.Infoln("Relaunching", rec.ExecutablePath, "with", args)
	if err := r.spawner.Spawn(rec.ExecutablePath, args); err != nil {
		r.log.Warn("Relaunch failed: ", err)
		return &SpawnError{Executable: rec.ExecutablePath, Arguments: args, Err: err}
	}
	return nil
}
