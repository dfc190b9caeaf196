// Package scanner finds running instances of a target application and recovers the
// executable and data directory each was launched with.
package scanner

import (
	"fmt"

	"relaunch/cmdline"
	"relaunch/coloransi"
	"relaunch/process"

	"github.com/Moonlight-Companies/gologger/logger"
)

// Scanner turns listed processes into relaunch records
type Scanner struct {
	lister process.ProcessLister
	log    *logger.Logger
}

// New creates a Scanner on top of lister
func New(lister process.ProcessLister) *Scanner {
	return &Scanner{
		lister: lister,
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorBlue, coloransi.ColorOrange, "scanner")),
	}
}

// Scan lists the processes named target.ProcessName and parses each command line.
// A listing failure yields no records at all; a process that cannot be parsed is
// skipped and reported in the diagnostics.
func (s *Scanner) Scan(target Target) Result {
	res := Result{Target: target}

	s.log.Infoln("Searching for", target.ProcessName)
	procs, err := s.lister.ListByName(target.ProcessName)
	if err != nil {
		s.log.Warn("Process listing failed: ", err)
		res.Diagnostics = []Diagnostic{{
			Kind:    DiagnosticListingFailure,
			Message: fmt.Sprintf("process listing failed: %v (running as administrator may be required)", err),
		}}
		return res
	}

	if len(procs) == 0 {
		res.info("no processes named '%s' found running", target.ProcessName)
		res.info("scan complete")
		return res
	}

	res.info("found %d instance(s) of '%s'", len(procs), target.ProcessName)

	for _, p := range procs {
		s.log.Debugln("pid", p.PID, "command line:", p.CommandLine)

		if p.CommandLine == "" {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:    DiagnosticMissingCommandLine,
				PID:     p.PID,
				Message: "command line unavailable, likely a permissions issue; try running as administrator",
			})
			continue
		}

		rec, ok := parseRecord(p, target)
		if !ok {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:    DiagnosticParseMiss,
				PID:     p.PID,
				Message: fmt.Sprintf("could not find both a data-directory argument and an executable path in: %s", p.CommandLine),
			})
			continue
		}

		res.Records = append(res.Records, rec)
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:    DiagnosticInfo,
			PID:     p.PID,
			Message: fmt.Sprintf("data dir %s, executable %s, label '%s'", rec.DataDir, rec.ExecutablePath, rec.Label()),
		})
	}

	if len(res.Records) == 0 {
		res.info("no instance was started with a data-directory argument that could be parsed for relaunching")
	}
	res.info("scan complete")

	s.log.Infoln("Scan complete,", len(res.Records), "of", len(procs), "instance(s) usable")
	return res
}

func parseRecord(p process.ProcessInfo, target Target) (Record, bool) {
	dataDir := cmdline.ExtractNamedArgument(p.CommandLine, target.DataDirFlags)
	exe := cmdline.ExtractExecutablePath(p.CommandLine, target.Executable())
	if dataDir == "" || exe == "" {
		return Record{}, false
	}
	return Record{PID: p.PID, ExecutablePath: exe, DataDir: dataDir}, true
}

func (r *Result) info(format string, args ...interface{}) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Kind: DiagnosticInfo, Message: fmt.Sprintf(format, args...)})
}
