package scanner

import (
	"fmt"

	"relaunch/cmdline"
	"relaunch/process"
)

// Target describes which processes to look for and which flag carries the data directory.
type Target struct {
	ProcessName    string   // process name as the OS reports it
	ExecutableName string   // file name an unquoted executable path must end with
	DataDirFlags   []string // accepted spellings, the first is canonical
}

// OrcaSlicer is the default target.
var OrcaSlicer = Target{
	ProcessName:    "Orca-Slicer.exe",
	ExecutableName: "Orca-Slicer.exe",
	DataDirFlags:   []string{"--datadir", "/datadir"},
}

// Executable returns the file name used to validate unquoted executable paths.
func (t Target) Executable() string {
	if t.ExecutableName != "" {
		return t.ExecutableName
	}
	return t.ProcessName
}

// CanonicalFlag returns the spelling used when relaunching.
func (t Target) CanonicalFlag() string {
	if len(t.DataDirFlags) == 0 {
		return ""
	}
	return t.DataDirFlags[0]
}

// Record is one running instance that can be relaunched.
type Record struct {
	PID            process.ProcessID
	ExecutablePath string
	DataDir        string
}

// Label names the record by the last component of its data directory.
func (r Record) Label() string {
	return cmdline.LastPathComponent(r.DataDir)
}

// DiagnosticKind classifies a scan diagnostic.
type DiagnosticKind int

const (
	DiagnosticInfo DiagnosticKind = iota
	DiagnosticMissingCommandLine
	DiagnosticParseMiss
	DiagnosticListingFailure
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticInfo:
		return "info"
	case DiagnosticMissingCommandLine:
		return "missing-command-line"
	case DiagnosticParseMiss:
		return "parse-miss"
	case DiagnosticListingFailure:
		return "listing-failure"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is one human-readable line describing a non-fatal scan event.
type Diagnostic struct {
	Kind    DiagnosticKind
	PID     process.ProcessID // zero for scan-level lines
	Message string
}

func (d Diagnostic) String() string {
	if d.PID != 0 {
		return fmt.Sprintf("PID %d: %s", d.PID, d.Message)
	}
	return d.Message
}

// Result is the outcome of one scan. Records keep the order the lister returned them in.
type Result struct {
	Target      Target
	Records     []Record
	Diagnostics []Diagnostic
}

// Lines returns the diagnostics as display lines.
func (r Result) Lines() []string {
	lines := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		lines[i] = d.String()
	}
	return lines
}

// Count returns how many diagnostics of kind the scan produced.
func (r Result) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
