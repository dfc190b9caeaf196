// Package session is the boundary between the scan/relaunch core and a presenter.
// Presenters render scan results keyed by RecordID and report which one the user picked.
package session

import (
	"errors"

	"relaunch/coloransi"
	"relaunch/relauncher"
	"relaunch/scanner"

	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/samber/lo"
)

var (
	// ErrUnknownRecord is returned for a RecordID that the latest scan did not produce.
	ErrUnknownRecord = errors.New("unknown record")

	// ErrAlreadyRelaunched is returned once a relaunch has succeeded.
	ErrAlreadyRelaunched = errors.New("already relaunched")
)

// RecordID identifies a record within the latest scan, starting at 1.
type RecordID int

// Entry pairs a record with its ID.
type Entry struct {
	ID     RecordID
	Record scanner.Record
}

// Outcome is the result of one relaunch attempt.
type Outcome struct {
	Record    scanner.Record
	Arguments string
	Err       error
	Exit      bool // the new instance is running; the tool should exit
}

// Handler receives scan results.
type Handler interface {
	OnScanComplete(res scanner.Result)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(res scanner.Result)

func (f HandlerFunc) OnScanComplete(res scanner.Result) { f(res) }

// Session drives one scan-and-relaunch flow.
type Session struct {
	scanner    *scanner.Scanner
	relauncher *relauncher.Relauncher
	target     scanner.Target
	extraArgs  string
	handler    Handler

	result     scanner.Result
	records    map[RecordID]scanner.Record
	relaunched bool
	log        *logger.Logger
}

// New creates a Session. handler may be nil.
func New(s *scanner.Scanner, r *relauncher.Relauncher, target scanner.Target, extraArgs string, handler Handler) *Session {
	return &Session{
		scanner:    s,
		relauncher: r,
		target:     target,
		extraArgs:  extraArgs,
		handler:    handler,
		records:    map[RecordID]scanner.Record{},
		log:        logger.NewLogger(coloransi.Color(coloransi.ColorBlue, coloransi.ColorOrange, "session")),
	}
}

// Target returns the target this session scans for.
func (s *Session) Target() scanner.Target {
	return s.target
}

// ExtraArgs returns the arguments appended on relaunch.
func (s *Session) ExtraArgs() string {
	return s.extraArgs
}

// Scan runs a fresh scan, replaces the record mapping and notifies the handler.
func (s *Session) Scan() scanner.Result {
	res := s.scanner.Scan(s.target)

	records := make(map[RecordID]scanner.Record, len(res.Records))
	for i, rec := range res.Records {
		records[RecordID(i+1)] = rec
	}
	s.result = res
	s.records = records

	if s.handler != nil {
		s.handler.OnScanComplete(res)
	}
	return res
}

// Result returns the latest scan result.
func (s *Session) Result() scanner.Result {
	return s.result
}

// Records returns the latest records in scan order.
func (s *Session) Records() []Entry {
	return lo.Map(s.result.Records, func(rec scanner.Record, i int) Entry {
		return Entry{ID: RecordID(i + 1), Record: rec}
	})
}

// OnRelaunchAttempt relaunches the record with id. A failed attempt keeps the
// current records so another one can be tried.
func (s *Session) OnRelaunchAttempt(id RecordID) Outcome {
	if s.relaunched {
		return Outcome{Err: ErrAlreadyRelaunched}
	}

	rec, ok := s.records[id]
	if !ok {
		return Outcome{Err: ErrUnknownRecord}
	}

	out := Outcome{Record: rec, Arguments: s.relauncher.Arguments(rec, s.extraArgs)}
	if err := s.relauncher.Relaunch(rec, s.extraArgs); err != nil {
		out.Err = err
		return out
	}

	s.log.Infoln("Relaunched record", int(id), rec.Label())
	s.relaunched = true
	out.Exit = true
	return out
}
