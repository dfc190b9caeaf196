package session

import (
	"errors"
	"testing"

	"relaunch/process"
	"relaunch/relauncher"
	"relaunch/scanner"
)

type fakeLister struct {
	procs []process.ProcessInfo
	err   error
}

func (f *fakeLister) ListByName(name string) ([]process.ProcessInfo, error) {
	return f.procs, f.err
}

// fakeSpawner fails for executables listed in fail.
type fakeSpawner struct {
	fail  map[string]bool
	spawn []string
}

func (f *fakeSpawner) Spawn(exe, args string) error {
	if f.fail[exe] {
		return errors.New("file not found")
	}
	f.spawn = append(f.spawn, exe+" "+args)
	return nil
}

var twoInstances = []process.ProcessInfo{
	{PID: 11, CommandLine: `"C:\Old\Orca-Slicer.exe" --datadir "C:\Profiles\work"`},
	{PID: 12, CommandLine: `"C:\Orca\Orca-Slicer.exe" --datadir "C:\Profiles\home"`},
}

func newSession(lister *fakeLister, sp *fakeSpawner, h Handler) *Session {
	return New(
		scanner.New(lister),
		relauncher.New(sp, scanner.OrcaSlicer.CanonicalFlag()),
		scanner.OrcaSlicer,
		"--foo bar",
		h,
	)
}

func TestScan_NotifiesHandlerAndKeysRecords(t *testing.T) {
	var got []scanner.Result
	s := newSession(&fakeLister{procs: twoInstances}, &fakeSpawner{}, HandlerFunc(func(res scanner.Result) {
		got = append(got, res)
	}))

	s.Scan()

	if len(got) != 1 {
		t.Fatalf("expected 1 OnScanComplete, got %d", len(got))
	}
	entries := s.Records()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 1 || entries[0].Record.Label() != "work" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[1].ID != 2 || entries[1].Record.Label() != "home" {
		t.Errorf("unexpected second entry %+v", entries[1])
	}
}

func TestOnRelaunchAttempt_FailureThenSuccess(t *testing.T) {
	sp := &fakeSpawner{fail: map[string]bool{`C:\Old\Orca-Slicer.exe`: true}}
	s := newSession(&fakeLister{procs: twoInstances}, sp, nil)
	s.Scan()

	out := s.OnRelaunchAttempt(1)
	if out.Err == nil || out.Exit {
		t.Fatalf("expected failure without exit, got %+v", out)
	}
	var spawnErr *relauncher.SpawnError
	if !errors.As(out.Err, &spawnErr) {
		t.Errorf("expected *SpawnError, got %v", out.Err)
	}
	if len(s.Records()) != 2 {
		t.Fatalf("records lost after failed attempt")
	}

	out = s.OnRelaunchAttempt(2)
	if out.Err != nil || !out.Exit {
		t.Fatalf("expected success with exit, got %+v", out)
	}
	want := `--datadir "C:\Profiles\home" --foo bar`
	if out.Arguments != want {
		t.Errorf("expected %q, got %q", want, out.Arguments)
	}
	if len(sp.spawn) != 1 || sp.spawn[0] != `C:\Orca\Orca-Slicer.exe `+want {
		t.Errorf("unexpected spawns %q", sp.spawn)
	}

	if out := s.OnRelaunchAttempt(2); !errors.Is(out.Err, ErrAlreadyRelaunched) {
		t.Errorf("expected ErrAlreadyRelaunched, got %v", out.Err)
	}
}

func TestOnRelaunchAttempt_UnknownRecord(t *testing.T) {
	s := newSession(&fakeLister{procs: twoInstances}, &fakeSpawner{}, nil)

	if out := s.OnRelaunchAttempt(1); !errors.Is(out.Err, ErrUnknownRecord) {
		t.Errorf("expected ErrUnknownRecord before scanning, got %v", out.Err)
	}

	s.Scan()
	if out := s.OnRelaunchAttempt(3); !errors.Is(out.Err, ErrUnknownRecord) {
		t.Errorf("expected ErrUnknownRecord, got %v", out.Err)
	}
}

func TestScan_RescanReplacesRecords(t *testing.T) {
	lister := &fakeLister{procs: twoInstances}
	s := newSession(lister, &fakeSpawner{}, nil)
	s.Scan()

	lister.err = errors.New("access denied")
	res := s.Scan()

	if len(res.Records) != 0 || len(s.Records()) != 0 {
		t.Errorf("expected empty result after listing failure")
	}
	if out := s.OnRelaunchAttempt(1); !errors.Is(out.Err, ErrUnknownRecord) {
		t.Errorf("expected stale IDs to be gone, got %v", out.Err)
	}
}
