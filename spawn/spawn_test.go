package spawn

import (
	"errors"
	"path/filepath"
	"testing"

	"relaunch/process"
)

func TestSpawn_MissingExecutable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "Orca-Slicer.exe")

	err := New().Spawn(missing, `--datadir "C:\Orca\profiles\default"`)
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
}

func TestSpawn_EmptyExecutable(t *testing.T) {
	if err := New().Spawn("", "--datadir x"); !errors.Is(err, process.ErrEmptyExecutable) {
		t.Errorf("expected ErrEmptyExecutable, got %v", err)
	}
}
