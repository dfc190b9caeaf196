//go:build !windows

package spawn

import (
	"os/exec"
	"testing"
)

func TestCommand_SplitsQuotedArguments(t *testing.T) {
	cmd, err := command("/opt/orca/orca-slicer", `--datadir "/home/me/Orca Data" --foo bar`)
	if err != nil {
		t.Fatalf("command() error: %v", err)
	}

	want := []string{"/opt/orca/orca-slicer", "--datadir", "/home/me/Orca Data", "--foo", "bar"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("expected %d args, got %d: %q", len(want), len(cmd.Args), cmd.Args)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("arg %d: expected %q, got %q", i, want[i], cmd.Args[i])
		}
	}
	if cmd.SysProcAttr == nil || !cmd.SysProcAttr.Setpgid {
		t.Error("expected child in its own process group")
	}
}

func TestCommand_BackslashesAreLiteral(t *testing.T) {
	tests := []struct {
		name string
		args string
		want []string
	}{
		{"trailing backslash in quotes", `--datadir "/home/me/odd dir\" --x`, []string{"--datadir", `/home/me/odd dir\`, "--x"}},
		{"backslash inside path", `--datadir "/srv/a\b\n" --x`, []string{"--datadir", `/srv/a\b\n`, "--x"}},
		{"unquoted backslash", `--datadir C:\P\main`, []string{"--datadir", `C:\P\main`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := command("/opt/orca/orca-slicer", tt.args)
			if err != nil {
				t.Fatalf("command() error: %v", err)
			}
			got := cmd.Args[1:]
			if len(got) != len(tt.want) {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestCommand_UnbalancedQuote(t *testing.T) {
	if _, err := command("/bin/true", `--datadir "/home/me`); err == nil {
		t.Error("expected error for unbalanced quote")
	}
}

func TestSpawn_StartsDetachedChild(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	if err := New().Spawn(sh, `-c "exit 0"`); err != nil {
		t.Errorf("Spawn() error: %v", err)
	}
}
