package coloransi

import "testing"

func withEnabled(t *testing.T, on bool) {
	t.Helper()
	prev := Enabled
	Enabled = on
	t.Cleanup(func() { Enabled = prev })
}

func TestForeground(t *testing.T) {
	withEnabled(t, true)

	if got := Foreground(Red, "a", 1); got != "\033[31ma 1\033[0m" {
		t.Errorf("unexpected ANSI output %q", got)
	}
	if got := Foreground(RGB(1, 2, 3), "x"); got != "\033[38;2;1;2;3mx\033[0m" {
		t.Errorf("unexpected RGB output %q", got)
	}
}

func TestColor(t *testing.T) {
	withEnabled(t, true)

	want := "\033[31m\033[48;2;255;140;0mscanner\033[0m"
	if got := Color(Red, ColorOrange, "scanner"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := OneBackground(Blue); got != "\033[44m" {
		t.Errorf("unexpected background %q", got)
	}
}

func TestDisabled(t *testing.T) {
	withEnabled(t, false)

	if got := Color(Red, ColorOrange, "scanner", "x"); got != "scanner x" {
		t.Errorf("expected plain text, got %q", got)
	}
	if got := Bold("b"); got != "b" {
		t.Errorf("expected plain text, got %q", got)
	}
}
