package main

import (
	"strings"

	"relaunch/scanner"
)

const (
	uiAuto  = ""
	uiTUI   = "tui"
	uiPlain = "plain"
)

// config holds the tool's own settings. They come from the environment because the
// whole argument vector is forwarded to the relaunched instance.
type config struct {
	Target scanner.Target
	UI     string
	Debug  bool
}

func loadConfig(getenv func(string) string) config {
	cfg := config{Target: scanner.OrcaSlicer}

	if v := strings.TrimSpace(getenv("RELAUNCH_PROCESS")); v != "" {
		cfg.Target.ProcessName = v
		// an explicit process name is also the expected executable unless overridden
		cfg.Target.ExecutableName = v
	}
	if v := strings.TrimSpace(getenv("RELAUNCH_EXECUTABLE")); v != "" {
		cfg.Target.ExecutableName = v
	}
	if flags := splitList(getenv("RELAUNCH_FLAGS")); len(flags) > 0 {
		cfg.Target.DataDirFlags = flags
	}

	switch ui := strings.ToLower(strings.TrimSpace(getenv("RELAUNCH_UI"))); ui {
	case uiTUI, uiPlain:
		cfg.UI = ui
	default:
		cfg.UI = uiAuto
	}

	cfg.Debug = strings.TrimSpace(getenv("RELAUNCH_DEBUG")) != ""
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
