package main

import (
	"fmt"
	"os"
	"strings"

	"relaunch/relauncher"
	"relaunch/scanner"
	"relaunch/session"
	"relaunch/spawn"
	"relaunch/tui"

	"golang.org/x/term"
)

func main() {
	cfg := loadConfig(os.Getenv)

	// everything this tool was started with goes to the relaunched instance
	extraArgs := strings.Join(os.Args[1:], " ")

	useTUI := cfg.UI == uiTUI
	if cfg.UI == uiAuto {
		useTUI = term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}

	// the picker is rebuilt from the session after every scan, so only plain mode listens
	var plain *plainPresenter
	var handler session.Handler
	if !useTUI {
		plain = newPlainPresenter(os.Stdout, cfg.Debug)
		handler = plain
	}

	sess := session.New(
		scanner.New(newLister()),
		relauncher.New(spawn.New(), cfg.Target.CanonicalFlag()),
		cfg.Target,
		extraArgs,
		handler,
	)

	if useTUI {
		os.Exit(runTUI(sess))
	}
	os.Exit(plain.run(sess, os.Stdin))
}

func runTUI(sess *session.Session) int {
	sess.Scan()

	opts := tui.Options{}
	for {
		choice, err := tui.Run(sess, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		opts.ShowLog = choice.ShowLog

		switch choice.Action {
		case tui.ActionQuit:
			return 0
		case tui.ActionRescan:
			sess.Scan()
			opts.Status, opts.StatusErr = "", false
		case tui.ActionRelaunch:
			out := sess.OnRelaunchAttempt(choice.ID)
			if out.Exit {
				printRelaunched(os.Stdout, out)
				return 0
			}
			opts.Status, opts.StatusErr = failureText(out), true
		}
	}
}
