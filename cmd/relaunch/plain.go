package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"relaunch/coloransi"
	"relaunch/scanner"
	"relaunch/session"
)

// plainPresenter is the line-oriented presenter used when there is no terminal.
// It prints every finished scan as the session reports it.
type plainPresenter struct {
	out     io.Writer
	showLog bool
}

func newPlainPresenter(out io.Writer, showLog bool) *plainPresenter {
	return &plainPresenter{out: out, showLog: showLog}
}

// OnScanComplete prints the numbered instances of res. Numbers are the session's
// 1-based record IDs.
func (p *plainPresenter) OnScanComplete(res scanner.Result) {
	if p.showLog {
		printLog(p.out, res)
	}

	if len(res.Records) == 0 {
		fmt.Fprintln(p.out, "No relaunchable instances found.")
		return
	}

	fmt.Fprintln(p.out, coloransi.Bold("Found Instances:"))
	for i, rec := range res.Records {
		fmt.Fprintf(p.out, "  [%d] %s  (PID %d) %s\n", i+1, rec.Label(), rec.PID, rec.ExecutablePath)
	}
}

// run reads commands from in until the user relaunches an instance or quits.
func (p *plainPresenter) run(sess *session.Session, in io.Reader) int {
	out := p.out
	args := sess.ExtraArgs()
	if args == "" {
		args = "None"
	}
	fmt.Fprintln(out, coloransi.Foreground(coloransi.ColorBlue, "Searching for processes named:", sess.Target().ProcessName))
	fmt.Fprintln(out, coloransi.Foreground(coloransi.ColorBlue, "Current app args to append:", args))

	sess.Scan()

	lastFailed := false
	input := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Select an instance, r to rescan, l for the scan log, q to quit: ")
		if !input.Scan() {
			fmt.Fprintln(out)
			if lastFailed {
				return 1
			}
			return 0
		}

		switch line := strings.TrimSpace(input.Text()); line {
		case "":
			continue
		case "q":
			return 0
		case "r":
			sess.Scan()
		case "l":
			printLog(out, sess.Result())
		default:
			n, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(out, "not a choice: %s\n", line)
				continue
			}

			res := sess.OnRelaunchAttempt(session.RecordID(n))
			if res.Exit {
				printRelaunched(out, res)
				return 0
			}
			lastFailed = true
			fmt.Fprintln(out, coloransi.Foreground(coloransi.Red, failureText(res)))
		}
	}
}

func printLog(out io.Writer, res scanner.Result) {
	fmt.Fprintln(out, "--- scan log ---")
	for _, line := range res.Lines() {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, "----------------")
}

func printRelaunched(out io.Writer, res session.Outcome) {
	fmt.Fprintf(out, "RELAUNCHED: '%s'\nArguments: %s\n", res.Record.ExecutablePath, res.Arguments)
}

func failureText(res session.Outcome) string {
	if res.Record.ExecutablePath == "" {
		return fmt.Sprintf("ERROR: %v", res.Err)
	}
	return fmt.Sprintf("ERROR relaunching: %v. Check that the executable path is valid and you have permission to run it.", res.Err)
}
