package main

import (
	"relaunch/process"
	"relaunch/process_linux"
)

func newLister() process.ProcessLister {
	return process_linux.NewLister()
}
