//go:build !linux

package main

import (
	"relaunch/process"
	"relaunch/process_gopsutil"
)

func newLister() process.ProcessLister {
	return process_gopsutil.NewLister()
}
