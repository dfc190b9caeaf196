package process

import "strconv"

// ProcessID represents a unique identifier for a process
type ProcessID int

func (pid ProcessID) String() string {
	return strconv.Itoa(int(pid))
}

// ProcessInfo is what a ProcessLister reports for one matching process
type ProcessInfo struct {
	PID         ProcessID // Process ID
	Name        string    // Name the process matched under
	CommandLine string    // Full command line, empty when it could not be read
}
