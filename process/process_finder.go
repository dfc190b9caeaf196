package process

// ProcessLister discovers running processes by name
type ProcessLister interface {
	// ListByName returns every process whose name matches name (case-insensitive).
	// A per-process read failure leaves that entry's CommandLine empty; an error is
	// only returned when the process table itself could not be queried.
	ListByName(name string) ([]ProcessInfo, error)
}
