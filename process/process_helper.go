package process

// ProcessSpawner starts new processes
type ProcessSpawner interface {
	// Spawn starts executablePath with arguments given as one command-line string.
	// It returns once the process has been started and does not wait for it.
	Spawn(executablePath, arguments string) error
}
