package player

import "errors"

var (
	// ErrEmptyCatalog indicates a session was built over a catalog with no entries.
	ErrEmptyCatalog = errors.New("player: catalog is empty")

	// ErrStepOutOfRange indicates a 1-based step number outside the catalog.
	ErrStepOutOfRange = errors.New("player: step out of range")

	// ErrRunnerStopped indicates a command was sent after the runner exited.
	ErrRunnerStopped = errors.New("player: runner stopped")
)
