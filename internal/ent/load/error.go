package load

import "fmt"

// ImportError is returned when an external import command fails to start
// or exits with a non-zero status.
type ImportError struct {
	// Command is the complete command line that failed.
	Command string

	// Err is the underlying error from the process.
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("unable to run: %s", e.Command)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
