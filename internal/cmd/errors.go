package cmd

import (
	"fmt"
	"strconv"
)

// ArgumentError reports a malformed command line.
type ArgumentError struct {
	Message string
}

// Error implements the error interface for ArgumentError.
func (e *ArgumentError) Error() string {
	return e.Message
}

// ExitError carries the process exit status of a run whose diagnostics have
// already been written.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ParseWidth parses the width argument. Only ASCII decimal digits are
// accepted, so signs, spaces and hex prefixes are all rejected.
func ParseWidth(arg string) (int, error) {
	if arg == "" {
		return 0, &ArgumentError{Message: "invalid width \"\": must be an integer"}
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] < '0' || arg[i] > '9' {
			return 0, &ArgumentError{Message: fmt.Sprintf("invalid width %q: must be an integer", arg)}
		}
	}

	width, err := strconv.Atoi(arg)
	if err != nil || width < 1 {
		return 0, &ArgumentError{Message: fmt.Sprintf("invalid width %q: must be a positive integer", arg)}
	}
	return width, nil
}
