package cli

import "fmt"

// Exit codes for the relnotes CLI
// The contract is deliberately small: release scripts branch on success
// only, so every failure class maps to the same code.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates any validation, extraction, or I/O failure
	ExitFailure = 1
)

// exitError signals a failure whose diagnostics were already written to
// stderr by the command itself. Execute does not render it again.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates an error carrying an exit code. Commands return it
// after printing their own diagnostics.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := err.(*exitError); ok {
		return exitErr.code
	}
	return ExitFailure
}
