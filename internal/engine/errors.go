package engine

import (
	"errors"
	"fmt"
)

// MissingArgumentError is reported when a command that needs an index was
// invoked without one.
type MissingArgumentError struct {
	Command string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing <id> argument for %q", e.Command)
}

// errQuit is returned by the quit handler to stop the loop.
var errQuit = errors.New("quit")

// errEmptyField is returned when add or edit receives a blank question or answer.
type errEmptyField string

func (e errEmptyField) Error() string {
	return fmt.Sprintf("the %s cannot be empty", string(e))
}
