package maze

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrEntranceNotFound indicates no entrance-coloured pixel was found.
	ErrEntranceNotFound = errors.New("maze: the maze entrance could not be identified")
	// ErrExitNotFound indicates no exit-coloured pixel was found.
	ErrExitNotFound = errors.New("maze: the maze exit could not be identified")
	// ErrInvalidPerimeter indicates a non-wall pixel on the outermost ring.
	ErrInvalidPerimeter = errors.New("maze: the maze perimeter can only contain wall features")
	// ErrInvalidMaze is returned by Solve for a maze that failed validation.
	ErrInvalidMaze = errors.New("maze: maze is not valid")
	// ErrNoSolution is returned by Solve for a valid maze with no path from entrance to exit.
	ErrNoSolution = errors.New("maze: unable to find a solution")
)

// Causes wrapped by ErrNoSolution. Both surface to callers as ErrNoSolution.
var (
	errNoEndpointCorridor = errors.New("no corridor reaches the entrance or exit")
	errSearchExhausted    = errors.New("every reachable corridor was searched")
	errUntraceable        = errors.New("no path avoids the entrance and exit regions")
)

// ValidationError lists every reason a maze failed validation, in detection
// order. It matches ErrInvalidMaze and each listed error under errors.Is.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return ErrInvalidMaze.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrInvalidMaze}, e.Errs...)
}
