package command

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand is returned for a Command that reached execution without arguments.
var ErrEmptyCommand = errors.New("empty command")

/*
ResourceError reports a failure to acquire an OS resource (a pipe or a new
process) while launching a pipeline. It aborts the rest of the pipeline but
not the interactive session.
*/
type ResourceError struct {
	Op      string // "pipe" or "fork"
	Command string // name of the stage being launched
	Err     error
}

func (e *ResourceError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Command, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
