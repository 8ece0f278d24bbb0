package shell

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
)

// runLine executes one line inside Run. It reports whether the loop should stop.
// Resource failures are printed and the loop goes on, unless exitOnResourceError
// is set: then the failure is returned and ends the session.
func (s *service) runLine(line string) (bool, error) {
	terminated, err := s.executor.Execute(s.Inspect(line))
	if err == nil {
		return terminated, nil
	}

	var resErr *command.ResourceError
	if !errors.As(err, &resErr) {
		return true, fmt.Errorf("failed to execute %q: %w", s.parser.Sanitize(line), err)
	}
	if s.exitOnResourceError {
		return true, fmt.Errorf("failed to execute %q: %w", s.parser.Sanitize(line), resErr)
	}
	fmt.Fprintf(s.errOut, "tsh: %v\n", resErr)
	return terminated, nil
}
