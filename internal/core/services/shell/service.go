package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

type service struct {
	reader   ports.LineReader
	parser   ports.CommandParser
	executor ports.PipelineExecutor
	errOut   io.Writer
	// exitOnResourceError ends Run when a pipe or process cannot be created.
	exitOnResourceError bool
}

// NewService creates the read-eval loop service.
// It panics if reader, parser, executor, or errOut are nil.
func NewService(
	lr ports.LineReader,
	cp ports.CommandParser,
	pe ports.PipelineExecutor,
	errOut io.Writer,
	exitOnResourceError bool,
) ports.ShellService {
	if lr == nil {
		panic("lineReader cannot be nil")
	}
	if cp == nil {
		panic("commandParser cannot be nil")
	}
	if pe == nil {
		panic("pipelineExecutor cannot be nil")
	}
	if errOut == nil {
		panic("errOut cannot be nil")
	}
	return &service{
		reader:              lr,
		parser:              cp,
		executor:            pe,
		errOut:              errOut,
		exitOnResourceError: exitOnResourceError,
	}
}

// Run reads and executes lines until end of input or the quit command.
// End of input is a normal exit and returns nil.
func (s *service) Run() error {
	for {
		line, err := s.reader.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read command line: %w", err)
		}
		// The reader may hand back a final unterminated line together with io.EOF.
		if line != "" {
			stop, runErr := s.runLine(line)
			if runErr != nil {
				return runErr
			}
			if stop {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// RunLine executes a single line and reports whether the quit command was reached.
// A resource failure is returned to the caller instead of being reported.
func (s *service) RunLine(line string) (bool, error) {
	terminated, err := s.executor.Execute(s.Inspect(line))
	if err != nil {
		return terminated, fmt.Errorf("failed to execute %q: %w", s.parser.Sanitize(line), err)
	}
	return terminated, nil
}

// Inspect returns the pipeline a line parses to without running anything.
func (s *service) Inspect(line string) command.Pipeline {
	return s.parser.Parse(s.parser.Sanitize(line))
}
