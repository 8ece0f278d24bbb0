package ports

import "github.com/AntonioJCosta/tsh/internal/core/domain/command"

// ShellService defines the read-eval loop of the interpreter.
type ShellService interface {
	// Run prompts and executes lines until end of input or the quit command.
	Run() error
	// RunLine executes a single line and reports whether quit was reached.
	RunLine(line string) (bool, error)
	// Inspect returns the Pipeline a line parses to without running it.
	Inspect(line string) command.Pipeline
}
