package ports

import "github.com/AntonioJCosta/tsh/internal/core/domain/command"

// PipelineExecutor runs a parsed Pipeline as child processes.
type PipelineExecutor interface {
	// Execute returns true when the termination command was reached.
	// A non-nil error is a *command.ResourceError that aborted the pipeline.
	Execute(p command.Pipeline) (terminated bool, err error)
}
