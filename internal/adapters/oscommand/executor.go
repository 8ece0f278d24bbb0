package oscommand

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

/*
OSPipelineExecutor implements the PipelineExecutor interface with real OS
processes. Each command becomes one child process; commands joined by '|'
are connected with os.Pipe and started back-to-back so they run
concurrently.
*/
type OSPipelineExecutor struct {
	quitKeyword string
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	newPipe     func() (r *os.File, w *os.File, err error)
}

// NewOSPipelineExecutor creates a new OSPipelineExecutor.
// Commands that do not read from or write to a pipe use stdin and stdout;
// every command, and the executor's own diagnostics, use stderr.
func NewOSPipelineExecutor(quitKeyword string, stdin io.Reader, stdout, stderr io.Writer) ports.PipelineExecutor {
	return &OSPipelineExecutor{
		quitKeyword: quitKeyword,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		newPipe:     os.Pipe,
	}
}

// Execute runs the pipeline and reports whether the quit command was reached.
// Exit statuses of the children are collected but not returned.
func (e *OSPipelineExecutor) Execute(p command.Pipeline) (bool, error) {
	terminated, _, err := e.run(p)
	return terminated, err
}

/*
run walks the pipeline in order. A command that is not a pipe source is
waited for before the next one starts; pipe sources are reaped after the
scan, once their consumers exist.

The parent closes its copy of a pipe right after the consumer has been
started, so the consumer sees EOF once the producer exits.
*/
func (e *OSPipelineExecutor) run(p command.Pipeline) (bool, []*stage, error) {
	var (
		started    []*stage
		deferred   []*stage
		prev       *stage
		terminated bool
		runErr     error
	)

	for _, c := range p {
		if len(c.Args) == 0 {
			fmt.Fprintf(e.stderr, "tsh: %v\n", command.ErrEmptyCommand)
			prev.closePipe()
			prev = nil
			continue
		}
		if c.Name() == e.quitKeyword {
			terminated = true
			break
		}

		st := &stage{cmd: c}
		if c.WritesToPipe {
			r, w, err := e.newPipe()
			if err != nil {
				runErr = &command.ResourceError{Op: "pipe", Command: c.Name(), Err: err}
				break
			}
			st.pipeR, st.pipeW = r, w
		}

		if err := e.start(st, prev); err != nil {
			st.closePipe()
			runErr = err
			break
		}
		started = append(started, st)
		prev.closePipe()

		if c.WritesToPipe {
			deferred = append(deferred, st)
		} else {
			st.wait()
		}
		prev = st
	}

	prev.closePipe()
	for _, st := range deferred {
		st.wait()
	}
	return terminated, started, runErr
}
