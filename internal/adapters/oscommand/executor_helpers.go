package oscommand

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
)

// stage is one command being launched, with its own pipe when it is a pipe source.
type stage struct {
	cmd    command.Command
	proc   *exec.Cmd // nil when the executable could not be started
	pipeR  *os.File
	pipeW  *os.File
	status int
}

// closePipe releases the parent's copy of the stage's pipe. Safe on nil.
func (s *stage) closePipe() {
	if s == nil {
		return
	}
	if s.pipeR != nil {
		s.pipeR.Close()
		s.pipeR = nil
	}
	if s.pipeW != nil {
		s.pipeW.Close()
		s.pipeW = nil
	}
}

// wait reaps the child and records its exit status.
func (s *stage) wait() {
	if s.proc == nil {
		return
	}
	s.status = exitStatus(s.proc.Wait())
	s.proc = nil
}

/*
start creates the child process for st. Its stdin is the previous stage's
pipe when the command reads from a pipe and that pipe exists; otherwise
the shell's own stdin is inherited.

A failure to find or load the executable is local to this stage: it is
reported on stderr and recorded as exit status 126/127. Any other failure
is returned as a *command.ResourceError.
*/
func (e *OSPipelineExecutor) start(st *stage, prev *stage) error {
	proc := exec.Command(st.cmd.Args[0], st.cmd.Args[1:]...)
	proc.Stdin = e.stdin
	if st.cmd.ReadsFromPipe && prev != nil && prev.pipeR != nil {
		proc.Stdin = prev.pipeR
	}
	proc.Stdout = e.stdout
	if st.pipeW != nil {
		proc.Stdout = st.pipeW
	}
	proc.Stderr = e.stderr

	if err := proc.Start(); err != nil {
		status, reason, childLocal := classifyStartError(err)
		if !childLocal {
			return &command.ResourceError{Op: "fork", Command: st.cmd.Name(), Err: err}
		}
		fmt.Fprintf(e.stderr, "tsh: %s: %v\n", st.cmd.Name(), reason)
		st.status = status
		return nil
	}
	st.proc = proc
	return nil
}

// classifyStartError tells executable failures apart from resource exhaustion.
func classifyStartError(err error) (status int, reason error, childLocal bool) {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		if errors.Is(execErr.Err, exec.ErrNotFound) || errors.Is(execErr.Err, exec.ErrDot) {
			return 127, execErr.Err, true
		}
		return 126, execErr.Err, true
	}

	reason = err
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		reason = pathErr.Err
	}
	if status, ok := imageErrorStatus(err); ok {
		return status, reason, true
	}
	return 0, err, false
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return exitErr.ExitCode()
	}
	return 1
}
