package oscommand

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers; piped children share stderr.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func requireTools(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not found in PATH: %v", name, err)
		}
	}
}

func newTestExecutor(stdin string) (*OSPipelineExecutor, *syncBuffer, *syncBuffer) {
	stdout, stderr := &syncBuffer{}, &syncBuffer{}
	executor := NewOSPipelineExecutor("quit", strings.NewReader(stdin), stdout, stderr).(*OSPipelineExecutor)
	return executor, stdout, stderr
}

func pipe(args ...[]string) command.Pipeline {
	p := make(command.Pipeline, len(args))
	for i, a := range args {
		p[i] = command.Command{
			Args:          a,
			ReadsFromPipe: i > 0,
			WritesToPipe:  i < len(args)-1,
		}
	}
	return p
}

func TestNewOSPipelineExecutor(t *testing.T) {
	executor := NewOSPipelineExecutor("quit", nil, nil, nil)
	if executor == nil {
		t.Fatal("NewOSPipelineExecutor() returned nil")
	}
	if _, ok := executor.(*OSPipelineExecutor); !ok {
		t.Errorf("NewOSPipelineExecutor() did not return a *OSPipelineExecutor, got %T", executor)
	}
}

func TestOSPipelineExecutor_Execute(t *testing.T) {
	requireTools(t, "echo", "wc", "head", "tr", "sort", "cat")

	tests := []struct {
		name       string
		stdin      string
		pipeline   command.Pipeline
		wantStdout string
	}{
		{
			name:       "single command",
			pipeline:   command.Pipeline{{Args: []string{"echo", "hello", "world"}}},
			wantStdout: "hello world",
		},
		{
			name:       "two stage pipe",
			pipeline:   pipe([]string{"echo", "hi"}, []string{"wc", "-c"}),
			wantStdout: "3",
		},
		{
			name:       "three stage pipe",
			pipeline:   pipe([]string{"echo", "b a"}, []string{"tr", " ", "\n"}, []string{"sort"}),
			wantStdout: "a\nb",
		},
		{
			name:       "pipe larger than the pipe buffer",
			pipeline:   pipe([]string{"head", "-c", "200000", "/dev/zero"}, []string{"wc", "-c"}),
			wantStdout: "200000",
		},
		{
			name:  "reader without producer inherits stdin",
			stdin: "from stdin\n",
			pipeline: command.Pipeline{
				{Args: []string{"cat"}, ReadsFromPipe: true},
			},
			wantStdout: "from stdin",
		},
		{
			name:  "trailing pipe source without consumer",
			stdin: "",
			pipeline: command.Pipeline{
				{Args: []string{"echo", "dropped"}, WritesToPipe: true},
				{Args: []string{"echo", "kept"}},
			},
			wantStdout: "kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor, stdout, stderr := newTestExecutor(tt.stdin)

			terminated, err := executor.Execute(tt.pipeline)
			if err != nil {
				t.Fatalf("Execute() unexpected error = %v (stderr: %s)", err, stderr.String())
			}
			if terminated {
				t.Errorf("Execute() terminated = true, want false")
			}
			if got := strings.TrimSpace(stdout.String()); got != tt.wantStdout {
				t.Errorf("Execute() stdout = %q, want %q", got, tt.wantStdout)
			}
		})
	}
}

func TestOSPipelineExecutor_SequentialCommandsDoNotOverlap(t *testing.T) {
	requireTools(t, "sh", "echo")
	executor, stdout, _ := newTestExecutor("")

	p := command.Pipeline{
		{Args: []string{"sh", "-c", "sleep 0.2; echo first"}},
		{Args: []string{"echo", "second"}},
	}
	if _, err := executor.Execute(p); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if got := stdout.String(); got != "first\nsecond\n" {
		t.Errorf("Execute() stdout = %q, want %q", got, "first\nsecond\n")
	}
}

func TestOSPipelineExecutor_Quit(t *testing.T) {
	requireTools(t, "touch")
	dir := t.TempDir()
	before := filepath.Join(dir, "before")
	after := filepath.Join(dir, "after")

	tests := []struct {
		name           string
		pipeline       command.Pipeline
		wantTerminated bool
		wantStarted    int
	}{
		{
			name:           "quit alone starts nothing",
			pipeline:       command.Pipeline{{Args: []string{"quit"}}},
			wantTerminated: true,
			wantStarted:    0,
		},
		{
			name:           "quit ignores extra arguments",
			pipeline:       command.Pipeline{{Args: []string{"quit", "now", "please"}}},
			wantTerminated: true,
			wantStarted:    0,
		},
		{
			name: "commands after quit never run",
			pipeline: command.Pipeline{
				{Args: []string{"touch", before}},
				{Args: []string{"quit"}},
				{Args: []string{"touch", after}},
			},
			wantTerminated: true,
			wantStarted:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor, _, _ := newTestExecutor("")
			terminated, started, err := executor.run(tt.pipeline)
			if err != nil {
				t.Fatalf("run() unexpected error = %v", err)
			}
			if terminated != tt.wantTerminated {
				t.Errorf("run() terminated = %v, want %v", terminated, tt.wantTerminated)
			}
			if len(started) != tt.wantStarted {
				t.Errorf("run() started %d stages, want %d", len(started), tt.wantStarted)
			}
		})
	}

	if _, err := os.Stat(before); err != nil {
		t.Errorf("command before quit did not run: %v", err)
	}
	if _, err := os.Stat(after); !os.IsNotExist(err) {
		t.Errorf("command after quit ran, stat error = %v", err)
	}
}

func TestOSPipelineExecutor_QuitKeywordIsCaseSensitive(t *testing.T) {
	executor, _, stderr := newTestExecutor("")
	terminated, err := executor.Execute(command.Pipeline{{Args: []string{"QUIT"}}})
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if terminated {
		t.Error("Execute() terminated on QUIT, want only exact match on quit")
	}
	if !strings.Contains(stderr.String(), "tsh: QUIT:") {
		t.Errorf("stderr = %q, want a diagnostic naming QUIT", stderr.String())
	}
}

func TestOSPipelineExecutor_ExecutableFailures(t *testing.T) {
	notExecutable := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(notExecutable, []byte("not a program\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tests := []struct {
		name       string
		args       []string
		wantStatus int
	}{
		{
			name:       "not found in PATH",
			args:       []string{"tsh-no-such-command-xyz"},
			wantStatus: 127,
		},
		{
			name:       "missing absolute path",
			args:       []string{"/nonexistent/dir/tsh-no-such-command"},
			wantStatus: 127,
		},
		{
			name:       "file without execute permission",
			args:       []string{notExecutable},
			wantStatus: 126,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor, _, stderr := newTestExecutor("")
			terminated, started, err := executor.run(command.Pipeline{{Args: tt.args}})
			if err != nil {
				t.Fatalf("run() error = %v, want executable failures to stay local", err)
			}
			if terminated {
				t.Error("run() terminated = true, want false")
			}
			if len(started) != 1 {
				t.Fatalf("run() started %d stages, want 1", len(started))
			}
			if started[0].status != tt.wantStatus {
				t.Errorf("stage status = %d, want %d", started[0].status, tt.wantStatus)
			}
			if want := "tsh: " + tt.args[0] + ":"; !strings.Contains(stderr.String(), want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), want)
			}
		})
	}
}

func TestOSPipelineExecutor_ArgumentListTooLong(t *testing.T) {
	requireTools(t, "echo")
	executor, stdout, stderr := newTestExecutor("")

	huge := strings.Repeat("x", 4<<20)
	p := command.Pipeline{
		{Args: []string{"echo", huge}},
		{Args: []string{"echo", "after"}},
	}
	terminated, started, err := executor.run(p)
	if err != nil {
		t.Fatalf("run() error = %v, want an oversized argument list to stay local", err)
	}
	if terminated {
		t.Error("run() terminated = true, want false")
	}
	if len(started) != 2 {
		t.Fatalf("run() started %d stages, want 2", len(started))
	}
	if started[0].status != 126 {
		t.Errorf("oversized stage status = %d, want 126", started[0].status)
	}
	if got := stdout.String(); got != "after\n" {
		t.Errorf("stdout = %q, want %q", got, "after\n")
	}
	if !strings.Contains(stderr.String(), "tsh: echo:") {
		t.Errorf("stderr = %q, want a diagnostic naming echo", stderr.String())
	}
}

func TestOSPipelineExecutor_ExitStatusIsCollected(t *testing.T) {
	requireTools(t, "sh")
	executor, _, _ := newTestExecutor("")

	_, started, err := executor.run(pipe([]string{"sh", "-c", "exit 4"}, []string{"sh", "-c", "cat >/dev/null; exit 3"}))
	if err != nil {
		t.Fatalf("run() unexpected error = %v", err)
	}
	if len(started) != 2 {
		t.Fatalf("run() started %d stages, want 2", len(started))
	}
	if started[0].status != 4 || started[1].status != 3 {
		t.Errorf("statuses = %d, %d, want 4, 3", started[0].status, started[1].status)
	}
}

func TestOSPipelineExecutor_FailedStageInsidePipe(t *testing.T) {
	requireTools(t, "echo", "wc")
	executor, stdout, stderr := newTestExecutor("")

	terminated, err := executor.Execute(pipe([]string{"echo", "hi"}, []string{"tsh-no-such-command-xyz"}, []string{"wc", "-c"}))
	if err != nil || terminated {
		t.Fatalf("Execute() = %v, %v, want false, nil", terminated, err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "0" {
		t.Errorf("consumer of failed stage read %q, want 0 bytes", got)
	}
	if !strings.Contains(stderr.String(), "tsh-no-such-command-xyz") {
		t.Errorf("stderr = %q, want diagnostic naming the missing command", stderr.String())
	}
}

func TestOSPipelineExecutor_EmptyCommandIsSkipped(t *testing.T) {
	requireTools(t, "echo")
	executor, stdout, stderr := newTestExecutor("")

	p := command.Pipeline{
		{Args: []string{"echo", "before"}, WritesToPipe: true},
		{ReadsFromPipe: true, WritesToPipe: true},
		{Args: []string{"echo", "after"}, ReadsFromPipe: true},
	}
	terminated, started, err := executor.run(p)
	if err != nil || terminated {
		t.Fatalf("run() = %v, %v, want false, nil", terminated, err)
	}
	if len(started) != 2 {
		t.Errorf("run() started %d stages, want 2", len(started))
	}
	if got := stdout.String(); got != "after\n" {
		t.Errorf("stdout = %q, want %q", got, "after\n")
	}
	if !strings.Contains(stderr.String(), command.ErrEmptyCommand.Error()) {
		t.Errorf("stderr = %q, want %q diagnostic", stderr.String(), command.ErrEmptyCommand)
	}
}

func TestOSPipelineExecutor_PipeFailureAbortsAndReaps(t *testing.T) {
	requireTools(t, "echo", "cat", "wc")
	executor, stdout, _ := newTestExecutor("")

	pipeErr := errors.New("too many open files")
	calls := 0
	executor.newPipe = func() (*os.File, *os.File, error) {
		calls++
		if calls == 2 {
			return nil, nil, pipeErr
		}
		return os.Pipe()
	}

	terminated, started, err := executor.run(pipe([]string{"echo", "hi"}, []string{"cat"}, []string{"wc", "-c"}))
	if terminated {
		t.Error("run() terminated = true, want false")
	}
	var resErr *command.ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("run() error = %v, want *command.ResourceError", err)
	}
	if resErr.Op != "pipe" || resErr.Command != "cat" {
		t.Errorf("ResourceError = %+v, want op pipe for cat", resErr)
	}
	if !errors.Is(err, pipeErr) {
		t.Errorf("errors.Is(err, pipeErr) = false, want the cause to be wrapped")
	}
	if len(started) != 1 {
		t.Fatalf("run() started %d stages, want 1", len(started))
	}
	if started[0].proc != nil {
		t.Error("producer started before the failure was not reaped")
	}
	if started[0].pipeR != nil || started[0].pipeW != nil {
		t.Error("pending pipe was not closed after the abort")
	}
	if stdout.String() != "" {
		t.Errorf("stdout = %q, want nothing from an aborted pipeline", stdout.String())
	}
}

func TestClassifyStartError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantChildOnly bool
	}{
		{
			name:          "lookup not found",
			err:           &exec.Error{Name: "x", Err: exec.ErrNotFound},
			wantStatus:    127,
			wantChildOnly: true,
		},
		{
			name:          "lookup permission",
			err:           &exec.Error{Name: "x", Err: os.ErrPermission},
			wantStatus:    126,
			wantChildOnly: true,
		},
		{
			name:          "unknown start failure",
			err:           errors.New("resource temporarily unavailable"),
			wantChildOnly: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, childLocal := classifyStartError(tt.err)
			if childLocal != tt.wantChildOnly {
				t.Errorf("classifyStartError() childLocal = %v, want %v", childLocal, tt.wantChildOnly)
			}
			if childLocal && status != tt.wantStatus {
				t.Errorf("classifyStartError() status = %d, want %d", status, tt.wantStatus)
			}
		})
	}
}
