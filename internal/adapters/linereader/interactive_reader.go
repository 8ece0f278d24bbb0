package linereader

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/tsh/internal/core/ports"
	"github.com/chzyer/readline"
)

// InteractiveReader provides line editing on a terminal.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader creates a line editor on the process's terminal.
// History is disabled: nothing typed on one line is kept for the next.
func NewInteractiveReader(prompt string) (ports.LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

// ReadLine returns io.EOF on Ctrl-D. Ctrl-C discards the line being typed.
func (r *InteractiveReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

// Close restores the terminal.
func (r *InteractiveReader) Close() error {
	return r.rl.Close()
}
