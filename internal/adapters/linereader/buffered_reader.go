package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

// BufferedReader reads lines from any io.Reader. It is used when input
// does not come from a terminal, e.g. a script piped into the shell.
type BufferedReader struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
}

// NewBufferedReader creates a new BufferedReader that writes prompt to out before each read.
func NewBufferedReader(in io.Reader, out io.Writer, prompt string) ports.LineReader {
	return &BufferedReader{
		reader: bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

// ReadLine returns the next line including its newline. Lines have no
// length limit. A last line without a newline is returned before io.EOF.
func (r *BufferedReader) ReadLine() (string, error) {
	if r.prompt != "" && r.out != nil {
		fmt.Fprint(r.out, r.prompt)
	}
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// Close implements ports.LineReader; the underlying reader is owned by the caller.
func (r *BufferedReader) Close() error {
	return nil
}
