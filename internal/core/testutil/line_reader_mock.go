package testutil

import (
	"io"

	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

// MockLineReader hands out Lines one by one and then io.EOF.
// Set Err to make ReadLine fail once the lines are used up instead.
type MockLineReader struct {
	Lines  []string
	Err    error
	Reads  int
	Closed bool
}

func (m *MockLineReader) ReadLine() (string, error) {
	m.Reads++
	if len(m.Lines) == 0 {
		if m.Err != nil {
			return "", m.Err
		}
		return "", io.EOF
	}
	line := m.Lines[0]
	m.Lines = m.Lines[1:]
	return line, nil
}

func (m *MockLineReader) Close() error {
	m.Closed = true
	return nil
}

var _ ports.LineReader = (*MockLineReader)(nil)
