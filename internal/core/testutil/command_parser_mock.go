package testutil

import (
	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

// MockCommandParser is a mock implementation of ports.CommandParser.
type MockCommandParser struct {
	SanitizeFunc func(line string) string
	ParseFunc    func(line string) command.Pipeline
	// ParseCalls keeps track of the lines passed to Parse.
	ParseCalls []string
}

// Sanitize returns the line unchanged unless SanitizeFunc is set.
func (m *MockCommandParser) Sanitize(line string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(line)
	}
	return line
}

// Parse implements the ports.CommandParser interface.
func (m *MockCommandParser) Parse(line string) command.Pipeline {
	m.ParseCalls = append(m.ParseCalls, line)
	if m.ParseFunc != nil {
		return m.ParseFunc(line)
	}
	return nil
}

var _ ports.CommandParser = (*MockCommandParser)(nil)
