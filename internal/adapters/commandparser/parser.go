package commandparser

import (
	"strings"

	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

// BasicParser splits input lines on spaces, ';' and '|'.
// It has no quoting or escape support.
type BasicParser struct{}

// NewBasicParser creates a new BasicParser.
func NewBasicParser() ports.CommandParser {
	return &BasicParser{}
}

// Sanitize strips all trailing newline and carriage-return characters.
func (p *BasicParser) Sanitize(line string) string {
	return strings.TrimRight(line, "\r\n")
}

/*
Parse turns a line into a Pipeline in a single left-to-right scan.

Spaces separate arguments, ';' ends a command and '|' ends a command whose
output feeds the next one. Runs of delimiters never produce empty commands.
*/
func (p *BasicParser) Parse(line string) command.Pipeline {
	s := newScanState()
	for _, r := range line {
		switch {
		case isBlank(r):
			s.finishToken()
		case r == ';':
			s.finishToken()
			s.closeCommand(false)
			s.pipeIn = false
		case r == '|':
			s.finishToken()
			s.closeCommand(true)
			s.pipeIn = true
		default:
			s.appendRune(r)
		}
	}
	s.finishToken()
	s.closeCommand(false)
	return s.out
}
