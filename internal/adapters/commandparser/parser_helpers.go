package commandparser

import (
	"strings"

	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
)

type tokenState int

const (
	awaitingToken tokenState = iota
	inToken
)

// scanState is the parser's state between runes.
type scanState struct {
	state  tokenState
	token  strings.Builder
	open   *command.Command // nil until the first rune of a new command
	pipeIn bool             // carried into the next command that opens
	out    command.Pipeline
}

func newScanState() *scanState {
	return &scanState{state: awaitingToken}
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// appendRune adds r to the current token, opening a command if needed.
func (s *scanState) appendRune(r rune) {
	if s.open == nil {
		s.open = &command.Command{ReadsFromPipe: s.pipeIn}
	}
	s.token.WriteRune(r)
	s.state = inToken
}

// finishToken moves a non-empty token into the open command's arguments.
func (s *scanState) finishToken() {
	if s.state != inToken {
		return
	}
	s.open.Args = append(s.open.Args, s.token.String())
	s.token.Reset()
	s.state = awaitingToken
}

// closeCommand pushes the open command, if there is one.
func (s *scanState) closeCommand(writesToPipe bool) {
	if s.open == nil {
		return
	}
	s.open.WritesToPipe = writesToPipe
	s.out = append(s.out, *s.open)
	s.open = nil
}
