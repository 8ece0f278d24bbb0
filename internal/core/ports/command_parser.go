package ports

import "github.com/AntonioJCosta/tsh/internal/core/domain/command"

/*
CommandParser defines the contract for turning a raw input line into a
Pipeline. Implementations perform no process or OS interaction.
*/
type CommandParser interface {
	// Sanitize removes trailing newline and carriage-return characters.
	Sanitize(line string) string
	// Parse splits a sanitized line on spaces, ';' and '|'.
	Parse(line string) command.Pipeline
}
