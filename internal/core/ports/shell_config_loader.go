package ports

import "github.com/AntonioJCosta/tsh/internal/core/domain/shellconfig"

/*
ShellConfigLoader defines the contract for reading the shell settings.
This is a driven port, implemented by a repository that knows where and
in which format the configuration is stored.
*/
type ShellConfigLoader interface {
	// Load returns the stored configuration, or the defaults if none exists.
	Load() (shellconfig.Config, error)
	// Source returns a user-friendly description of where the settings came from.
	Source() string
}
