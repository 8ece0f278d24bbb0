/*
Package shellconfig defines the user-tunable settings of the shell.
*/
package shellconfig

const (
	DefaultPrompt      = "$ "
	DefaultQuitKeyword = "quit"
)

/*
Config holds the settings read from the YAML configuration file.
Flags given on the command line override these values.
*/
type Config struct {
	Prompt      string `yaml:"prompt"`
	QuitKeyword string `yaml:"quit_keyword"`
	// ExitOnResourceError ends the session when a pipe or process cannot be created.
	ExitOnResourceError bool `yaml:"exit_on_resource_error"`
	Color               bool `yaml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Prompt:      DefaultPrompt,
		QuitKeyword: DefaultQuitKeyword,
		Color:       true,
	}
}
