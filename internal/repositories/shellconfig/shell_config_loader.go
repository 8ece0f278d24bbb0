package shellconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/tsh/internal/core/domain/shellconfig"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
	"gopkg.in/yaml.v3"
)

/*
ShellConfigLoader reads the shell settings from a YAML file.
It implements the ports.ShellConfigLoader interface.
*/
type ShellConfigLoader struct {
	configFile string // absolute path, empty if no file was found
	source     string
}

// NewShellConfigLoader creates a loader for the file located by finder.
// Not finding a file is not an error: Load then returns the defaults.
func NewShellConfigLoader(finder ports.ConfigFileFinder) ports.ShellConfigLoader {
	path, err := finder.Find()
	if err != nil || path == "" {
		return &ShellConfigLoader{source: "built-in defaults (no config file found)"}
	}
	return &ShellConfigLoader{
		configFile: path,
		source:     fmt.Sprintf("File: %s", toUserFriendlyPath(path)),
	}
}

// Source implements the ports.ShellConfigLoader interface.
func (l *ShellConfigLoader) Source() string {
	return l.source
}

// Load implements the ports.ShellConfigLoader interface.
// A missing or empty file yields the defaults; unknown keys are rejected.
func (l *ShellConfigLoader) Load() (shellconfig.Config, error) {
	cfg := shellconfig.Default()
	if l.configFile == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(l.configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", toUserFriendlyPath(l.configFile), err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return shellconfig.Default(), nil
		}
		return shellconfig.Default(), fmt.Errorf("failed to parse config file %s: %w", toUserFriendlyPath(l.configFile), err)
	}

	if err := validateConfig(cfg); err != nil {
		return shellconfig.Default(), fmt.Errorf("invalid config file %s: %w", toUserFriendlyPath(l.configFile), err)
	}
	return cfg, nil
}
