package shellconfig

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

const (
	configEnvVar   = "TSH_CONFIG"
	configDir      = ".tsh"
	configFilename = "config.yaml"
)

// DefaultConfigFileFinder looks for the configuration file in the usual places.
type DefaultConfigFileFinder struct{}

// NewDefaultConfigFileFinder creates a new DefaultConfigFileFinder.
func NewDefaultConfigFileFinder() ports.ConfigFileFinder {
	return &DefaultConfigFileFinder{}
}

/*
Find implements the ports.ConfigFileFinder interface. It checks, in order:
 1. $TSH_CONFIG (relative paths are resolved against the home directory)
 2. ~/.tsh/config.yaml
 3. $XDG_CONFIG_HOME/tsh/config.yaml
*/
func (d *DefaultConfigFileFinder) Find() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	homeDir := usr.HomeDir

	if envPath := os.Getenv(configEnvVar); envPath != "" {
		if !filepath.IsAbs(envPath) {
			envPath = filepath.Join(homeDir, envPath)
		}
		if fileExists(envPath) {
			return envPath, nil
		}
		return "", fmt.Errorf("%s is set to %s but the file was not found", configEnvVar, toUserFriendlyPath(envPath))
	}

	potentialPaths := []string{filepath.Join(homeDir, configDir, configFilename)}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		potentialPaths = append(potentialPaths, filepath.Join(xdg, "tsh", configFilename))
	}
	for _, p := range potentialPaths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("no config file found (looked for ~/%s/%s)", configDir, configFilename)
}

// StaticConfigFileFinder returns a path chosen on the command line.
type StaticConfigFileFinder struct {
	Path string
}

// Find implements the ports.ConfigFileFinder interface.
// The file must exist: a path given explicitly is never silently ignored.
func (s *StaticConfigFileFinder) Find() (string, error) {
	if !fileExists(s.Path) {
		return "", fmt.Errorf("config file not found: %s", s.Path)
	}
	return s.Path, nil
}
