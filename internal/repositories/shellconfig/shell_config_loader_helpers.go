package shellconfig

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/tsh/internal/core/domain/shellconfig"
)

func validateConfig(cfg shellconfig.Config) error {
	if strings.TrimSpace(cfg.QuitKeyword) == "" {
		return errors.New("quit_keyword cannot be empty")
	}
	if strings.ContainsAny(cfg.QuitKeyword, " \t;|") {
		return errors.New("quit_keyword must be a single word")
	}
	return nil
}

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir
	if homeDir == "" || !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
