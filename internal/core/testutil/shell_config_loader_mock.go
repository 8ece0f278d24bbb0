package testutil

import (
	"errors"

	"github.com/AntonioJCosta/tsh/internal/core/domain/shellconfig"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

// MockShellConfigLoader is a mock implementation of ports.ShellConfigLoader for testing.
type MockShellConfigLoader struct {
	LoadFunc   func() (shellconfig.Config, error)
	SourceFunc func() string
}

func (m *MockShellConfigLoader) Load() (shellconfig.Config, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return shellconfig.Config{}, errors.New("MockShellConfigLoader: LoadFunc not implemented")
}

func (m *MockShellConfigLoader) Source() string {
	if m.SourceFunc != nil {
		return m.SourceFunc()
	}
	return ""
}

var _ ports.ShellConfigLoader = (*MockShellConfigLoader)(nil)
