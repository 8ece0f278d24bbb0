package testutil

import "github.com/AntonioJCosta/tsh/internal/core/ports"

// MockConfigFileFinder is a mock implementation of ports.ConfigFileFinder.
type MockConfigFileFinder struct {
	FindFunc func() (string, error)
}

// Find mocks the Find method.
func (m *MockConfigFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", nil // Default behavior
}

var _ ports.ConfigFileFinder = (*MockConfigFileFinder)(nil)
