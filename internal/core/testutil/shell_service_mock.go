package testutil

import (
	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

// MockShellService is a mock implementation of ports.ShellService.
type MockShellService struct {
	RunFunc     func() error
	RunLineFunc func(line string) (bool, error)
	InspectFunc func(line string) command.Pipeline

	RunCalls     int
	RunLineCalls []string
}

// Run mocks the Run method.
func (m *MockShellService) Run() error {
	m.RunCalls++
	if m.RunFunc != nil {
		return m.RunFunc()
	}
	return nil
}

// RunLine mocks the RunLine method.
func (m *MockShellService) RunLine(line string) (bool, error) {
	m.RunLineCalls = append(m.RunLineCalls, line)
	if m.RunLineFunc != nil {
		return m.RunLineFunc(line)
	}
	return false, nil
}

// Inspect mocks the Inspect method.
func (m *MockShellService) Inspect(line string) command.Pipeline {
	if m.InspectFunc != nil {
		return m.InspectFunc(line)
	}
	return nil
}

var _ ports.ShellService = (*MockShellService)(nil)
