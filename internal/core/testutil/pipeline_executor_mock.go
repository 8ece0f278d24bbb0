package testutil

import (
	"github.com/AntonioJCosta/tsh/internal/core/domain/command"
	"github.com/AntonioJCosta/tsh/internal/core/ports"
)

// MockPipelineExecutor is a mock implementation of ports.PipelineExecutor.
type MockPipelineExecutor struct {
	ExecuteFunc  func(p command.Pipeline) (bool, error)
	ExecuteCalls []command.Pipeline
}

// Execute records the pipeline and calls ExecuteFunc if it's set.
func (m *MockPipelineExecutor) Execute(p command.Pipeline) (bool, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, p)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(p)
	}
	return false, nil
}

var _ ports.PipelineExecutor = (*MockPipelineExecutor)(nil)
