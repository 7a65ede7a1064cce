package runner

import (
	"context"
	"sync"

	"github.com/getpup/bootstrap-orchestrator"
)

// MockInvoker is a mock implementation of bootstrap.Invoker for testing.
type MockInvoker struct {
	mu          sync.Mutex
	InvokeFunc  func(ctx context.Context, phase bootstrap.Phase) (int, error)
	InvokeCalls []bootstrap.Phase
}

// Compile-time check that MockInvoker implements bootstrap.Invoker.
var _ bootstrap.Invoker = (*MockInvoker)(nil)

// NewMockInvoker creates a new MockInvoker with an empty call history.
func NewMockInvoker() *MockInvoker {
	return &MockInvoker{
		InvokeCalls: make([]bootstrap.Phase, 0),
	}
}

// Invoke implements the bootstrap.Invoker interface.
// It records the phase, then:
// - If InvokeFunc is set, calls and returns it
// - Otherwise, reports success with exit code 0
func (m *MockInvoker) Invoke(ctx context.Context, phase bootstrap.Phase) (int, error) {
	m.mu.Lock()
	m.InvokeCalls = append(m.InvokeCalls, phase)
	m.mu.Unlock()

	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, phase)
	}

	return 0, nil
}

// Calls returns a copy of the recorded phases.
func (m *MockInvoker) Calls() []bootstrap.Phase {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]bootstrap.Phase, len(m.InvokeCalls))
	copy(calls, m.InvokeCalls)
	return calls
}

// Reset clears the call history.
func (m *MockInvoker) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvokeCalls = make([]bootstrap.Phase, 0)
}
