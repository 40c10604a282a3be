package terraform

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock of Runner.
type MockRunner struct {
	mock.Mock
}

var _ Runner = (*MockRunner)(nil)

// NewMockRunner creates a MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Run records the call. When the first return value is a string it is written to the
// command's stdout, the optional third one to its stderr.
func (m *MockRunner) Run(ctx context.Context, cmd Command) error {
	args := m.Called(ctx, cmd)

	if stdout, ok := args.Get(0).(string); ok && cmd.Stdout != nil {
		_, _ = cmd.Stdout.Write([]byte(stdout))
	}

	if len(args) > 2 {
		if stderr, ok := args.Get(2).(string); ok && cmd.Stderr != nil {
			_, _ = cmd.Stderr.Write([]byte(stderr))
		}
	}

	return args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}
