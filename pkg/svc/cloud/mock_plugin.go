package cloud

import (
	"context"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/stretchr/testify/mock"
)

// MockPlugin is a testify mock of Plugin.
type MockPlugin struct {
	mock.Mock
}

var _ Plugin = (*MockPlugin)(nil)

// NewMockPlugin creates a MockPlugin.
func NewMockPlugin() *MockPlugin {
	return &MockPlugin{}
}

// Name mocks the variant name.
func (m *MockPlugin) Name() string {
	return m.Called().String(0)
}

// Catalog mocks the variant catalog.
func (m *MockPlugin) Catalog() Catalog {
	catalog, _ := m.Called().Get(0).(Catalog)

	return catalog
}

// RequiredKeys mocks the required keys.
func (m *MockPlugin) RequiredKeys() []string {
	keys, _ := m.Called().Get(0).([]string)

	return keys
}

// Detect mocks detection.
func (m *MockPlugin) Detect() bool {
	return m.Called().Bool(0)
}

// Region mocks region resolution.
func (m *MockPlugin) Region() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Zones mocks zone resolution.
func (m *MockPlugin) Zones(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	zones, _ := args.Get(0).([]string)

	return zones, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Variables mocks variable derivation.
func (m *MockPlugin) Variables(ctx context.Context) (v1alpha1.Variables, error) {
	args := m.Called(ctx)
	vars, _ := args.Get(0).(v1alpha1.Variables)

	return vars, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Output mocks descriptor composition.
func (m *MockPlugin) Output(
	ctx context.Context,
	descriptor v1alpha1.ClusterDescriptor,
	outputs terraform.Outputs,
) error {
	return m.Called(ctx, descriptor, outputs).Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// IsValidInstanceType mocks instance-type validation.
func (m *MockPlugin) IsValidInstanceType(instanceType string) bool {
	return m.Called(instanceType).Bool(0)
}
