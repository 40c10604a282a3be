package hetzner_test

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud/hetzner"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errAPI = errors.New("rate limit exceeded")

type mockLocations struct {
	mock.Mock
}

func (m *mockLocations) All(ctx context.Context) ([]*hcloud.Location, error) {
	args := m.Called(ctx)
	locations, _ := args.Get(0).([]*hcloud.Location)

	return locations, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

type mockServers struct {
	mock.Mock
}

func (m *mockServers) AllWithOpts(ctx context.Context, opts hcloud.ServerListOpts) ([]*hcloud.Server, error) {
	args := m.Called(ctx, opts)
	servers, _ := args.Get(0).([]*hcloud.Server)

	return servers, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

type fixture struct {
	locations *mockLocations
	servers   *mockServers
	token     string
	plugin    *hetzner.Plugin
}

func newFixture(t *testing.T, document string) *fixture {
	t.Helper()

	params, err := v1alpha1.ParseParameters([]byte(document))
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	fix := &fixture{locations: &mockLocations{}, servers: &mockServers{}}
	fix.plugin = hetzner.NewPlugin(params, logger, hetzner.WithClientFactory(func(token string) hetzner.Clients {
		fix.token = token

		return hetzner.Clients{Location: fix.locations, Server: fix.servers}
	}))

	return fix
}

const document = `
general:
  cluster:
    name: demo
custom:
  hetzner_token: h1
`

func locations() []*hcloud.Location {
	return []*hcloud.Location{
		{Name: "fsn1", NetworkZone: hcloud.NetworkZoneEUCentral},
		{Name: "ash", NetworkZone: hcloud.NetworkZoneUSEast},
		{Name: "nbg1", NetworkZone: hcloud.NetworkZoneEUCentral},
	}
}

func server(name, role, public, private string) *hcloud.Server {
	srv := &hcloud.Server{
		Name:   name,
		Labels: map[string]string{hetzner.LabelClusterName: "demo"},
	}

	if role != "" {
		srv.Labels[hetzner.LabelNodeRole] = role
	}

	if public != "" {
		srv.PublicNet.IPv4.IP = net.ParseIP(public)
	}

	if private != "" {
		srv.PrivateNet = []hcloud.ServerPrivateNet{{IP: net.ParseIP(private)}}
	}

	return srv
}

func TestPlugin_Variables(t *testing.T) {
	t.Parallel()

	fix := newFixture(t, document)
	fix.locations.On("All", mock.Anything).Return(locations(), nil).Once()

	vars, err := fix.plugin.Variables(context.Background())
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.Variables{
		"token":  "h1",
		"region": "eu-central",
		"zones":  []string{"fsn1", "nbg1"},
	}, vars)
	assert.Equal(t, "h1", fix.token)
}

func TestPlugin_ZonesExplicit(t *testing.T) {
	t.Parallel()

	t.Run("Available", func(t *testing.T) {
		t.Parallel()

		fix := newFixture(t, document+"  hetzner_region: us-east\n  hetzner_zones: ash\n")
		fix.locations.On("All", mock.Anything).Return(locations(), nil)

		zones, err := fix.plugin.Zones(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"ash"}, zones)
	})

	t.Run("WrongNetworkZone", func(t *testing.T) {
		t.Parallel()

		fix := newFixture(t, document+"  hetzner_zones: ash\n")
		fix.locations.On("All", mock.Anything).Return(locations(), nil)

		_, err := fix.plugin.Zones(context.Background())
		require.ErrorIs(t, err, cloud.ErrInvalidZone)
		assert.Contains(t, err.Error(), "ash")
	})

	t.Run("APIError", func(t *testing.T) {
		t.Parallel()

		fix := newFixture(t, document)
		fix.locations.On("All", mock.Anything).Return(nil, errAPI)

		_, err := fix.plugin.Zones(context.Background())
		require.ErrorIs(t, err, errAPI)
	})
}

func TestPlugin_Inventory(t *testing.T) {
	t.Parallel()

	fix := newFixture(t, document)
	fix.servers.On("AllWithOpts", mock.Anything, mock.MatchedBy(func(opts hcloud.ServerListOpts) bool {
		return opts.LabelSelector == "tfinfra.cluster.name=demo"
	})).Return([]*hcloud.Server{
		server("demo-worker-1", "worker", "203.0.113.21", "10.0.0.21"),
		server("demo-master-0", "master", "203.0.113.10", "10.0.0.10"),
		server("demo-unlabelled", "", "203.0.113.99", ""),
		server("demo-worker-0", "worker", "", "10.0.0.20"),
	}, nil)

	inventory, err := fix.plugin.Inventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []v1alpha1.MachineRecord{
		{Name: "demo-master-0", PublicIP: "203.0.113.10", PrivateIP: "10.0.0.10", Roles: []string{"master"}},
		{Name: "demo-worker-0", PrivateIP: "10.0.0.20", Roles: []string{"worker"}},
		{Name: "demo-worker-1", PublicIP: "203.0.113.21", PrivateIP: "10.0.0.21", Roles: []string{"worker"}},
	}, inventory)
}

func TestPlugin_InventoryRequiresClusterName(t *testing.T) {
	t.Parallel()

	fix := newFixture(t, "custom:\n  hetzner_token: h1\n")

	_, err := fix.plugin.Inventory(context.Background())
	require.ErrorIs(t, err, hetzner.ErrMissingClusterName)
}

func TestPlugin_Output(t *testing.T) {
	t.Parallel()

	fix := newFixture(t, document)
	fix.servers.On("AllWithOpts", mock.Anything, mock.Anything).Return([]*hcloud.Server{
		server("demo-master-0", "master", "203.0.113.10", "10.0.0.10"),
		server("demo-worker-0", "worker", "203.0.113.20", "10.0.0.20"),
	}, nil)

	outputs, err := terraform.ParseOutputs([]byte(`{"master_lb_ipv4": {"value": "198.51.100.1", "type": "string"}}`))
	require.NoError(t, err)

	descriptor := v1alpha1.NewClusterDescriptor(nil)
	require.NoError(t, fix.plugin.Output(context.Background(), descriptor, outputs))

	kubernetes := descriptor.Kubernetes()
	assert.Equal(t, "https://198.51.100.1", kubernetes["masterApiUrl"])
	assert.Equal(t, "https://198.51.100.1", kubernetes["masterApiUrlExternal"])
	assert.Equal(t, []string{"198.51.100.1", "203.0.113.10"}, kubernetes["masterSan"])
	assert.Equal(t, "hcloud", kubernetes["cloudProvider"])
	assert.Len(t, descriptor.Inventory(), 2)
}

func TestClusterSelector(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tfinfra.cluster.name=prod", hetzner.ClusterSelector("prod"))
}

func TestPlugin_OutputIdempotent(t *testing.T) {
	t.Parallel()

	fix := newFixture(t, document)
	fix.servers.On("AllWithOpts", mock.Anything, mock.Anything).Return([]*hcloud.Server{
		server("demo-master-0", "master", "203.0.113.10", "10.0.0.10"),
		server("demo-worker-0", "worker", "203.0.113.20", "10.0.0.20"),
	}, nil)

	outputs, err := terraform.ParseOutputs([]byte(`{"master_lb_ipv4": {"value": "198.51.100.1", "type": "string"}}`))
	require.NoError(t, err)

	once := v1alpha1.NewClusterDescriptor(nil)
	require.NoError(t, fix.plugin.Output(context.Background(), once, outputs))

	twice := v1alpha1.NewClusterDescriptor(nil)
	require.NoError(t, fix.plugin.Output(context.Background(), twice, outputs))
	require.NoError(t, fix.plugin.Output(context.Background(), twice, outputs))

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"198.51.100.1", "203.0.113.10"}, twice.Kubernetes()["masterSan"])
	fix.servers.AssertNumberOfCalls(t, "AllWithOpts", 3)
}
