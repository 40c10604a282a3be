package digitalocean_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud/digitalocean"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parameters = `
general:
  cluster:
    name: demo
    machines:
      worker:
        count: 2
        instanceType: 2gb
        roles: [worker]
      master:
        count: 1
        instanceType: 1gb
        roles: [master]
custom:
  digitalocean_token: t1
`

func newPlugin(t *testing.T, document string) (*digitalocean.Plugin, *bytes.Buffer) {
	t.Helper()

	params, err := v1alpha1.ParseParameters([]byte(document))
	require.NoError(t, err)

	var logs bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)

	return digitalocean.NewPlugin(params, logger), &logs
}

func outputs(t *testing.T, data string) terraform.Outputs {
	t.Helper()

	parsed, err := terraform.ParseOutputs([]byte(data))
	require.NoError(t, err)

	return parsed
}

func value(v string) string {
	return `{"value": "` + v + `", "type": "string", "sensitive": false}`
}

func clusterOutputs(t *testing.T, workerPublic string) terraform.Outputs {
	t.Helper()

	return outputs(t, `{
		"master_hostnames": `+value("demo-master-0")+`,
		"master_private_ips": `+value("10.0.0.2")+`,
		"master_public_ips": `+value("203.0.113.2")+`,
		"worker_hostnames": `+value("demo-worker-0,demo-worker-1")+`,
		"worker_private_ips": `+value("10.0.0.3,10.0.0.4")+`,
		"worker_public_ips": `+value(workerPublic)+`,
		"master_floating_ip": `+value("203.0.113.100")+`
	}`)
}

func TestPlugin_Catalog(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, parameters)

	assert.Equal(t, "digitalocean", plugin.Name())
	assert.True(t, plugin.Detect())
	assert.Equal(t, "1gb", plugin.Catalog().DefaultInstanceType)
	assert.True(t, plugin.IsValidInstanceType("64gb"))
	assert.False(t, plugin.IsValidInstanceType("m3.medium"))
}

func TestPlugin_Variables(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, parameters)

	vars, err := plugin.Variables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, v1alpha1.Variables{"token": "t1", "region": "lon1"}, vars)
}

func TestPlugin_VariablesExplicitRegion(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, parameters+"  digitalocean_region: FRA1\n")

	vars, err := plugin.Variables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fra1", vars["region"])
}

func TestPlugin_VariablesInvalidRegion(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, parameters+"  digitalocean_region: eu-west-1\n")

	_, err := plugin.Variables(context.Background())
	require.ErrorIs(t, err, cloud.ErrInvalidRegion)
	assert.Contains(t, err.Error(), "eu-west-1")
}

func TestPlugin_ZonesUnsupported(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, parameters)

	zones, err := plugin.Zones(context.Background())
	require.NoError(t, err)
	assert.Nil(t, zones)
}

func TestPlugin_Inventory(t *testing.T) {
	t.Parallel()

	plugin, logs := newPlugin(t, parameters)

	inventory, err := plugin.Inventory(clusterOutputs(t, "203.0.113.3,203.0.113.4"))
	require.NoError(t, err)

	assert.Equal(t, []v1alpha1.MachineRecord{
		{Name: "demo-master-0", PublicIP: "203.0.113.2", PrivateIP: "10.0.0.2", Roles: []string{"master"}},
		{Name: "demo-worker-0", PublicIP: "203.0.113.3", PrivateIP: "10.0.0.3", Roles: []string{"worker"}},
		{Name: "demo-worker-1", PublicIP: "203.0.113.4", PrivateIP: "10.0.0.4", Roles: []string{"worker"}},
	}, inventory)
	assert.NotContains(t, logs.String(), "ragged")
}

func TestPlugin_InventoryRaggedListsTruncate(t *testing.T) {
	t.Parallel()

	plugin, logs := newPlugin(t, parameters)

	inventory, err := plugin.Inventory(clusterOutputs(t, "203.0.113.3"))
	require.NoError(t, err)

	require.Len(t, inventory, 2)
	assert.Equal(t, "demo-worker-0", inventory[1].Name)
	assert.Contains(t, logs.String(), "machine group 'worker' has ragged outputs")
}

func TestPlugin_InventoryMissingOutput(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, parameters)

	_, err := plugin.Inventory(outputs(t, `{"master_hostnames": `+value("m")+`}`))
	require.ErrorIs(t, err, terraform.ErrOutputNotFound)
	assert.Contains(t, err.Error(), "master_private_ips")
}

func TestPlugin_InventoryGroupWithoutRoles(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, `
general:
  cluster:
    name: demo
    machines:
      master:
        count: 1
        roles: [master]
      worker:
        count: 2
custom:
  digitalocean_token: t1
`)

	inventory, err := plugin.Inventory(clusterOutputs(t, "203.0.113.3,203.0.113.4"))

	require.ErrorIs(t, err, digitalocean.ErrMissingRoles)
	assert.Contains(t, err.Error(), "'worker'")
	assert.Nil(t, inventory)
}

func TestPlugin_Output(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, parameters)
	descriptor := v1alpha1.NewClusterDescriptor(nil)

	err := plugin.Output(context.Background(), descriptor, clusterOutputs(t, "203.0.113.3,203.0.113.4"))
	require.NoError(t, err)

	kubernetes := descriptor.Kubernetes()
	assert.Equal(t, "https://203.0.113.100", kubernetes["masterApiUrl"])
	assert.Equal(t, "https://203.0.113.100", kubernetes["masterApiUrlExternal"])
	assert.Equal(t, []string{"203.0.113.100", "203.0.113.2"}, kubernetes["masterSan"])
	assert.Equal(t, "digitalocean", kubernetes["cloudProvider"])
	assert.Len(t, descriptor.Inventory(), 3)
}

func TestPlugin_OutputIdempotent(t *testing.T) {
	t.Parallel()

	plugin, _ := newPlugin(t, parameters)
	outputs := clusterOutputs(t, "203.0.113.3,203.0.113.4")

	once := v1alpha1.NewClusterDescriptor(nil)
	require.NoError(t, plugin.Output(context.Background(), once, outputs))

	twice := v1alpha1.NewClusterDescriptor(nil)
	require.NoError(t, plugin.Output(context.Background(), twice, outputs))
	require.NoError(t, plugin.Output(context.Background(), twice, outputs))

	assert.Equal(t, once, twice)
	assert.Len(t, twice.Inventory(), 3)
}
