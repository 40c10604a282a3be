package terraform_test

import (
	"testing"

	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outputJSON = `{
  "master_floating_ip": {"sensitive": false, "type": "string", "value": "203.0.113.10"},
  "worker_hostnames": {"sensitive": false, "type": "string", "value": "w-0,w-1"},
  "zones": {"sensitive": false, "type": ["list", "string"], "value": ["a", "b"]},
  "port": {"sensitive": false, "type": "number", "value": 6443},
  "token": {"sensitive": true, "type": "string", "value": "secret"}
}`

func TestParseOutputs(t *testing.T) {
	t.Parallel()

	outputs, err := terraform.ParseOutputs([]byte(outputJSON))
	require.NoError(t, err)

	assert.Len(t, outputs, 5)
	assert.True(t, outputs["token"].Sensitive)
	assert.True(t, outputs.Has("zones"))
	assert.False(t, outputs.Has("bastion_instance_id"))
}

func TestParseOutputs_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "NotJSON", data: "Error: no state"},
		{name: "Null", data: "null"},
		{name: "List", data: `["a"]`},
		{name: "EntryNotObject", data: `{"ip": "10.0.0.1"}`},
		{name: "EntryWithoutValue", data: `{"ip": {"type": "string"}}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := terraform.ParseOutputs([]byte(testCase.data))
			require.ErrorIs(t, err, terraform.ErrInvalidOutput)
		})
	}
}

func TestParseOutputs_Empty(t *testing.T) {
	t.Parallel()

	outputs, err := terraform.ParseOutputs([]byte("{}"))
	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestOutputs_String(t *testing.T) {
	t.Parallel()

	outputs, err := terraform.ParseOutputs([]byte(outputJSON))
	require.NoError(t, err)

	value, err := outputs.String("master_floating_ip")
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.10", value)

	port, err := outputs.String("port")
	require.NoError(t, err)
	assert.Equal(t, "6443", port)

	_, err = outputs.String("zones")
	require.ErrorIs(t, err, terraform.ErrUnexpectedOutputType)

	_, err = outputs.String("missing")
	require.ErrorIs(t, err, terraform.ErrOutputNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestOutputs_List(t *testing.T) {
	t.Parallel()

	outputs, err := terraform.ParseOutputs([]byte(outputJSON))
	require.NoError(t, err)

	hostnames, err := outputs.List("worker_hostnames")
	require.NoError(t, err)
	assert.Equal(t, []string{"w-0", "w-1"}, hostnames)

	zones, err := outputs.List("zones")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, zones)

	_, err = outputs.List("port")
	require.ErrorIs(t, err, terraform.ErrUnexpectedOutputType)

	_, err = outputs.List("missing")
	require.ErrorIs(t, err, terraform.ErrOutputNotFound)
}
