package terraform_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errExit = errors.New("exit status 1")

func newClient(t *testing.T, runner terraform.Runner) (*terraform.Client, string) {
	t.Helper()

	dir := t.TempDir()

	client := terraform.NewClient(terraform.Options{
		Dir:    dir,
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}, runner)

	return client, dir
}

func TestClient_Run(t *testing.T) {
	t.Parallel()

	runner := terraform.NewMockRunner()
	client, dir := newClient(t, runner)

	runner.On("Run", mock.Anything, mock.MatchedBy(func(cmd terraform.Command) bool {
		return cmd.Name == "terraform" &&
			cmd.Dir == filepath.Join(dir, "aws") &&
			assert.ObjectsAreEqual([]string{"destroy", "-force", "-state=../terraform.tfstate"}, cmd.Args)
	})).Return(nil, nil).Once()

	err := client.Run(context.Background(), "aws", "destroy", "-force")
	require.NoError(t, err)
	runner.AssertExpectations(t)
}

func TestClient_RunFails(t *testing.T) {
	t.Parallel()

	runner := terraform.NewMockRunner()
	client, _ := newClient(t, runner)

	runner.On("Run", mock.Anything, mock.Anything).Return(nil, errExit)

	err := client.Run(context.Background(), "digitalocean", "apply")
	require.ErrorIs(t, err, terraform.ErrCommandFailed)
	require.ErrorIs(t, err, errExit)
	assert.Contains(t, err.Error(), "terraform apply")
}

func TestClient_Output(t *testing.T) {
	t.Parallel()

	runner := terraform.NewMockRunner()
	client, _ := newClient(t, runner)

	runner.On("Run", mock.Anything, mock.MatchedBy(func(cmd terraform.Command) bool {
		return assert.ObjectsAreEqual([]string{"output", "-json", "-state=../terraform.tfstate"}, cmd.Args)
	})).Return(`{"master_asg": {"type": "string", "value": "asg-m", "sensitive": false}}`, nil)

	outputs, err := client.Output(context.Background(), "aws")
	require.NoError(t, err)

	value, err := outputs.String("master_asg")
	require.NoError(t, err)
	assert.Equal(t, "asg-m", value)
}

func TestClient_OutputFailureCarriesStderr(t *testing.T) {
	t.Parallel()

	runner := terraform.NewMockRunner()
	client, _ := newClient(t, runner)

	runner.On("Run", mock.Anything, mock.Anything).Return("", errExit, "Error: state not found\n")

	_, err := client.Output(context.Background(), "aws")
	require.ErrorIs(t, err, terraform.ErrCommandFailed)
	assert.Contains(t, err.Error(), "Error: state not found")
}

func TestClient_OutputInvalidJSON(t *testing.T) {
	t.Parallel()

	runner := terraform.NewMockRunner()
	client, _ := newClient(t, runner)

	runner.On("Run", mock.Anything, mock.Anything).Return("no outputs", nil)

	_, err := client.Output(context.Background(), "aws")
	require.ErrorIs(t, err, terraform.ErrInvalidOutput)
}

func TestClient_WriteVars(t *testing.T) {
	t.Parallel()

	client, dir := newClient(t, terraform.NewMockRunner())

	path, err := client.WriteVars("digitalocean", []string{`region = "lon1"`, `token = "t1"`})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "digitalocean", terraform.VarsFileName), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "region = \"lon1\"\ntoken = \"t1\"", string(content))
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	client := terraform.NewClient(terraform.Options{}, nil)

	assert.Equal(t, filepath.Join(terraform.DefaultDir, "aws"), client.WorkDir("aws"))
}
