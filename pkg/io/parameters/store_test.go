package parameters_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/io/parameters"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
general:
  cluster:
    name: demo-digitalocean
custom:
  digitalocean_token: t1
`

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

func writeParameters(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "parameters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	path := writeParameters(t, document)
	store := parameters.NewStore(path, discardLogger())

	params, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "demo-digitalocean", params.General.Cluster.Name)
	assert.Equal(t, path, store.Path())
}

func TestStore_LoadIsMemoized(t *testing.T) {
	t.Parallel()

	path := writeParameters(t, document)
	store := parameters.NewStore(path, discardLogger())

	first, err := store.Load()
	require.NoError(t, err)

	// Changes on disk after the first load are not observed.
	require.NoError(t, os.WriteFile(path, []byte("custom: {}\n"), 0o600))

	second, err := store.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)

	token, ok := second.CustomValue("digitalocean_token")
	assert.True(t, ok)
	assert.Equal(t, "t1", token)
}

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store := parameters.NewStore(filepath.Join(t.TempDir(), "missing.yaml"), discardLogger())

	_, err := store.Load()
	require.ErrorIs(t, err, parameters.ErrParametersNotFound)

	// The error is memoized as well.
	_, err = store.Load()
	require.ErrorIs(t, err, parameters.ErrParametersNotFound)
}

func TestStore_LoadInvalidDocument(t *testing.T) {
	t.Parallel()

	path := writeParameters(t, "custom: [a, b]\n")
	store := parameters.NewStore(path, discardLogger())

	_, err := store.Load()
	require.ErrorIs(t, err, v1alpha1.ErrInvalidParameters)
}
