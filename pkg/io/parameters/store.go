// Package parameters loads the parameters document once per process and hands out the
// decoded, read-only result.
package parameters

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/sirupsen/logrus"
)

// ErrParametersNotFound is returned when the parameters file does not exist.
var ErrParametersNotFound = errors.New("parameters file not found")

// Store memoizes the parameters document read from a fixed path.
type Store struct {
	path   string
	logger logrus.FieldLogger

	once   sync.Once
	params *v1alpha1.Parameters
	err    error
}

// NewStore creates a store reading from path. Nothing is read until Load is called.
func NewStore(path string, logger logrus.FieldLogger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Path returns the file the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the parameters file on first use and returns the cached
// result (or error) afterwards.
func (s *Store) Load() (*v1alpha1.Parameters, error) {
	s.once.Do(func() {
		s.params, s.err = s.read()
	})

	return s.params, s.err
}

func (s *Store) read() (*v1alpha1.Parameters, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrParametersNotFound, s.path)
		}

		return nil, fmt.Errorf("failed to read parameters file %s: %w", s.path, err)
	}

	params, err := v1alpha1.ParseParameters(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parameters file %s: %w", s.path, err)
	}

	s.logger.Infof("read parameters from '%s'", s.path)

	return params, nil
}
