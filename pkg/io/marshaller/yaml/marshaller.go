// Package yamlmarshaller encodes models as YAML through their json tags.
package yamlmarshaller

import (
	"fmt"

	"github.com/devantler-tech/tfinfra/pkg/io/marshaller"
	"sigs.k8s.io/yaml"
)

// Marshaller is a YAML marshaller for models of type T.
type Marshaller[T any] struct{}

var _ marshaller.Marshaller[struct{}] = (*Marshaller[struct{}])(nil)

// NewMarshaller creates a Marshaller.
func NewMarshaller[T any]() *Marshaller[T] {
	return &Marshaller[T]{}
}

// Marshal renders model as YAML.
func (m *Marshaller[T]) Marshal(model T) (string, error) {
	data, err := yaml.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal yaml: %w", err)
	}

	return string(data), nil
}

// Unmarshal decodes data into model, rejecting unknown fields.
func (m *Marshaller[T]) Unmarshal(data []byte, model *T) error {
	err := yaml.UnmarshalStrict(data, model)
	if err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	return nil
}
