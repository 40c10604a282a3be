// Package composer assembles the cluster descriptor from the parameters and the
// terraform outputs and writes it as YAML.
package composer

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/fsutil"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// Composer builds descriptors for the selected plugin.
type Composer struct {
	params     *v1alpha1.Parameters
	plugin     cloud.Plugin
	secretKeys []string
	logger     logrus.FieldLogger
}

// NewComposer creates a composer. secretKeys are the prefixed custom parameters to
// redact when present.
func NewComposer(
	params *v1alpha1.Parameters,
	plugin cloud.Plugin,
	secretKeys []string,
	logger logrus.FieldLogger,
) *Composer {
	return &Composer{
		params:     params,
		plugin:     plugin,
		secretKeys: slices.Clone(secretKeys),
		logger:     logger,
	}
}

// Compose copies the parameters, lets the plugin add inventory and endpoints and
// redacts the secrets.
func (c *Composer) Compose(ctx context.Context, outputs terraform.Outputs) (v1alpha1.ClusterDescriptor, error) {
	tree, err := c.params.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to copy parameters: %w", err)
	}

	descriptor := v1alpha1.NewClusterDescriptor(tree)

	err = c.plugin.Output(ctx, descriptor, outputs)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s output: %w", c.plugin.Name(), err)
	}

	Redact(descriptor, c.secretKeys)

	return descriptor, nil
}

// Write serializes descriptor to path.
func (c *Composer) Write(path string, descriptor v1alpha1.ClusterDescriptor) error {
	content, err := Marshal(descriptor)
	if err != nil {
		return err
	}

	c.logger.Infof("write output '%s'", path)
	c.logger.Debugf("\n%s", content)

	err = fsutil.WriteFile(path, content)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// Redact replaces the secretKeys present in the custom section. Absent keys stay absent.
func Redact(descriptor v1alpha1.ClusterDescriptor, secretKeys []string) {
	custom := descriptor.Custom()

	for _, key := range secretKeys {
		if _, ok := custom[key]; ok {
			custom[key] = v1alpha1.RedactedValue
		}
	}
}

// Marshal renders descriptor as block-style YAML.
func Marshal(descriptor v1alpha1.ClusterDescriptor) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(map[string]any(descriptor))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	return buf.Bytes(), nil
}
