// Package variables compiles the flat terraform variable set from the cluster-wide
// parameters and the selected cloud plugin.
package variables

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/sirupsen/logrus"
)

// Cluster-wide variable names.
const (
	VarClusterName = "cluster_name"
	VarSSHPubKey   = "ssh_pub_key"
)

// Compiler builds the variables of one run.
type Compiler struct {
	params *v1alpha1.Parameters
	plugin cloud.Plugin
	logger logrus.FieldLogger
}

// NewCompiler creates a compiler for the selected plugin.
func NewCompiler(params *v1alpha1.Parameters, plugin cloud.Plugin, logger logrus.FieldLogger) *Compiler {
	return &Compiler{
		params: params,
		plugin: plugin,
		logger: logger,
	}
}

// Compile returns the cluster name, the SSH public key, <group>_type and <group>_count
// for every machine group, overlaid with the plugin variables.
func (c *Compiler) Compile(ctx context.Context) (v1alpha1.Variables, error) {
	general := c.params.General

	vars := v1alpha1.Variables{
		VarClusterName: general.Cluster.Name,
		VarSSHPubKey:   general.Authentication.SSH.PubKey,
	}

	for _, name := range c.params.MachineGroupNames() {
		group := general.Cluster.Machines[name]
		vars[name+"_type"] = group.InstanceType
		vars[name+"_count"] = group.Count
	}

	pluginVars, err := c.plugin.Variables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s variables: %w", c.plugin.Name(), err)
	}

	for _, key := range slices.Sorted(maps.Keys(pluginVars)) {
		if _, ok := vars[key]; ok {
			c.logger.Debugf("%s variable '%s' overrides the cluster value", c.plugin.Name(), key)
		}
	}

	vars.Merge(pluginVars)

	c.logger.Infof("variables: %v", c.masked(vars))

	return vars, nil
}

func (c *Compiler) masked(vars v1alpha1.Variables) map[string]any {
	masked := maps.Clone(vars)

	for _, key := range c.plugin.Catalog().SecretKeys {
		if _, ok := masked[key]; ok {
			masked[key] = v1alpha1.RedactedValue
		}
	}

	return masked
}
