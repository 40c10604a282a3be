// Package hetzner is the Hetzner Cloud plugin. The region is a network zone, zones are
// the locations of that network zone and the inventory is read from the labelled
// servers of the cluster.
package hetzner

import (
	"context"
	"fmt"
	"sync"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/sirupsen/logrus"
)

// Plugin implements cloud.Plugin for Hetzner Cloud.
type Plugin struct {
	*cloud.Base

	logger  logrus.FieldLogger
	factory ClientFactory

	once    sync.Once
	clients Clients
	err     error
}

var _ cloud.Plugin = (*Plugin)(nil)

// Option configures a Plugin.
type Option func(*Plugin)

// WithClientFactory replaces the hcloud client construction.
func WithClientFactory(factory ClientFactory) Option {
	return func(p *Plugin) {
		p.factory = factory
	}
}

// NewPlugin creates the Hetzner plugin. API clients are built on first use.
func NewPlugin(params *v1alpha1.Parameters, logger logrus.FieldLogger, opts ...Option) *Plugin {
	plugin := &Plugin{
		logger:  logger,
		factory: NewClients,
	}

	for _, opt := range opts {
		opt(plugin)
	}

	plugin.Base = cloud.NewBase(Catalog, params, plugin.discoverZones)

	return plugin
}

// Variables adds the network zone and its locations to the token.
func (p *Plugin) Variables(ctx context.Context) (v1alpha1.Variables, error) {
	vars, err := p.Base.Variables(ctx)
	if err != nil {
		return nil, err
	}

	region, err := p.Region()
	if err != nil {
		return nil, err
	}

	zones, err := p.Zones(ctx)
	if err != nil {
		return nil, err
	}

	vars[cloud.ParamRegion] = region
	vars[cloud.ParamZones] = zones

	return vars, nil
}

// Output sets the inventory and points both API endpoints at the master load balancer.
func (p *Plugin) Output(
	ctx context.Context,
	descriptor v1alpha1.ClusterDescriptor,
	outputs terraform.Outputs,
) error {
	inventory, err := p.Inventory(ctx)
	if err != nil {
		return err
	}

	descriptor.SetInventory(inventory)

	lbIP, err := outputs.String(OutputMasterLBIPv4)
	if err != nil {
		return err //nolint:wrapcheck // already names the output
	}

	san := []string{lbIP}

	for _, record := range inventory {
		if record.PublicIP != "" && hasRole(record, v1alpha1.RoleMaster) {
			san = append(san, record.PublicIP)
		}
	}

	cloud.SetEndpoints(descriptor, lbIP, lbIP, san, ProviderTag)

	return nil
}

func (p *Plugin) apiClients() (Clients, error) {
	p.once.Do(func() {
		var token string

		token, p.err = p.RequireParam("token")
		if p.err == nil {
			p.clients = p.factory(token)
		}
	})

	return p.clients, p.err
}

func (p *Plugin) discoverZones(ctx context.Context) ([]string, error) {
	region, err := p.Region()
	if err != nil {
		return nil, err
	}

	clients, err := p.apiClients()
	if err != nil {
		return nil, err
	}

	locations, err := clients.Location.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	zones := make([]string, 0, len(locations))

	for _, location := range locations {
		if string(location.NetworkZone) == region {
			zones = append(zones, location.Name)
		}
	}

	return zones, nil
}
