// Package digitalocean is the DigitalOcean cloud plugin. It performs no API calls:
// regions are validated against the catalog and the inventory is decoded from terraform
// outputs.
package digitalocean

import (
	"context"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/sirupsen/logrus"
)

// Plugin implements cloud.Plugin for DigitalOcean.
type Plugin struct {
	*cloud.Base

	logger logrus.FieldLogger
}

var _ cloud.Plugin = (*Plugin)(nil)

// NewPlugin creates the DigitalOcean plugin.
func NewPlugin(params *v1alpha1.Parameters, logger logrus.FieldLogger) *Plugin {
	return &Plugin{
		Base:   cloud.NewBase(Catalog, params, nil),
		logger: logger,
	}
}

// Variables adds the region to the token.
func (p *Plugin) Variables(ctx context.Context) (v1alpha1.Variables, error) {
	vars, err := p.Base.Variables(ctx)
	if err != nil {
		return nil, err
	}

	region, err := p.Region()
	if err != nil {
		return nil, err
	}

	vars[cloud.ParamRegion] = region

	return vars, nil
}

// Output sets the inventory and points both API endpoints at the master floating IP.
func (p *Plugin) Output(
	_ context.Context,
	descriptor v1alpha1.ClusterDescriptor,
	outputs terraform.Outputs,
) error {
	inventory, err := p.Inventory(outputs)
	if err != nil {
		return err
	}

	descriptor.SetInventory(inventory)

	floatingIP, err := outputs.String(OutputMasterFloatingIP)
	if err != nil {
		return err //nolint:wrapcheck // already names the output
	}

	masterIPs, err := outputs.List(OutputMasterPublicIPs)
	if err != nil {
		return err //nolint:wrapcheck // already names the output
	}

	san := append([]string{floatingIP}, masterIPs...)

	cloud.SetEndpoints(descriptor, floatingIP, floatingIP, san, Name)

	return nil
}
