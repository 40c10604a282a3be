// Package aws is the Amazon Web Services cloud plugin. Zones are discovered and the
// inventory resolved through the EC2 and Auto Scaling APIs.
package aws

import (
	"context"
	"strings"
	"sync"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/sirupsen/logrus"
)

// Plugin implements cloud.Plugin for AWS.
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

// WithClientFactory replaces the SDK client construction.
func WithClientFactory(factory ClientFactory) Option {
	return func(p *Plugin) {
		p.factory = factory
	}
}

// NewPlugin creates the AWS plugin. API clients are built on first use.
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

// FlockerEnabled reports whether the unprefixed flocker_enabled parameter is truthy.
func (p *Plugin) FlockerEnabled() bool {
	value, ok := p.Parameters().CustomValue(ParamFlockerEnabled)
	if !ok {
		return false
	}

	return strings.ToLower(value) == "true" || value == "1"
}

// Variables adds region, zones and the flocker toggle to the credentials.
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

	if p.FlockerEnabled() {
		vars[ParamFlockerEnabled] = 1
	}

	return vars, nil
}

// Output sets the inventory, the ELB and bastion endpoints and, with flocker enabled,
// the flocker credentials. The secret key is always stamped redacted, even when unset.
func (p *Plugin) Output(
	ctx context.Context,
	descriptor v1alpha1.ClusterDescriptor,
	outputs terraform.Outputs,
) error {
	inventory, err := p.Inventory(ctx, outputs)
	if err != nil {
		return err
	}

	descriptor.SetInventory(inventory)

	elbDNS, err := outputs.String(OutputMasterELBDNSName)
	if err != nil {
		return err //nolint:wrapcheck // already names the output
	}

	bastionEIP, err := outputs.String(OutputBastionInstanceEIP)
	if err != nil {
		return err //nolint:wrapcheck // already names the output
	}

	cloud.SetEndpoints(descriptor, elbDNS, bastionEIP, []string{elbDNS, bastionEIP}, Name)

	custom := descriptor.Custom()
	custom[p.Key("secret_key")] = v1alpha1.RedactedValue

	if !p.FlockerEnabled() {
		return nil
	}

	for _, key := range []string{OutputFlockerAccessKey, OutputFlockerSecretKey} {
		value, err := outputs.String(key)
		if err != nil {
			return err //nolint:wrapcheck // already names the output
		}

		custom[key] = value
	}

	return nil
}

func (p *Plugin) apiClients(ctx context.Context) (Clients, error) {
	p.once.Do(func() {
		p.clients, p.err = p.buildClients(ctx)
	})

	return p.clients, p.err
}

func (p *Plugin) buildClients(ctx context.Context) (Clients, error) {
	accessKey, err := p.RequireParam("access_key")
	if err != nil {
		return Clients{}, err
	}

	secretKey, err := p.RequireParam("secret_key")
	if err != nil {
		return Clients{}, err
	}

	region, err := p.Region()
	if err != nil {
		return Clients{}, err
	}

	p.logger.Debugf("creating aws clients for region '%s'", region)

	return p.factory(ctx, accessKey, secretKey, region)
}

func (p *Plugin) discoverZones(ctx context.Context) ([]string, error) {
	clients, err := p.apiClients(ctx)
	if err != nil {
		return nil, err
	}

	result, err := clients.EC2.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{})
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by cloud.Base
	}

	zones := make([]string, 0, len(result.AvailabilityZones))

	for _, zone := range result.AvailabilityZones {
		if zone.State == types.AvailabilityZoneStateAvailable {
			zones = append(zones, awssdk.ToString(zone.ZoneName))
		}
	}

	return zones, nil
}
