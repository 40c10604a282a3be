package cloud

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
)

// Custom parameter names shared by all variants, before prefixing.
const (
	ParamRegion = "region"
	ParamZones  = "zones"
)

// Catalog is the fixed description of a variant.
type Catalog struct {
	Name                string
	RequiredKeys        []string
	SecretKeys          []string
	InstanceTypes       []string
	DefaultInstanceType string
	Regions             []string
	DefaultRegion       string
}

// Plugin is one cloud backend.
type Plugin interface {
	// Name is the variant name, the custom parameter prefix and the terraform directory.
	Name() string
	Catalog() Catalog
	RequiredKeys() []string
	// Detect reports whether every required key is present in the custom parameters.
	Detect() bool
	Region() (string, error)
	// Zones returns the requested or discovered zones. A nil result with a nil error
	// means the variant has no zone discovery.
	Zones(ctx context.Context) ([]string, error)
	Variables(ctx context.Context) (v1alpha1.Variables, error)
	// Output extends descriptor with the inventory, the API endpoints and the provider tag.
	Output(ctx context.Context, descriptor v1alpha1.ClusterDescriptor, outputs terraform.Outputs) error
	IsValidInstanceType(instanceType string) bool
}

// ZoneDiscoverer lists the zones currently available to a variant.
type ZoneDiscoverer func(ctx context.Context) ([]string, error)

// Base implements the parameter handling shared by all variants.
type Base struct {
	catalog  Catalog
	params   *v1alpha1.Parameters
	discover ZoneDiscoverer
}

// NewBase creates a Base. A nil discover marks zone discovery as unsupported.
func NewBase(catalog Catalog, params *v1alpha1.Parameters, discover ZoneDiscoverer) *Base {
	return &Base{
		catalog:  catalog,
		params:   params,
		discover: discover,
	}
}

// Name returns the variant name.
func (b *Base) Name() string {
	return b.catalog.Name
}

// Catalog returns the variant catalog.
func (b *Base) Catalog() Catalog {
	return b.catalog
}

// RequiredKeys returns the unprefixed required parameter names.
func (b *Base) RequiredKeys() []string {
	return slices.Clone(b.catalog.RequiredKeys)
}

// Parameters returns the parameters the plugin was built from.
func (b *Base) Parameters() *v1alpha1.Parameters {
	return b.params
}

// Key prefixes name with the variant name.
func (b *Base) Key(name string) string {
	return b.catalog.Name + "_" + name
}

// Param returns the prefixed custom parameter name.
func (b *Base) Param(name string) (string, bool) {
	return b.params.CustomValue(b.Key(name))
}

// RequireParam is Param that fails when the parameter is absent.
func (b *Base) RequireParam(name string) (string, error) {
	value, ok := b.Param(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, b.Key(name))
	}

	return value, nil
}

// Detect reports whether all required keys are present.
func (b *Base) Detect() bool {
	for _, key := range b.catalog.RequiredKeys {
		if !b.params.HasCustom(b.Key(key)) {
			return false
		}
	}

	return true
}

// Region returns the lower-cased region parameter or the default region.
func (b *Base) Region() (string, error) {
	value, ok := b.Param(ParamRegion)
	if !ok {
		return b.catalog.DefaultRegion, nil
	}

	region := strings.ToLower(value)
	if !slices.Contains(b.catalog.Regions, region) {
		return "", fmt.Errorf("%w '%s'", ErrInvalidRegion, region)
	}

	return region, nil
}

// Zones returns the comma-separated zones parameter or, when absent, the discovered
// zones. Requested zones must all be available when discovery reports any.
func (b *Base) Zones(ctx context.Context) ([]string, error) {
	value, requested := b.Param(ParamZones)

	available, err := b.availableZones(ctx)
	if err != nil {
		return nil, err
	}

	if !requested {
		return available, nil
	}

	zones := strings.Split(value, ",")
	if len(available) == 0 {
		return zones, nil
	}

	for _, zone := range zones {
		if !slices.Contains(available, zone) {
			return nil, fmt.Errorf("%w '%s'", ErrInvalidZone, zone)
		}
	}

	return zones, nil
}

func (b *Base) availableZones(ctx context.Context) ([]string, error) {
	if b.discover == nil {
		return nil, nil
	}

	zones, err := b.discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover %s zones: %w", b.catalog.Name, err)
	}

	return zones, nil
}

// Variables returns one entry per required key, keyed by the unprefixed name.
func (b *Base) Variables(_ context.Context) (v1alpha1.Variables, error) {
	vars := make(v1alpha1.Variables, len(b.catalog.RequiredKeys))

	for _, key := range b.catalog.RequiredKeys {
		value, err := b.RequireParam(key)
		if err != nil {
			return nil, err
		}

		vars[key] = value
	}

	return vars, nil
}

// IsValidInstanceType reports whether instanceType is in the catalog.
func (b *Base) IsValidInstanceType(instanceType string) bool {
	return slices.Contains(b.catalog.InstanceTypes, instanceType)
}

// SetEndpoints stamps the API endpoints and the provider tag into the kubernetes block.
func SetEndpoints(descriptor v1alpha1.ClusterDescriptor, internal, external string, san []string, provider string) {
	kubernetes := descriptor.Kubernetes()
	kubernetes[v1alpha1.KeyMasterAPIURL] = "https://" + internal
	kubernetes[v1alpha1.KeyMasterAPIURLExternal] = "https://" + external
	kubernetes[v1alpha1.KeyMasterSAN] = san
	kubernetes[v1alpha1.KeyCloudProvider] = provider
}
