// Package registry holds the ordered list of cloud variants. Order matters: the first
// detected variant is selected.
package registry

import (
	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud/aws"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud/digitalocean"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud/hetzner"
	"github.com/sirupsen/logrus"
)

// Options carries per-variant options, mostly API client overrides for tests.
type Options struct {
	AWS     []aws.Option
	Hetzner []hetzner.Option
}

// Catalogs returns the catalog of every variant in selection order.
func Catalogs() []cloud.Catalog {
	return []cloud.Catalog{aws.Catalog, digitalocean.Catalog, hetzner.Catalog}
}

// Plugins builds every variant in selection order.
func Plugins(params *v1alpha1.Parameters, logger logrus.FieldLogger, opts Options) []cloud.Plugin {
	return []cloud.Plugin{
		aws.NewPlugin(params, logger, opts.AWS...),
		digitalocean.NewPlugin(params, logger),
		hetzner.NewPlugin(params, logger, opts.Hetzner...),
	}
}

// SecretKeys returns the prefixed custom parameter names holding secrets, e.g.
// "aws_secret_key".
func SecretKeys() []string {
	var keys []string

	for _, catalog := range Catalogs() {
		for _, key := range catalog.SecretKeys {
			keys = append(keys, catalog.Name+"_"+key)
		}
	}

	return keys
}
