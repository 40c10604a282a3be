package provisioner

import (
	"context"
	"maps"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/devantler-tech/tfinfra/pkg/svc/composer"
	"github.com/devantler-tech/tfinfra/pkg/svc/variables"
	"github.com/sirupsen/logrus"
)

// Provisioner runs terraform for one selected plugin.
type Provisioner struct {
	plugin     cloud.Plugin
	compiler   *variables.Compiler
	client     *terraform.Client
	composer   *composer.Composer
	outputFile string
	logger     logrus.FieldLogger
}

// NewProvisioner wires a provisioner. outputFile receives the descriptor after apply.
func NewProvisioner(
	plugin cloud.Plugin,
	compiler *variables.Compiler,
	client *terraform.Client,
	composer *composer.Composer,
	outputFile string,
	logger logrus.FieldLogger,
) *Provisioner {
	return &Provisioner{
		plugin:     plugin,
		compiler:   compiler,
		client:     client,
		composer:   composer,
		outputFile: outputFile,
		logger:     logger,
	}
}

// Plan runs terraform plan.
func (p *Provisioner) Plan(ctx context.Context) error {
	return p.exec(ctx, "plan")
}

// Apply runs terraform apply and writes the descriptor.
func (p *Provisioner) Apply(ctx context.Context) error {
	err := p.exec(ctx, "apply")
	if err != nil {
		return err
	}

	descriptor, err := p.Output(ctx)
	if err != nil {
		return err
	}

	return p.composer.Write(p.outputFile, descriptor) //nolint:wrapcheck // composer errors are descriptive
}

// Destroy runs terraform destroy without confirmation.
func (p *Provisioner) Destroy(ctx context.Context) error {
	return p.exec(ctx, "destroy", "-force")
}

// Graph runs terraform graph.
func (p *Provisioner) Graph(ctx context.Context) error {
	return p.exec(ctx, "graph")
}

// Output queries the terraform outputs and composes the descriptor.
func (p *Provisioner) Output(ctx context.Context) (v1alpha1.ClusterDescriptor, error) {
	outputs, err := p.client.Output(ctx, p.plugin.Name())
	if err != nil {
		return nil, err //nolint:wrapcheck // terraform errors carry the subcommand
	}

	return p.composer.Compose(ctx, outputs) //nolint:wrapcheck // composer errors are descriptive
}

// Configure compiles the variables and rewrites the variables file.
func (p *Provisioner) Configure(ctx context.Context) error {
	vars, err := p.compiler.Compile(ctx)
	if err != nil {
		return err //nolint:wrapcheck // compiler errors name the plugin
	}

	for _, line := range terraform.RenderVars(p.redacted(vars)) {
		p.logger.Debugf("tfvars: %s", line)
	}

	_, err = p.client.WriteVars(p.plugin.Name(), terraform.RenderVars(vars))

	return err //nolint:wrapcheck // names the variables file
}

// redacted masks the plugin's secret variables for logging.
func (p *Provisioner) redacted(vars v1alpha1.Variables) v1alpha1.Variables {
	redacted := maps.Clone(vars)

	for _, key := range p.plugin.Catalog().SecretKeys {
		if _, ok := redacted[key]; ok {
			redacted[key] = v1alpha1.RedactedValue
		}
	}

	return redacted
}

func (p *Provisioner) exec(ctx context.Context, subcommand ...string) error {
	err := p.Configure(ctx)
	if err != nil {
		return err
	}

	return p.client.Run(ctx, p.plugin.Name(), subcommand...) //nolint:wrapcheck // terraform errors carry the subcommand
}
