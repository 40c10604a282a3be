package di

import (
	"io"
	"os"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/devantler-tech/tfinfra/pkg/io/configmanager"
	"github.com/devantler-tech/tfinfra/pkg/io/parameters"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud/registry"
	"github.com/devantler-tech/tfinfra/pkg/svc/composer"
	"github.com/devantler-tech/tfinfra/pkg/svc/provisioner"
	"github.com/devantler-tech/tfinfra/pkg/svc/variables"
	"github.com/devantler-tech/tfinfra/pkg/utils/logging"
	"github.com/devantler-tech/tfinfra/pkg/utils/timer"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// Streams are the writers of the running command.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Dependency providers.

// NewRuntime constructs the runtime shared by the root command and its subcommands.
// Settings are loaded from manager on first use, so flags must be parsed before a
// handler resolves anything. overrides run last and may replace providers with
// do.Override.
func NewRuntime(manager *configmanager.Manager, overrides ...Module) *Runtime {
	modules := []Module{
		provideSettings(manager),
		provideStreams(os.Stdout, os.Stderr),
		provideLogger,
		provideTimer,
		provideParameterStore,
		provideParameters,
		provideRegistryOptions,
		providePlugins,
		provideSelectedPlugin,
		provideTerraformRunner,
		provideTerraformClient,
		provideCompiler,
		provideComposer,
		provideProvisioner,
	}

	return New(append(modules, overrides...)...)
}

// OverrideStreams replaces the writers with the ones of a cobra command.
func OverrideStreams(out, errOut io.Writer) Module {
	return func(i Injector) error {
		do.Override(i, func(Injector) (Streams, error) {
			return Streams{Out: out, Err: errOut}, nil
		})

		return nil
	}
}

func provideSettings(manager *configmanager.Manager) Module {
	return func(i Injector) error {
		do.Provide(i, func(Injector) (*configmanager.Settings, error) {
			return manager.Load() //nolint:wrapcheck // configmanager errors are descriptive
		})

		return nil
	}
}

func provideStreams(out, errOut io.Writer) Module {
	return func(i Injector) error {
		do.Provide(i, func(Injector) (Streams, error) {
			return Streams{Out: out, Err: errOut}, nil
		})

		return nil
	}
}

func provideLogger(i Injector) error {
	do.Provide(i, func(i Injector) (*logrus.Logger, error) {
		settings, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		return logging.New(streams.Err, settings.LogLevel) //nolint:wrapcheck // names the level
	})

	return nil
}

func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

func provideParameterStore(i Injector) error {
	do.Provide(i, func(i Injector) (*parameters.Store, error) {
		settings, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(i)
		if err != nil {
			return nil, err
		}

		return parameters.NewStore(settings.ParametersFile, logger), nil
	})

	return nil
}

func provideParameters(i Injector) error {
	do.Provide(i, func(i Injector) (*v1alpha1.Parameters, error) {
		store, err := do.Invoke[*parameters.Store](i)
		if err != nil {
			return nil, err //nolint:wrapcheck // resolved by ResolveParameters
		}

		return store.Load() //nolint:wrapcheck // names the parameters file
	})

	return nil
}

func provideRegistryOptions(i Injector) error {
	do.Provide(i, func(Injector) (registry.Options, error) {
		return registry.Options{}, nil
	})

	return nil
}

func providePlugins(i Injector) error {
	do.Provide(i, func(i Injector) ([]cloud.Plugin, error) {
		params, err := ResolveParameters(i)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(i)
		if err != nil {
			return nil, err
		}

		opts, err := do.Invoke[registry.Options](i)
		if err != nil {
			return nil, err //nolint:wrapcheck // resolved by ResolvePlugin
		}

		return registry.Plugins(params, logger, opts), nil
	})

	return nil
}

func provideSelectedPlugin(i Injector) error {
	do.Provide(i, func(i Injector) (cloud.Plugin, error) {
		plugins, err := do.Invoke[[]cloud.Plugin](i)
		if err != nil {
			return nil, err //nolint:wrapcheck // resolved by ResolvePlugin
		}

		logger, err := ResolveLogger(i)
		if err != nil {
			return nil, err
		}

		return cloud.Select(plugins, logger) //nolint:wrapcheck // names the missing backend
	})

	return nil
}

func provideTerraformRunner(i Injector) error {
	do.Provide(i, func(Injector) (terraform.Runner, error) {
		return terraform.ExecRunner{}, nil
	})

	return nil
}

func provideTerraformClient(i Injector) error {
	do.Provide(i, func(i Injector) (*terraform.Client, error) {
		settings, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		runner, err := do.Invoke[terraform.Runner](i)
		if err != nil {
			return nil, err //nolint:wrapcheck // resolved by ResolveProvisioner
		}

		return terraform.NewClient(terraform.Options{
			Binary:    settings.TerraformBinary,
			Dir:       settings.TerraformDir,
			StateFile: settings.StateFile,
			Stdout:    streams.Out,
			Stderr:    streams.Err,
		}, runner), nil
	})

	return nil
}

func provideCompiler(i Injector) error {
	do.Provide(i, func(i Injector) (*variables.Compiler, error) {
		params, plugin, logger, err := resolvePluginScope(i)
		if err != nil {
			return nil, err
		}

		return variables.NewCompiler(params, plugin, logger), nil
	})

	return nil
}

func provideComposer(i Injector) error {
	do.Provide(i, func(i Injector) (*composer.Composer, error) {
		params, plugin, logger, err := resolvePluginScope(i)
		if err != nil {
			return nil, err
		}

		return composer.NewComposer(params, plugin, registry.SecretKeys(), logger), nil
	})

	return nil
}

func provideProvisioner(i Injector) error {
	do.Provide(i, func(i Injector) (*provisioner.Provisioner, error) {
		_, plugin, logger, err := resolvePluginScope(i)
		if err != nil {
			return nil, err
		}

		compiler, err := do.Invoke[*variables.Compiler](i)
		if err != nil {
			return nil, err //nolint:wrapcheck // resolved by ResolveProvisioner
		}

		client, err := do.Invoke[*terraform.Client](i)
		if err != nil {
			return nil, err //nolint:wrapcheck // resolved by ResolveProvisioner
		}

		comp, err := do.Invoke[*composer.Composer](i)
		if err != nil {
			return nil, err //nolint:wrapcheck // resolved by ResolveProvisioner
		}

		settings, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		return provisioner.NewProvisioner(plugin, compiler, client, comp, settings.OutputFile, logger), nil
	})

	return nil
}

func resolvePluginScope(i Injector) (*v1alpha1.Parameters, cloud.Plugin, *logrus.Logger, error) {
	params, err := ResolveParameters(i)
	if err != nil {
		return nil, nil, nil, err
	}

	plugin, err := ResolvePlugin(i)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := ResolveLogger(i)
	if err != nil {
		return nil, nil, nil, err
	}

	return params, plugin, logger, nil
}
