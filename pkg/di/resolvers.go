package di

import (
	"fmt"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/io/configmanager"
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/devantler-tech/tfinfra/pkg/svc/provisioner"
	"github.com/devantler-tech/tfinfra/pkg/utils/timer"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveSettings retrieves the loaded settings.
func ResolveSettings(injector Injector) (*configmanager.Settings, error) {
	settings, err := do.Invoke[*configmanager.Settings](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve settings dependency: %w", err)
	}

	return settings, nil
}

// ResolveStreams retrieves the command writers.
func ResolveStreams(injector Injector) (Streams, error) {
	streams, err := do.Invoke[Streams](injector)
	if err != nil {
		return Streams{}, fmt.Errorf("resolve streams dependency: %w", err)
	}

	return streams, nil
}

// ResolveLogger retrieves the logger.
func ResolveLogger(injector Injector) (*logrus.Logger, error) {
	logger, err := do.Invoke[*logrus.Logger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveParameters retrieves the decoded parameters document.
func ResolveParameters(injector Injector) (*v1alpha1.Parameters, error) {
	params, err := do.Invoke[*v1alpha1.Parameters](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve parameters dependency: %w", err)
	}

	return params, nil
}

// ResolvePlugin retrieves the detected cloud plugin.
func ResolvePlugin(injector Injector) (cloud.Plugin, error) {
	plugin, err := do.Invoke[cloud.Plugin](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve plugin dependency: %w", err)
	}

	return plugin, nil
}

// ResolveProvisioner retrieves the provisioner for the detected plugin.
func ResolveProvisioner(injector Injector) (*provisioner.Provisioner, error) {
	prov, err := do.Invoke[*provisioner.Provisioner](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve provisioner dependency: %w", err)
	}

	return prov, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer dependency.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}

// WithProvisioner decorates a handler to resolve the timer and the provisioner.
func WithProvisioner(
	handler func(cmd *cobra.Command, prov *provisioner.Provisioner, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return WithTimer(func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error {
		prov, err := ResolveProvisioner(injector)
		if err != nil {
			return err
		}

		return handler(cmd, prov, tmr)
	})
}
