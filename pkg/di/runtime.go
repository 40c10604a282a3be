// Package di builds the samber/do container used by the tfinfra commands.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the container handed to modules and handlers.
type Injector = do.Injector

// Module registers providers on an injector.
type Module func(Injector) error

// Runtime holds the base modules. Every Invoke builds a fresh injector from them.
type Runtime struct {
	modules []Module
}

// New creates a runtime from base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke builds an injector from the base modules followed by extra, runs handler and
// shuts the injector down.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()
	defer injector.Shutdown() //nolint:errcheck // shutdown report is not actionable

	modules := make([]Module, 0, len(r.modules)+len(extra))
	modules = append(modules, r.modules...)
	modules = append(modules, extra...)

	for _, module := range modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler into a cobra RunE. The command's writers replace
// the default Streams.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		}, OverrideStreams(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	}
}
