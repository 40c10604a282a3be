package cmd

import (
	"fmt"

	"github.com/devantler-tech/tfinfra/pkg/di"
	"github.com/devantler-tech/tfinfra/pkg/svc/composer"
	"github.com/devantler-tech/tfinfra/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// NewOutputCmd creates the output command. It composes the cluster descriptor from the
// current terraform state and prints it without writing the result file.
func NewOutputCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:           "output",
		Short:         "Print the cluster descriptor of the current state",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: di.RunEWithRuntime(runtimeContainer, di.WithTimer(
			func(cmd *cobra.Command, injector di.Injector, tmr timer.Timer) error {
				tmr.Start()

				settings, err := di.ResolveSettings(injector)
				if err != nil {
					return err
				}

				prov, err := di.ResolveProvisioner(injector)
				if err != nil {
					return err
				}

				ctx, cancel := withTimeout(cmd.Context(), settings)
				defer cancel()

				descriptor, err := prov.Output(ctx)
				if err != nil {
					return err //nolint:wrapcheck // terraform errors carry the subcommand
				}

				content, err := composer.Marshal(descriptor)
				if err != nil {
					return err //nolint:wrapcheck // already describes the failure
				}

				_, err = cmd.OutOrStdout().Write(content)
				if err != nil {
					return fmt.Errorf("failed to print descriptor: %w", err)
				}

				succeed(cmd, settings, tmr, "descriptor printed")

				return nil
			},
		)),
	}
}
