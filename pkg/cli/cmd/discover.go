package cmd

import (
	"fmt"

	"github.com/devantler-tech/tfinfra/pkg/svc/discover"
	"github.com/spf13/cobra"
)

// NewDiscoverCmd creates the discover command, which prints the command manifest on stdout.
func NewDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:           discover.CommandDiscover,
		Short:         "Print the commands offered by this provider",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := discover.NewManifest().YAML()
			if err != nil {
				return err //nolint:wrapcheck // already describes the failure
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), manifest)
			if err != nil {
				return fmt.Errorf("failed to print manifest: %w", err)
			}

			return nil
		},
	}
}
