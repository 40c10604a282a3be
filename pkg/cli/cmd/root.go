package cmd

import (
	"errors"
	"fmt"

	"github.com/devantler-tech/tfinfra/pkg/di"
	"github.com/devantler-tech/tfinfra/pkg/io/configmanager"
	"github.com/spf13/cobra"
)

// ErrMissingCommand is returned when tfinfra runs without a command.
var ErrMissingCommand = errors.New("missing command")

// NewRootCmd creates the root command with version info and subcommands. overrides are
// appended to the dependency modules, which lets tests swap the terraform runner or the
// cloud API clients.
func NewRootCmd(version, commit, date string, overrides ...di.Module) *cobra.Command {
	manager := configmanager.NewManager()
	runtimeContainer := di.NewRuntime(manager, overrides...)

	cmd := &cobra.Command{
		Use:           "tfinfra",
		Short:         "Provision cluster infrastructure with terraform",
		Long:          "tfinfra detects the cloud from a parameters document and drives terraform to build the machines of a cluster.",
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fmt.Errorf("%w: expected one of %v", ErrMissingCommand, commandNames(cmd))
		},
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	// Binding only fails for a nil flag set.
	_ = manager.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewDiscoverCmd())
	cmd.AddCommand(NewPlanCmd(runtimeContainer))
	cmd.AddCommand(NewApplyCmd(runtimeContainer))
	cmd.AddCommand(NewDestroyCmd(runtimeContainer))
	cmd.AddCommand(NewGraphCmd(runtimeContainer))
	cmd.AddCommand(NewOutputCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func commandNames(cmd *cobra.Command) []string {
	var names []string

	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			names = append(names, sub.Name())
		}
	}

	return names
}
