package cmd

import (
	"context"

	"github.com/devantler-tech/tfinfra/pkg/di"
	"github.com/devantler-tech/tfinfra/pkg/io/configmanager"
	"github.com/devantler-tech/tfinfra/pkg/svc/discover"
	"github.com/devantler-tech/tfinfra/pkg/svc/provisioner"
	"github.com/devantler-tech/tfinfra/pkg/utils/notify"
	"github.com/devantler-tech/tfinfra/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// lifecycle describes one terraform-backed command.
type lifecycle struct {
	use     string
	short   string
	emoji   string
	title   string
	success string
	// warning is shown before terraform runs.
	warning string
	// notice returns a closing hint shown after success.
	notice func(*configmanager.Settings) string
	run     func(*provisioner.Provisioner, context.Context) error
}

// NewPlanCmd creates the plan command.
func NewPlanCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return newLifecycleCmd(runtimeContainer, lifecycle{
		use:     discover.CommandPlan,
		short:   "Show the infrastructure changes terraform would make",
		emoji:   "📝",
		title:   "Plan infrastructure...",
		success: "infrastructure planned",
		run:     (*provisioner.Provisioner).Plan,
	})
}

// NewApplyCmd creates the apply command. It writes the cluster descriptor on success.
func NewApplyCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return newLifecycleCmd(runtimeContainer, lifecycle{
		use:     discover.CommandApply,
		short:   "Create or update the infrastructure and write the cluster descriptor",
		emoji:   "🚀",
		title:   "Apply infrastructure...",
		success: "infrastructure applied",
		notice: func(settings *configmanager.Settings) string {
			return "cluster descriptor written to '" + settings.OutputFile + "'"
		},
		run: (*provisioner.Provisioner).Apply,
	})
}

// NewDestroyCmd creates the destroy command.
func NewDestroyCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return newLifecycleCmd(runtimeContainer, lifecycle{
		use:     discover.CommandDestroy,
		short:   "Destroy the infrastructure without confirmation",
		emoji:   "🗑️",
		title:   "Destroy infrastructure...",
		success: "infrastructure destroyed",
		warning: "resources are destroyed without confirmation",
		run:     (*provisioner.Provisioner).Destroy,
	})
}

// NewGraphCmd creates the graph command.
func NewGraphCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return newLifecycleCmd(runtimeContainer, lifecycle{
		use:     discover.CommandGraph,
		short:   "Print the terraform resource graph",
		emoji:   "🕸️",
		title:   "Graph infrastructure...",
		success: "graph printed",
		run:     (*provisioner.Provisioner).Graph,
	})
}

func newLifecycleCmd(runtimeContainer *di.Runtime, def lifecycle) *cobra.Command {
	return &cobra.Command{
		Use:           def.use,
		Short:         def.short,
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

				notify.Titlef(cmd.ErrOrStderr(), def.emoji, "%s", def.title)

				prov, err := di.ResolveProvisioner(injector)
				if err != nil {
					return err
				}

				plugin, err := di.ResolvePlugin(injector)
				if err != nil {
					return err
				}

				if def.warning != "" {
					notify.Warningf(cmd.ErrOrStderr(), "%s", def.warning)
				}

				notify.Activityf(cmd.ErrOrStderr(), "running terraform %s for '%s'", def.use, plugin.Name())

				ctx, cancel := withTimeout(cmd.Context(), settings)
				defer cancel()

				err = def.run(prov, ctx)
				if err != nil {
					return err //nolint:wrapcheck // provisioner errors carry the subcommand
				}

				succeed(cmd, settings, tmr, def.success)

				if def.notice != nil {
					notify.Infof(cmd.ErrOrStderr(), "%s", def.notice(settings))
				}

				return nil
			},
		)),
	}
}

// withTimeout bounds ctx by the configured timeout, if any.
func withTimeout(ctx context.Context, settings *configmanager.Settings) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	if settings.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, settings.Timeout)
}

func succeed(cmd *cobra.Command, settings *configmanager.Settings, tmr timer.Timer, message string) {
	if settings.Timing {
		tmr.Stop()
		notify.SuccessWithTimerf(cmd.ErrOrStderr(), tmr, "%s", message)

		return
	}

	notify.Successf(cmd.ErrOrStderr(), "%s", message)
}
