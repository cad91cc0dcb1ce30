package commands

import (
	"github.com/spf13/cobra"

	"tudu/config"
	"tudu/helper"
)

// Runner applies one migration action against the configured database.
type Runner func(cfg *config.Config, action string) error

func Execute() error {
	return NewRootCmd(helper.Runner).Execute()
}

func NewRootCmd(run Runner) *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the PostgreSQL schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		actionCmd(run, helper.ActionUp, "Apply every pending migration"),
		actionCmd(run, helper.ActionDown, "Roll back the most recent migration"),
		actionCmd(run, helper.ActionStepUp, "Apply the next pending migration"),
		actionCmd(run, helper.ActionDrop, "Roll back every migration"),
	)

	return root
}

func actionCmd(run Runner, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(config.Get(), action)
		},
	}
}
