package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uikit",
		Short:         "uikit renders, audits and tests accessible UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default .uikit.yaml)")

	cmd.AddCommand(newVRTCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newAuditCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
