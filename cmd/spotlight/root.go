package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spotlight",
		Short:         "Guided tours for terminal UIs",
		Long:          `Spotlight dims a terminal UI around one region at a time and explains it, walking the user through a tour.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (default $SPOTLIGHT_CONFIG or the user config dir)")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newTraitsCmd())
	return root
}
