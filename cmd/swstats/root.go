package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var inputDirFlag string

	ctx := newCommandContext(&configFlag, &inputDirFlag)

	rootCmd := &cobra.Command{
		Use:           "swstats",
		Short:         "Star Wars film and character statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&inputDirFlag, "input-dir", "", "Read films.json, people.json and species.json from this directory instead of the API")

	rootCmd.AddCommand(newFilmsCommand(ctx))
	rootCmd.AddCommand(newSummaryCommand(ctx))
	rootCmd.AddCommand(newSpeciesCommand(ctx))
	rootCmd.AddCommand(newTrendCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
