package main

import (
	"github.com/spf13/cobra"

	"swstats/internal/analysis"
	"swstats/internal/characters"
)

func newSpeciesCommand(ctx *commandContext) *cobra.Command {
	var valueField string
	var minCount int
	var sortMode string
	var chart bool
	var format string

	cmd := &cobra.Command{
		Use:   "species",
		Short: "Summarize characters by species",
		Long: "Average a character measurement per species. Species with fewer members\n" +
			"than report.min_group_size (default 2) are left out.",
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ctx.outputFormat(format)
			if err != nil {
				return err
			}
			runCtx, logger, err := ctx.runContext(cmd, "species")
			if err != nil {
				return err
			}
			source, err := ctx.source(logger)
			if err != nil {
				return err
			}
			table, err := loadCharacters(runCtx, source, logger)
			if err != nil {
				return err
			}
			groups, err := analysis.AggregateBy(table, characters.ColSpecies, valueField, analysis.AggregateOptions{
				MinCount: ctx.minGroupSize(minCount),
				Sort:     sortMode,
			})
			if err != nil {
				return err
			}
			return writeGroups(cmd.OutOrStdout(), ctx, groups, characters.ColSpecies, valueField, outFormat, chart)
		},
	}

	cmd.Flags().StringVar(&valueField, "field", characters.ColMass, "Numeric character column to average")
	cmd.Flags().IntVar(&minCount, "min-count", 0, "Minimum species size (default report.min_group_size)")
	cmd.Flags().StringVar(&sortMode, "sort", analysis.SortCountDesc, "Group order")
	cmd.Flags().BoolVar(&chart, "chart", false, "Draw a bar chart of the group means")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv, json, yaml")
	return cmd
}
