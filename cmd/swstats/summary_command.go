package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"swstats/internal/analysis"
	"swstats/internal/films"
	"swstats/internal/render"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var dataset string
	var keyField string
	var valueField string
	var minCount int
	var sortMode string
	var chart bool
	var format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Group rows by a categorical column and average a numeric one",
		Example: "  swstats summary --by trilogy --field ship_total\n" +
			"  swstats summary --dataset characters --by species --field mass --min-count 2 --chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ctx.outputFormat(format)
			if err != nil {
				return err
			}
			runCtx, logger, err := ctx.runContext(cmd, "summary")
			if err != nil {
				return err
			}
			source, err := ctx.source(logger)
			if err != nil {
				return err
			}
			frame, err := loadDataset(runCtx, dataset, source, logger)
			if err != nil {
				return err
			}
			groups, err := analysis.AggregateBy(frame, keyField, valueField, analysis.AggregateOptions{
				MinCount: minCount,
				Sort:     sortMode,
			})
			if err != nil {
				return err
			}
			return writeGroups(cmd.OutOrStdout(), ctx, groups, keyField, valueField, outFormat, chart)
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", datasetFilms, "Dataset to summarize: films or characters")
	cmd.Flags().StringVar(&keyField, "by", films.ColTrilogy, "Categorical column to group by")
	cmd.Flags().StringVar(&valueField, "field", films.ColShipTotal, "Numeric column to average")
	cmd.Flags().IntVar(&minCount, "min-count", 0, "Drop groups with fewer rows (default keeps every group)")
	cmd.Flags().StringVar(&sortMode, "sort", "", fmt.Sprintf("Group order: %v (default first seen)", analysis.SortModes))
	cmd.Flags().BoolVar(&chart, "chart", false, "Draw a bar chart of the group means")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv, json, yaml")
	return cmd
}

func writeGroups(w io.Writer, ctx *commandContext, groups analysis.Groups, keyField, valueField string, format render.Format, chart bool) error {
	if chart {
		title := fmt.Sprintf("Mean %s by %s", render.Header(valueField), render.Header(keyField))
		_, err := io.WriteString(w, render.BarChart(groups, ctx.chartOptions(w, title)))
		return err
	}
	return render.Groups(w, render.GroupFrame{Groups: groups, KeyName: keyField, ValueName: valueField}, format)
}
