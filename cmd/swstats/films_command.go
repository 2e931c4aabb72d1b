package main

import (
	"github.com/spf13/cobra"

	"swstats/internal/render"
)

func newFilmsCommand(ctx *commandContext) *cobra.Command {
	var sortColumn string
	var descending bool
	var format string

	cmd := &cobra.Command{
		Use:   "films",
		Short: "List every film with its derived statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ctx.outputFormat(format)
			if err != nil {
				return err
			}
			runCtx, logger, err := ctx.runContext(cmd, "films")
			if err != nil {
				return err
			}
			source, err := ctx.source(logger)
			if err != nil {
				return err
			}
			table, err := loadFilms(runCtx, source, logger)
			if err != nil {
				return err
			}
			if sortColumn != "" {
				if table, err = table.SortedBy(sortColumn, descending); err != nil {
					return err
				}
			}
			return render.Dataset(cmd.OutOrStdout(), table, outFormat)
		},
	}

	cmd.Flags().StringVar(&sortColumn, "sort", "", "Sort rows by this column")
	cmd.Flags().BoolVar(&descending, "desc", false, "Sort in descending order")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv, json, yaml")
	return cmd
}
