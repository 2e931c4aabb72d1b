package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"swstats/internal/analysis"
	"swstats/internal/films"
	"swstats/internal/logging"
	"swstats/internal/render"
)

func newTrendCommand(ctx *commandContext) *cobra.Command {
	var dataset string
	var predictor string
	var response string
	var plot bool
	var colorBy string
	var format string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Fit a least-squares line of one numeric column against another",
		Example: "  swstats trend --x planet_count --y ship_total --plot\n" +
			"  swstats trend --plot --color-by trilogy\n" +
			"  swstats trend --dataset characters --x height --y mass",
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ctx.outputFormat(format)
			if err != nil {
				return err
			}
			runCtx, logger, err := ctx.runContext(cmd, "trend")
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
			var points []analysis.Point
			if colorBy != "" {
				points, err = analysis.KeyedPoints(frame, colorBy, predictor, response)
			} else {
				points, err = analysis.Points(frame, predictor, response)
			}
			if err != nil {
				return err
			}
			if skipped := frame.Len() - len(points); skipped > 0 {
				logging.WarnWithContext(logger, "rows without both values left out of the fit", "trend_skip",
					logging.Int("skipped", skipped),
					logging.String(logging.FieldImpact, "fit uses fewer observations"),
				)
			}
			fit, err := analysis.FitPoints(points, predictor, response)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plot {
				title := fmt.Sprintf("%s vs %s", render.Header(response), render.Header(predictor))
				_, err := io.WriteString(out, render.Scatter(points, fit, ctx.chartOptions(out, title)))
				return err
			}
			return render.Fit(out, fit, outFormat)
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", datasetFilms, "Dataset to fit: films or characters")
	cmd.Flags().StringVar(&predictor, "x", films.ColPlanetCount, "Predictor column")
	cmd.Flags().StringVar(&response, "y", films.ColShipTotal, "Response column")
	cmd.Flags().BoolVar(&plot, "plot", false, "Draw a scatter plot with the fitted line")
	cmd.Flags().StringVar(&colorBy, "color-by", "", "Categorical column that marks plotted points by group")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv, json, yaml")
	return cmd
}
