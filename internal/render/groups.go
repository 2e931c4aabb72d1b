package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"swstats/internal/analysis"
)

// GroupFrame exposes aggregation output as a Frame so it renders like any
// other table. KeyName and ValueName label the key and mean columns.
type GroupFrame struct {
	Groups    analysis.Groups
	KeyName   string
	ValueName string
}

var _ analysis.Frame = GroupFrame{}

func (g GroupFrame) meanColumn() string {
	if g.ValueName == "" {
		return "mean"
	}
	return "mean_" + g.ValueName
}

func (g GroupFrame) keyColumn() string {
	if g.KeyName == "" {
		return "key"
	}
	return g.KeyName
}

func (g GroupFrame) Len() int { return len(g.Groups) }

func (g GroupFrame) Columns() []analysis.Column {
	return []analysis.Column{
		{Name: g.keyColumn(), Kind: analysis.KindText},
		{Name: "count", Kind: analysis.KindNumber},
		{Name: g.meanColumn(), Kind: analysis.KindNumber},
	}
}

func (g GroupFrame) Text(row int, col string) string {
	if col == g.keyColumn() {
		return g.Groups[row].Key
	}
	return ""
}

func (g GroupFrame) Number(row int, col string) analysis.Value {
	switch col {
	case "count":
		return analysis.Int(g.Groups[row].Count)
	case g.meanColumn():
		return g.Groups[row].Mean
	default:
		return analysis.Undefined
	}
}

// Groups writes aggregation output in the requested format.
func Groups(w io.Writer, groups GroupFrame, format Format) error {
	return Dataset(w, groups, format)
}

// Fit writes a fitted trend summary in the requested format.
func Fit(w io.Writer, fit analysis.Fit, format Format) error {
	switch format {
	case FormatTable, "":
		_, err := io.WriteString(w, renderFitTable(fit)+"\n")
		return err
	case FormatCSV:
		tw := fitWriter(fit)
		_, err := io.WriteString(w, tw.RenderCSV()+"\n")
		return err
	case FormatJSON:
		return encodeJSON(w, fit)
	case FormatYAML:
		return encodeYAML(w, fit)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func fitWriter(fit analysis.Fit) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"predictor", "response", "intercept", "slope", "r_squared", "n"})
	tw.AppendRow(table.Row{
		fit.Predictor,
		fit.Response,
		formatFloat(fit.Intercept),
		formatFloat(fit.Slope),
		formatFloat(fit.RSquared),
		fit.N,
	})
	return tw
}

func renderFitTable(fit analysis.Fit) string {
	tw := table.NewWriter()
	tw.SetStyle(roundedStyle())
	tw.AppendHeader(table.Row{"Term", "Value"})
	tw.AppendRows([]table.Row{
		{"Model", fmt.Sprintf("%s ~ %s", fit.Response, fit.Predictor)},
		{"Intercept", formatFloat(fit.Intercept)},
		{"Slope", formatFloat(fit.Slope)},
		{"R²", formatFloat(fit.RSquared)},
		{"Observations", fit.N},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func formatFloat(v float64) string {
	return analysis.Defined(v).Round(4).String()
}
