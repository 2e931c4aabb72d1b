package render_test

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"swstats/internal/analysis"
	"swstats/internal/films"
	"swstats/internal/render"
	"swstats/internal/testsupport"
)

func filmTable(t *testing.T) films.Table {
	t.Helper()
	table, err := films.Flatten(testsupport.Films())
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	return table
}

func trilogyGroups(t *testing.T) render.GroupFrame {
	t.Helper()
	groups, err := analysis.AggregateBy(filmTable(t), films.ColTrilogy, films.ColShipTotal, analysis.AggregateOptions{})
	if err != nil {
		t.Fatalf("AggregateBy returned error: %v", err)
	}
	return render.GroupFrame{Groups: groups, KeyName: films.ColTrilogy, ValueName: films.ColShipTotal}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]render.Format{
		"":      render.FormatTable,
		"table": render.FormatTable,
		" CSV ": render.FormatCSV,
		"json":  render.FormatJSON,
		"YAML":  render.FormatYAML,
	}
	for input, want := range tests {
		got, err := render.ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
	if _, err := render.ParseFormat("html"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestHeader(t *testing.T) {
	if got := render.Header("starship_count"); got != "Starship Count" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestDatasetTable(t *testing.T) {
	var buf bytes.Buffer
	if err := render.Dataset(&buf, filmTable(t), render.FormatTable); err != nil {
		t.Fatalf("Dataset returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"╭", "Starship Count", "Hyperdrive Ratio", "A New Hope", "Originals", "66.67"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestDatasetCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := render.Dataset(&buf, filmTable(t), render.FormatCSV); err != nil {
		t.Fatalf("Dataset returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "title,episode,trilogy,director,release_year") {
		t.Fatalf("unexpected csv header %q", lines[0])
	}
	if want := "A New Hope,4,Originals,George Lucas,1977,8,4,3,18,12,66.67"; lines[1] != want {
		t.Fatalf("unexpected first row:\n got %q\nwant %q", lines[1], want)
	}
}

func TestDatasetJSONKeepsColumnOrderAndNulls(t *testing.T) {
	title := "Shipless"
	episode := 7
	table, err := films.Flatten([]films.RawRecord{{
		Title: &title, EpisodeID: &episode,
		Starships: []string{}, Vehicles: []string{}, Planets: []string{},
	}})
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := render.Dataset(&buf, table, render.FormatJSON); err != nil {
		t.Fatalf("Dataset returned error: %v", err)
	}
	out := buf.String()
	if strings.Index(out, `"title"`) > strings.Index(out, `"episode"`) {
		t.Fatalf("expected title before episode:\n%s", out)
	}

	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0]["hyperdrive_ratio"] != nil {
		t.Fatalf("expected null ratio, got %v", rows[0]["hyperdrive_ratio"])
	}
	if rows[0]["trilogy"] != "Sequels" || rows[0]["ship_total"] != float64(0) {
		t.Fatalf("unexpected row: %v", rows[0])
	}
}

func TestDatasetYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := render.Dataset(&buf, filmTable(t), render.FormatYAML); err != nil {
		t.Fatalf("Dataset returned error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "- title: A New Hope\n") {
		t.Fatalf("expected title first in yaml output:\n%s", buf.String())
	}
	var rows []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode yaml output: %v", err)
	}
	if len(rows) != 6 || rows[3]["trilogy"] != "Prequels" || rows[0]["hyperdrive_ratio"] != 66.67 {
		t.Fatalf("unexpected yaml rows: %v", rows)
	}
}

func TestGroupsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := render.Groups(&buf, trilogyGroups(t), render.FormatJSON); err != nil {
		t.Fatalf("Groups returned error: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 groups, got %v", rows)
	}
	if rows[0]["trilogy"] != "Originals" || rows[0]["count"] != float64(3) || rows[0]["mean_ship_total"] != 15.67 {
		t.Fatalf("unexpected originals group: %v", rows[0])
	}
	if rows[1]["trilogy"] != "Prequels" || rows[1]["mean_ship_total"] != 17.67 {
		t.Fatalf("unexpected prequels group: %v", rows[1])
	}
}

func TestFitFormats(t *testing.T) {
	fit := analysis.Fit{Predictor: "x", Response: "y", Intercept: 0, Slope: 2, RSquared: 1, N: 4}

	var table bytes.Buffer
	if err := render.Fit(&table, fit, render.FormatTable); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}
	if !strings.Contains(table.String(), "y ~ x") || !strings.Contains(table.String(), "Slope") {
		t.Fatalf("unexpected fit table:\n%s", table.String())
	}

	var js bytes.Buffer
	if err := render.Fit(&js, fit, render.FormatJSON); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}
	var decoded analysis.Fit
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("decode fit json: %v", err)
	}
	if decoded != fit {
		t.Fatalf("fit json mismatch: got %+v want %+v", decoded, fit)
	}

	var csv bytes.Buffer
	if err := render.Fit(&csv, fit, render.FormatCSV); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}
	if !strings.Contains(csv.String(), "x,y,0,2,1,4") {
		t.Fatalf("unexpected fit csv:\n%s", csv.String())
	}
}

func TestBarChartPlain(t *testing.T) {
	out := render.BarChart(trilogyGroups(t).Groups, render.ChartOptions{Width: 20, Title: "Ships"})
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes without colour:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 || lines[0] != "Ships" {
		t.Fatalf("unexpected chart:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], "Prequels  │"+strings.Repeat("█", 20)+" ") {
		t.Fatalf("expected the largest mean to fill the width, got %q", lines[2])
	}
	if !strings.Contains(lines[1], "15.67 (n=3)") {
		t.Fatalf("expected mean and count label, got %q", lines[1])
	}
}

func TestBarChartColour(t *testing.T) {
	out := render.BarChart(trilogyGroups(t).Groups, render.ChartOptions{Color: true})
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected escape codes with colour enabled:\n%q", out)
	}
}

func TestBarChartUndefinedMean(t *testing.T) {
	groups := analysis.Groups{{Key: "Ghost", Count: 1, Mean: analysis.Undefined}}
	out := render.BarChart(groups, render.ChartOptions{})
	if strings.Contains(out, "█") || !strings.Contains(out, "NA (n=1)") {
		t.Fatalf("unexpected chart for undefined mean:\n%s", out)
	}
}

func TestScatter(t *testing.T) {
	points := []analysis.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}, {X: 4, Y: 8}}
	fit, err := analysis.FitPoints(points, "x", "y")
	if err != nil {
		t.Fatalf("FitPoints returned error: %v", err)
	}
	out := render.Scatter(points, fit, render.ChartOptions{Width: 20, Height: 8})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8+3 {
		t.Fatalf("expected grid, axis, labels and caption lines, got %d:\n%s", len(lines), out)
	}
	if got := strings.Count(out, "●"); got != 4 {
		t.Fatalf("expected 4 plotted points, got %d:\n%s", got, out)
	}
	if !strings.Contains(lines[len(lines)-1], "y = 0 + 2 × x") {
		t.Fatalf("unexpected caption %q", lines[len(lines)-1])
	}
}

func keyedPoints() []analysis.Point {
	return []analysis.Point{
		{X: 1, Y: 2, Key: "Originals"},
		{X: 2, Y: 4, Key: "Originals"},
		{X: 3, Y: 6, Key: "Prequels"},
		{X: 4, Y: 8, Key: "Prequels"},
	}
}

func TestScatterMarksEachKeyWithItsOwnGlyph(t *testing.T) {
	points := keyedPoints()
	fit, err := analysis.FitPoints(points, "x", "y")
	if err != nil {
		t.Fatalf("FitPoints returned error: %v", err)
	}
	out := render.Scatter(points, fit, render.ChartOptions{Width: 20, Height: 8})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8+4 {
		t.Fatalf("expected grid, axis, labels, legend and caption lines, got %d:\n%s", len(lines), out)
	}
	grid := strings.Join(lines[:8], "\n")
	if got := strings.Count(grid, "●"); got != 2 {
		t.Fatalf("expected 2 Originals markers, got %d:\n%s", got, out)
	}
	if got := strings.Count(grid, "▲"); got != 2 {
		t.Fatalf("expected 2 Prequels markers, got %d:\n%s", got, out)
	}
	if legend := lines[len(lines)-2]; legend != "● Originals  ▲ Prequels" {
		t.Fatalf("unexpected legend %q", legend)
	}
}

func TestScatterColoursEachKey(t *testing.T) {
	points := keyedPoints()
	fit, err := analysis.FitPoints(points, "x", "y")
	if err != nil {
		t.Fatalf("FitPoints returned error: %v", err)
	}
	out := render.Scatter(points, fit, render.ChartOptions{Width: 20, Height: 8, Color: true})
	if strings.Contains(out, "▲") {
		t.Fatalf("expected a single glyph when colour is on:\n%q", out)
	}
	styled := regexp.MustCompile("\x1b\\[([0-9;]*)m●").FindAllStringSubmatch(out, -1)
	seqs := map[string]bool{}
	for _, m := range styled {
		seqs[m[1]] = true
	}
	if len(seqs) != 2 {
		t.Fatalf("expected two distinct marker colours, got %v in %q", seqs, out)
	}
}

func TestScatterEmpty(t *testing.T) {
	if out := render.Scatter(nil, analysis.Fit{}, render.ChartOptions{}); !strings.Contains(out, "(no points)") {
		t.Fatalf("unexpected empty scatter %q", out)
	}
}
