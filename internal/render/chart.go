package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"swstats/internal/analysis"
)

const (
	defaultChartWidth  = 40
	defaultChartHeight = 12
	minChartWidth      = 10
)

// ChartOptions controls chart size and styling.
type ChartOptions struct {
	Width  int
	Height int
	Color  bool
	Title  string
}

func (o ChartOptions) width() int {
	if o.Width < minChartWidth {
		if o.Width == 0 {
			return defaultChartWidth
		}
		return minChartWidth
	}
	return o.Width
}

func (o ChartOptions) height() int {
	if o.Height <= 2 {
		return defaultChartHeight
	}
	return o.Height
}

// Series markers and colours, assigned to point keys in first-seen order.
var (
	seriesMarkers = []rune{'●', '▲', '■', '◆', '★', '✚'}
	seriesColors  = []string{"#FF8700", "#00AFFF", "#AF5FFF", "#5FD700", "#FF5F87", "#FFD700"}
)

type chartStyles struct {
	title  lipgloss.Style
	bar    lipgloss.Style
	point  lipgloss.Style
	line   lipgloss.Style
	muted  lipgloss.Style
	series []lipgloss.Style
}

// newChartStyles returns plain styles unless colour is requested, in which
// case output is forced to ANSI256 whatever the writer turns out to be.
func newChartStyles(color bool) chartStyles {
	renderer := lipgloss.NewRenderer(io.Discard)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	series := make([]lipgloss.Style, 0, len(seriesColors))
	for _, c := range seriesColors {
		series = append(series, renderer.NewStyle().Foreground(lipgloss.Color(c)).Bold(true))
	}
	return chartStyles{
		title:  renderer.NewStyle().Bold(true),
		bar:    renderer.NewStyle().Foreground(lipgloss.Color("#5B8DEF")),
		point:  renderer.NewStyle().Foreground(lipgloss.Color("#F5A623")).Bold(true),
		line:   renderer.NewStyle().Foreground(lipgloss.Color("#5B8DEF")),
		muted:  renderer.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		series: series,
	}
}

// scatterMark is how one series is drawn. With colour every series uses "●"
// in its own colour; without it each series gets its own glyph.
type scatterMark struct {
	glyph rune
	style lipgloss.Style
}

func seriesMarks(points []analysis.Point, styles chartStyles, color bool) ([]string, map[string]scatterMark) {
	var keys []string
	marks := map[string]scatterMark{}
	for _, p := range points {
		if p.Key == "" {
			continue
		}
		if _, ok := marks[p.Key]; ok {
			continue
		}
		i := len(keys)
		keys = append(keys, p.Key)
		mark := scatterMark{glyph: seriesMarkers[i%len(seriesMarkers)], style: styles.point}
		if color {
			mark = scatterMark{glyph: '●', style: styles.series[i%len(styles.series)]}
		}
		marks[p.Key] = mark
	}
	return keys, marks
}

// BarChart draws one horizontal bar per group, scaled to the largest mean.
// Groups with an undefined mean get an empty bar labelled NA.
func BarChart(groups analysis.Groups, opts ChartOptions) string {
	styles := newChartStyles(opts.Color)
	width := opts.width()

	var sb strings.Builder
	if opts.Title != "" {
		sb.WriteString(styles.title.Render(opts.Title))
		sb.WriteByte('\n')
	}
	if len(groups) == 0 {
		sb.WriteString(styles.muted.Render("(no groups)"))
		sb.WriteByte('\n')
		return sb.String()
	}

	labelWidth := 0
	peak := 0.0
	for _, g := range groups {
		labelWidth = max(labelWidth, len([]rune(g.Key)))
		if v, ok := g.Mean.Float64(); ok {
			peak = max(peak, math.Abs(v))
		}
	}

	for _, g := range groups {
		label := g.Key + strings.Repeat(" ", labelWidth-len([]rune(g.Key)))
		sb.WriteString(label)
		sb.WriteString(" │")
		v, ok := g.Mean.Float64()
		cells := 0
		if ok && peak > 0 {
			cells = int(math.Round(math.Abs(v) / peak * float64(width)))
		}
		if cells > 0 {
			sb.WriteString(styles.bar.Render(strings.Repeat("█", cells)))
		}
		sb.WriteByte(' ')
		sb.WriteString(styles.muted.Render(fmt.Sprintf("%s (n=%d)", g.Mean.Round(decimals), g.Count)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Scatter plots points on a character grid and overlays the fitted line.
// Cells holding an observation show a marker; cells on the line show "·".
// Points carrying a Key are drawn per series and listed in a legend.
func Scatter(points []analysis.Point, fit analysis.Fit, opts ChartOptions) string {
	styles := newChartStyles(opts.Color)
	width := opts.width()
	height := opts.height()

	var sb strings.Builder
	if opts.Title != "" {
		sb.WriteString(styles.title.Render(opts.Title))
		sb.WriteByte('\n')
	}
	if len(points) == 0 {
		sb.WriteString(styles.muted.Render("(no points)"))
		sb.WriteByte('\n')
		return sb.String()
	}

	xMin, xMax := points[0].X, points[0].X
	yMin, yMax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
		yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
	}
	yMin = math.Min(yMin, math.Min(fit.Predict(xMin), fit.Predict(xMax)))
	yMax = math.Max(yMax, math.Max(fit.Predict(xMin), fit.Predict(xMax)))
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	column := func(x float64) int {
		return int(math.Round((x - xMin) / (xMax - xMin) * float64(width-1)))
	}
	line := func(y float64) int {
		return height - 1 - int(math.Round((y-yMin)/(yMax-yMin)*float64(height-1)))
	}

	keys, marks := seriesMarks(points, styles, opts.Color)
	fitLine := scatterMark{glyph: '·', style: styles.line}
	plain := scatterMark{glyph: '●', style: styles.point}

	grid := make([][]*scatterMark, height)
	for r := range grid {
		grid[r] = make([]*scatterMark, width)
	}
	for c := 0; c < width; c++ {
		x := xMin + float64(c)/float64(width-1)*(xMax-xMin)
		if r := line(fit.Predict(x)); r >= 0 && r < height {
			grid[r][c] = &fitLine
		}
	}
	for _, p := range points {
		mark := &plain
		if m, ok := marks[p.Key]; ok {
			mark = &m
		}
		grid[line(p.Y)][column(p.X)] = mark
	}

	yLabelHi := analysis.Defined(yMax).Round(decimals).String()
	yLabelLo := analysis.Defined(yMin).Round(decimals).String()
	gutter := max(len(yLabelHi), len(yLabelLo))
	for r, cells := range grid {
		label := ""
		switch r {
		case 0:
			label = yLabelHi
		case height - 1:
			label = yLabelLo
		}
		sb.WriteString(strings.Repeat(" ", gutter-len(label)))
		sb.WriteString(styles.muted.Render(label))
		sb.WriteString(" │")
		for _, cell := range cells {
			if cell == nil {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(cell.style.Render(string(cell.glyph)))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat(" ", gutter))
	sb.WriteString(" └")
	sb.WriteString(strings.Repeat("─", width))
	sb.WriteByte('\n')

	xLabelLo := analysis.Defined(xMin).Round(decimals).String()
	xLabelHi := analysis.Defined(xMax).Round(decimals).String()
	pad := max(1, width-len(xLabelLo)-len(xLabelHi))
	sb.WriteString(strings.Repeat(" ", gutter+2))
	sb.WriteString(styles.muted.Render(xLabelLo + strings.Repeat(" ", pad) + xLabelHi))
	sb.WriteByte('\n')
	if len(keys) > 0 {
		entries := make([]string, 0, len(keys))
		for _, key := range keys {
			m := marks[key]
			entries = append(entries, m.style.Render(string(m.glyph))+" "+key)
		}
		sb.WriteString(strings.Join(entries, "  "))
		sb.WriteByte('\n')
	}
	sb.WriteString(styles.muted.Render(fmt.Sprintf("%s = %s + %s × %s   (R² %s, n=%d)",
		fit.Response, formatFloat(fit.Intercept), formatFloat(fit.Slope), fit.Predictor,
		formatFloat(fit.RSquared), fit.N)))
	sb.WriteByte('\n')
	return sb.String()
}
