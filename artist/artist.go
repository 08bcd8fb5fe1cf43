package artist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	pkgerrors "github.com/pkg/errors"

	"github.com/euxhenh/peasy/data"
	"github.com/euxhenh/peasy/ops"
	"github.com/euxhenh/peasy/params"
)

// PlotOpts configures one chart. X and Y name the frame columns to draw
// (default "x" and "y"); Hue optionally names a categorical column splitting
// the rows into per-series groups.
type PlotOpts struct {
	Title  string
	XLabel string
	YLabel string

	X   string
	Y   string
	Hue string

	// HideLegend suppresses the legend even when series are labeled.
	HideLegend bool

	// AddCentroids writes each hue group's name at the group's mean
	// position (scatter only).
	AddCentroids bool
}

func (o *PlotOpts) fill() {
	if o.X == "" {
		o.X = "x"
	}
	if o.Y == "" {
		o.Y = "y"
	}
}

// Artist draws single charts using its colony's style configuration.
type Artist struct {
	colony *Colony
}

// Colony returns the colony that spawned this artist.
func (a *Artist) Colony() *Colony { return a.colony }

type series struct {
	name   string
	color  string
	xs     []float64
	ys     []float64
	marker rune
}

// split partitions the frame rows into per-hue series with stable colors
// and markers assigned by the rank of the hue value.
func (a *Artist) split(f *data.Frame, o PlotOpts) ([]series, error) {
	xs, err := f.Floats(o.X)
	if err != nil {
		return nil, err
	}
	ys, err := f.Floats(o.Y)
	if err != nil {
		return nil, err
	}

	disc := a.colony.palette.Discrete()
	if o.Hue == "" {
		return []series{{
			name:   o.Y,
			color:  disc.At(0),
			xs:     xs,
			ys:     ys,
			marker: a.marker(0),
		}}, nil
	}

	hues, err := f.Strings(o.Hue)
	if err != nil {
		return nil, err
	}
	unique, groups, err := ops.GroupIndices([]string(hues))
	if err != nil {
		return nil, err
	}

	out := make([]series, len(unique))
	for rank, group := range groups {
		s := series{
			name:   unique[rank],
			color:  disc.At(rank),
			marker: a.marker(rank),
		}
		for _, pos := range group {
			s.xs = append(s.xs, xs[pos])
			s.ys = append(s.ys, ys[pos])
		}
		out[rank] = s
	}
	return out, nil
}

func (a *Artist) marker(rank int) rune {
	if a.colony.markers == nil {
		return runes.FullBlock
	}
	return a.colony.markers.At(rank)
}

// Line draws one line per hue group and returns the rendered chart.
func (a *Artist) Line(f *data.Frame, o PlotOpts) (string, error) {
	o.fill()
	groups, err := a.split(f, o)
	if err != nil {
		return "", pkgerrors.Wrap(err, "line plot")
	}

	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, s := range groups {
		for _, y := range s.ys {
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}

	lc := timeserieslinechart.New(a.colony.cellWidth, a.colony.cellHeight)
	lc.AxisStyle = a.axisStyle()
	lc.LabelStyle = a.labelStyle()
	lc.XLabelFormatter = func(_ int, v float64) string {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
	lc.SetYRange(minY, maxY)
	lc.SetViewYRange(minY, maxY)
	lc.SetLineStyle(a.colony.lineStyle)

	for _, s := range groups {
		lc.SetDataSetStyle(s.name, lipgloss.NewStyle().Foreground(lipgloss.Color(s.color)))
		for i := range s.xs {
			lc.PushDataSet(s.name, timeserieslinechart.TimePoint{
				Time:  time.Unix(int64(s.xs[i]), 0),
				Value: s.ys[i],
			})
		}
	}
	lc.DrawBrailleAll()

	return a.decorate(lc.View(), o, groups), nil
}

// Scatter places one marker per row on a character grid, colored and shaped
// by hue group.
func (a *Artist) Scatter(f *data.Frame, o PlotOpts) (string, error) {
	o.fill()
	groups, err := a.split(f, o)
	if err != nil {
		return "", pkgerrors.Wrap(err, "scatter plot")
	}

	w, h := a.colony.cellWidth, a.colony.cellHeight
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, s := range groups {
		for i := range s.xs {
			minX = math.Min(minX, s.xs[i])
			maxX = math.Max(maxX, s.xs[i])
			minY = math.Min(minY, s.ys[i])
			maxY = math.Max(maxY, s.ys[i])
		}
	}

	type cell struct {
		r     rune
		color string
	}
	grid := make([][]cell, h)
	for r := range grid {
		grid[r] = make([]cell, w)
	}
	norm := func(v, lo, hi float64, n int) int {
		t := 0.5
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		i := int(t * float64(n-1))
		return i
	}
	for _, s := range groups {
		for i := range s.xs {
			col := norm(s.xs[i], minX, maxX, w)
			row := h - 1 - norm(s.ys[i], minY, maxY, h)
			grid[row][col] = cell{r: s.marker, color: s.color}
		}
	}

	if o.AddCentroids {
		for _, s := range groups {
			var sx, sy float64
			for i := range s.xs {
				sx += s.xs[i]
				sy += s.ys[i]
			}
			n := float64(len(s.xs))
			col := norm(sx/n, minX, maxX, w)
			row := h - 1 - norm(sy/n, minY, maxY, h)
			for _, r := range s.name {
				if col >= w {
					break
				}
				grid[row][col] = cell{r: r, color: s.color}
				col++
			}
		}
	}

	var b strings.Builder
	for r, row := range grid {
		for _, c := range row {
			if c.r == 0 {
				b.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.color))
			b.WriteString(style.Render(string(c.r)))
		}
		if r < len(grid)-1 {
			b.WriteByte('\n')
		}
	}

	return a.decorate(b.String(), o, groups), nil
}

// Bar draws one bar per row, labels from the X column (strings) and heights
// from the Y column, colors cycling through the palette.
func (a *Artist) Bar(f *data.Frame, o PlotOpts) (string, error) {
	o.fill()
	labels, err := f.Strings(o.X)
	if err != nil {
		return "", pkgerrors.Wrap(err, "bar plot")
	}
	values, err := f.Floats(o.Y)
	if err != nil {
		return "", pkgerrors.Wrap(err, "bar plot")
	}
	if len(labels) != len(values) {
		return "", fmt.Errorf("artist: bar plot has %d labels and %d values", len(labels), len(values))
	}

	disc := a.colony.palette.Discrete()
	barData := make([]barchart.BarData, 0, len(labels))
	entries := make([]series, 0, len(labels))
	for i := range labels {
		color := disc.At(i)
		barData = append(barData, barchart.BarData{
			Label: labels[i],
			Values: []barchart.BarValue{{
				Name:  labels[i],
				Value: values[i],
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
			}},
		})
		entries = append(entries, series{name: labels[i], color: color, marker: runes.FullBlock})
	}

	bc := barchart.New(a.colony.cellWidth, a.colony.cellHeight,
		barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return a.decorate(bc.View(), o, entries), nil
}

// decorate wraps the rendered chart body with spines, title, axis labels
// and the legend, per the colony's configuration.
func (a *Artist) decorate(body string, o PlotOpts, groups []series) string {
	fs := a.colony.fontSize

	legend := ""
	if !o.HideLegend && len(groups) > 1 {
		legend = a.renderLegend(groups)
	}

	place := a.colony.legend.Place(len(groups))
	if legend != "" && !place.Outside {
		body = lipgloss.JoinVertical(lipgloss.Left, body, legend)
		legend = ""
	}

	d := a.colony.despine
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderTop(!d.Top).
		BorderLeft(!d.Left).
		BorderBottom(!d.Bottom).
		BorderRight(!d.Right).
		Render(body)

	if legend != "" {
		switch place.Loc {
		case params.LocLeft:
			box = lipgloss.JoinHorizontal(lipgloss.Center, legend, box)
		case params.LocTop:
			box = lipgloss.JoinVertical(lipgloss.Left, legend, box)
		case params.LocBottom:
			box = lipgloss.JoinVertical(lipgloss.Left, box, legend)
		default:
			box = lipgloss.JoinHorizontal(lipgloss.Center, box, legend)
		}
	}

	if o.YLabel != "" {
		box = lipgloss.JoinHorizontal(lipgloss.Center, verticalText(o.YLabel, fontStyle(fs.YLabel)), box)
	}
	if o.Title != "" {
		title := fontStyle(fs.Title).
			Width(lipgloss.Width(box)).
			Align(lipgloss.Center).
			Render(o.Title)
		box = lipgloss.JoinVertical(lipgloss.Left, title, box)
	}
	if o.XLabel != "" {
		xlabel := fontStyle(fs.XLabel).
			Width(lipgloss.Width(box)).
			Align(lipgloss.Center).
			Render(o.XLabel)
		box = lipgloss.JoinVertical(lipgloss.Left, box, xlabel)
	}
	return box
}

func (a *Artist) renderLegend(groups []series) string {
	var b strings.Builder
	style := fontStyle(a.colony.legend.FontSize)
	for i, s := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := style.Foreground(lipgloss.Color(s.color)).
			Render(fmt.Sprintf("%c %s", runes.FullBlock, s.name))
		b.WriteString(line)
	}
	return b.String()
}

func (a *Artist) axisStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(a.colony.palette.Discrete().At(0)))
}

func (a *Artist) labelStyle() lipgloss.Style {
	return fontStyle(a.colony.fontSize.XTicks)
}

// fontStyle maps a point size onto terminal emphasis: big fonts render bold,
// small fonts faint.
func fontStyle(size int) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch {
	case size >= 14:
		return s.Bold(true)
	case size <= 8:
		return s.Faint(true)
	default:
		return s
	}
}

func verticalText(text string, style lipgloss.Style) string {
	letters := make([]string, 0, len(text))
	for _, r := range text {
		letters = append(letters, string(r))
	}
	return style.Render(strings.Join(letters, "\n"))
}
