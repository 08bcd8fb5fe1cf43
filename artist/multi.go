package artist

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	pkgerrors "github.com/pkg/errors"

	"github.com/euxhenh/peasy/data"
	"github.com/euxhenh/peasy/validate"
)

// Sketch is one queued chart: the draw call with its arguments, deferred
// until Show lays out the grid.
type Sketch struct {
	Kind  string
	Frame *data.Frame
	Opts  PlotOpts

	draw func() (string, error)
}

// MultiArtist queues charts and renders them all at once as a grid. The
// embedded Artist methods are shadowed by queueing variants.
type MultiArtist struct {
	Artist
	queue []Sketch
}

// Len returns the number of queued sketches.
func (m *MultiArtist) Len() int { return len(m.queue) }

// Queue returns the queued sketches.
func (m *MultiArtist) Queue() []Sketch { return m.queue }

// ClearQueue removes all queued sketches.
func (m *MultiArtist) ClearQueue() { m.queue = m.queue[:0] }

// Line queues a line chart.
func (m *MultiArtist) Line(f *data.Frame, o PlotOpts) {
	m.queue = append(m.queue, Sketch{
		Kind: "line", Frame: f, Opts: o,
		draw: func() (string, error) { return m.Artist.Line(f, o) },
	})
}

// Scatter queues a scatter chart.
func (m *MultiArtist) Scatter(f *data.Frame, o PlotOpts) {
	m.queue = append(m.queue, Sketch{
		Kind: "scatter", Frame: f, Opts: o,
		draw: func() (string, error) { return m.Artist.Scatter(f, o) },
	})
}

// Bar queues a bar chart.
func (m *MultiArtist) Bar(f *data.Frame, o PlotOpts) {
	m.queue = append(m.queue, Sketch{
		Kind: "bar", Frame: f, Opts: o,
		draw: func() (string, error) { return m.Artist.Bar(f, o) },
	})
}

// Show renders every queued sketch and lays the results out as a grid.
// Exactly one of ncols and nrows must be set; the other is derived from the
// queue length. Cells past the end of the queue are left empty.
func (m *MultiArtist) Show(ncols, nrows int) (string, error) {
	if _, err := validate.ExactlyOne(ncols, nrows); err != nil {
		return "", pkgerrors.Wrap(err, "ncols/nrows")
	}
	if m.Len() == 0 {
		return "", nil
	}
	if nrows == 0 {
		nrows = int(math.Ceil(float64(m.Len()) / float64(ncols)))
	} else {
		ncols = int(math.Ceil(float64(m.Len()) / float64(nrows)))
	}

	rows := make([]string, 0, nrows)
	for r := 0; r < nrows; r++ {
		cells := make([]string, 0, ncols)
		for c := 0; c < ncols; c++ {
			i := r*ncols + c
			if i >= m.Len() {
				break
			}
			cell, err := m.queue[i].draw()
			if err != nil {
				return "", pkgerrors.Wrapf(err, "sketch %d (%s)", i, m.queue[i].Kind)
			}
			cells = append(cells, cell)
		}
		if len(cells) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), nil
}
