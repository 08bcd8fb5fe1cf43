package commands

import (
	"fmt"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/euxhenh/peasy/artist"
	"github.com/euxhenh/peasy/data"
)

type DemoCmd struct {
	Line    DemoLineCmd    `cmd:"" help:"Render a grid of line charts."`
	Scatter DemoScatterCmd `cmd:"" help:"Render a grid of scatter charts."`
	Bar     DemoBarCmd     `cmd:"" help:"Render a bar chart."`
}

type demoFlags struct {
	Palette string `help:"Palette preset to style the series with." default:"cozy"`
	Despine string `help:"Spines to remove, characters from tlbr." default:"tr"`
	Markers string `help:"Marker preset: none, simple, distant or shapes." default:"simple"`
	Ncols   int    `help:"Grid columns; 0 fits the terminal width." default:"0"`
	Charts  int    `help:"Number of charts to queue." default:"4"`
}

func (d *demoFlags) colony() (*artist.Colony, error) {
	return artist.NewColony(artist.Config{
		CellWidth:  40,
		CellHeight: 12,
		Palette:    d.Palette,
		Despine:    d.Despine,
		Markers:    d.Markers,
	})
}

// ncols fits the grid to the terminal when the flag is unset.
func (d *demoFlags) ncols(cellWidth int) int {
	if d.Ncols > 0 {
		return d.Ncols
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 2
	}
	n := width / (cellWidth + 4)
	if n < 1 {
		n = 1
	}
	return n
}

type DemoLineCmd struct {
	demoFlags
}

func (d *DemoLineCmd) Run(ctx *Context) error {
	ctx.setup()

	colony, err := d.colony()
	if err != nil {
		return err
	}
	m := colony.MultiArtist()
	for i := 0; i < d.Charts; i++ {
		f, err := waves(i + 2)
		if err != nil {
			return err
		}
		m.Line(f, artist.PlotOpts{
			Title: fmt.Sprintf("waves %d", i+1),
			Hue:   "hue",
		})
	}
	log.WithField("queued", m.Len()).Debug("rendering line grid")

	out, err := m.Show(d.ncols(40), 0)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

type DemoScatterCmd struct {
	demoFlags
}

func (d *DemoScatterCmd) Run(ctx *Context) error {
	ctx.setup()

	colony, err := d.colony()
	if err != nil {
		return err
	}
	m := colony.MultiArtist()
	for i := 0; i < d.Charts; i++ {
		f, err := clusters(i + 2)
		if err != nil {
			return err
		}
		m.Scatter(f, artist.PlotOpts{
			Title: fmt.Sprintf("clusters %d", i+1),
			Hue:   "hue",
		})
	}

	out, err := m.Show(d.ncols(40), 0)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

type DemoBarCmd struct {
	demoFlags
}

func (d *DemoBarCmd) Run(ctx *Context) error {
	ctx.setup()

	colony, err := d.colony()
	if err != nil {
		return err
	}
	f, err := data.NewFrame(
		data.S("x", "mon", "tue", "wed", "thu", "fri"),
		data.F("y", 3, 7, 2, 5, 8),
	)
	if err != nil {
		return err
	}
	out, err := colony.Artist().Bar(f, artist.PlotOpts{Title: "sessions"})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// waves builds n phase-shifted sine series sharing an x range.
func waves(n int) (*data.Frame, error) {
	const points = 48
	frames := make([]*data.Frame, 0, n)
	for s := 0; s < n; s++ {
		xs := make([]float64, points)
		ys := make([]float64, points)
		for i := 0; i < points; i++ {
			xs[i] = float64(i)
			ys[i] = math.Sin(float64(i)/6 + float64(s))
		}
		f, err := data.NewFrame(
			data.F("x", xs...),
			data.F("y", ys...),
			data.S("hue", tagRow(fmt.Sprintf("wave %d", s+1), points)...),
		)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return data.Combined(frames, false)
}

// clusters builds n point clouds centered along the diagonal.
func clusters(n int) (*data.Frame, error) {
	const points = 30
	frames := make([]*data.Frame, 0, n)
	for s := 0; s < n; s++ {
		xs := make([]float64, points)
		ys := make([]float64, points)
		cx, cy := float64(s*10), float64(s*10)
		for i := 0; i < points; i++ {
			// Deterministic jitter keeps the demo reproducible.
			xs[i] = cx + 4*math.Sin(float64(i*7+s))
			ys[i] = cy + 4*math.Cos(float64(i*13+s))
		}
		f, err := data.NewFrame(
			data.F("x", xs...),
			data.F("y", ys...),
			data.S("hue", tagRow(fmt.Sprintf("cluster %d", s+1), points)...),
		)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return data.Combined(frames, false)
}

func tagRow(tag string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = tag
	}
	return out
}
