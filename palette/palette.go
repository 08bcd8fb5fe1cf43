// Package palette resolves user-supplied color specifications into validated
// discrete palettes and continuous interpolated ramps, and assigns per-series
// colors from hue values.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
	pkgerrors "github.com/pkg/errors"

	"github.com/euxhenh/peasy/ops"
)

// ErrInvalidColor is returned for color strings that do not match the hex
// grammar `#` followed by 3 or 6 hex digits.
var ErrInvalidColor = errors.New("palette: invalid color")

// ErrEmptySpec is returned when a Palette is constructed with no discrete
// anchors, no continuous anchors and no flat color list.
var ErrEmptySpec = errors.New("palette: at least one of discrete, continuous or flat colors must be set")

var hexRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

const (
	// DefaultContinuousN is the default ramp resolution (c_n).
	DefaultContinuousN = 256
	// DefaultDiscreteN is the default number of colors sampled from a ramp
	// when deriving a discrete palette (d_n).
	DefaultDiscreteN = 10
)

// Discrete is a cyclic sequence of validated hex color strings.
type Discrete struct {
	cycle *ops.Cycle[string]
}

// NewDiscrete validates colors against the hex grammar and returns a cyclic
// palette over them.
func NewDiscrete(colors []string) (*Discrete, error) {
	for _, c := range colors {
		if !hexRe.MatchString(c) {
			return nil, pkgerrors.Wrapf(ErrInvalidColor, "%q", c)
		}
	}
	cycle, err := ops.NewCycle(colors)
	if err != nil {
		return nil, err
	}
	return &Discrete{cycle: cycle}, nil
}

// NewDiscreteFromColors normalizes arbitrary color.Color values to hex via
// go-colorful before building the palette.
func NewDiscreteFromColors(colors []color.Color) (*Discrete, error) {
	hexes := make([]string, 0, len(colors))
	for _, c := range colors {
		cf, ok := colorful.MakeColor(c)
		if !ok {
			return nil, pkgerrors.Wrapf(ErrInvalidColor, "%v has zero alpha", c)
		}
		hexes = append(hexes, cf.Hex())
	}
	return NewDiscrete(hexes)
}

// Len returns the number of distinct colors in one cycle.
func (d *Discrete) Len() int { return d.cycle.Len() }

// At returns the hex color at index i, wrapping modulo the palette length.
func (d *Discrete) At(i int) string { return d.cycle.At(i) }

// Colors returns one full period of the palette.
func (d *Discrete) Colors() []string { return d.cycle.Values() }

// Take resolves the first n colors, wrapping as needed.
func (d *Discrete) Take(n int) []string { return d.cycle.Slice(0, n, 1) }

// Continuous is a fixed-resolution color ramp interpolated between a small
// set of anchor colors, looked up by a normalized float in [0, 1].
type Continuous struct {
	ramp []colorful.Color
}

// NewContinuous blends the anchor colors into a ramp of the given number of
// steps. Anchors must match the hex grammar. steps <= 0 selects
// DefaultContinuousN; a single anchor yields a constant ramp.
func NewContinuous(anchors []string, steps int) (*Continuous, error) {
	if len(anchors) == 0 {
		return nil, ops.ErrEmptySequence
	}
	if steps <= 0 {
		steps = DefaultContinuousN
	}
	parsed := make([]colorful.Color, len(anchors))
	for i, a := range anchors {
		if !hexRe.MatchString(a) {
			return nil, pkgerrors.Wrapf(ErrInvalidColor, "%q", a)
		}
		c, err := colorful.Hex(a)
		if err != nil {
			return nil, pkgerrors.Wrapf(ErrInvalidColor, "%q", a)
		}
		parsed[i] = c
	}

	ramp := make([]colorful.Color, steps)
	if len(parsed) == 1 || steps == 1 {
		for i := range ramp {
			ramp[i] = parsed[0]
		}
		return &Continuous{ramp: ramp}, nil
	}
	for i := range ramp {
		t := float64(i) / float64(steps-1)
		x := t * float64(len(parsed)-1)
		j := int(x)
		if j >= len(parsed)-1 {
			ramp[i] = parsed[len(parsed)-1]
			continue
		}
		ramp[i] = parsed[j].BlendRgb(parsed[j+1], x-float64(j))
	}
	return &Continuous{ramp: ramp}, nil
}

// Len returns the ramp resolution.
func (c *Continuous) Len() int { return len(c.ramp) }

// At returns the hex color at position t in [0, 1]. Out-of-range values
// clamp to the ramp ends.
func (c *Continuous) At(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	i := int(t * float64(len(c.ramp)-1))
	return c.ramp[i].Hex()
}

// Map applies At to every element of ts.
func (c *Continuous) Map(ts []float64) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = c.At(t)
	}
	return out
}

// sample picks n colors at evenly spaced steps along the ramp. The step is
// (len-1)/n with integer division, so the last anchor may be reached early
// or missed entirely. That truncation is part of the contract.
func (c *Continuous) sample(n int) []string {
	step := (len(c.ramp) - 1) / n
	if step < 1 {
		step = 1
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := i * step
		if idx >= len(c.ramp) {
			idx = len(c.ramp) - 1
		}
		out = append(out, c.ramp[idx].Hex())
	}
	return out
}

// Spec describes how to build a Palette. At least one of Discrete,
// Continuous or Colors must be non-empty.
type Spec struct {
	// Discrete lists the hex colors of the discrete view.
	Discrete []string
	// Continuous lists the anchor hex colors of the continuous ramp.
	Continuous []string
	// Colors is a flat list used for both views when the two above are empty.
	Colors []string
	// DiscreteN (d_n) is the number of colors sampled when deriving the
	// discrete view from the ramp. Zero selects DefaultDiscreteN.
	DiscreteN int
	// ContinuousN (c_n) is the ramp resolution. Zero selects DefaultContinuousN.
	ContinuousN int
}

// Palette owns one discrete and one continuous view of the same colors.
// Whichever view the Spec omits is derived from the other.
type Palette struct {
	discrete   *Discrete
	continuous *Continuous
}

// New builds a Palette from spec. Construction either fully succeeds or
// fails before any view is observable.
func New(spec Spec) (*Palette, error) {
	dn := spec.DiscreteN
	if dn <= 0 {
		dn = DefaultDiscreteN
	}
	cn := spec.ContinuousN
	if cn <= 0 {
		cn = DefaultContinuousN
	}

	discAnchors := spec.Discrete
	contAnchors := spec.Continuous
	if len(discAnchors) == 0 && len(contAnchors) == 0 {
		if len(spec.Colors) == 0 {
			return nil, ErrEmptySpec
		}
		discAnchors = spec.Colors
	}

	p := &Palette{}
	var err error
	if len(discAnchors) > 0 {
		if p.discrete, err = NewDiscrete(discAnchors); err != nil {
			return nil, err
		}
	}
	if len(contAnchors) > 0 {
		if p.continuous, err = NewContinuous(contAnchors, cn); err != nil {
			return nil, err
		}
	}

	// Derive the missing view from the one given.
	if p.continuous == nil {
		if p.continuous, err = NewContinuous(p.discrete.Colors(), cn); err != nil {
			return nil, err
		}
	}
	if p.discrete == nil {
		if p.discrete, err = NewDiscrete(p.continuous.sample(dn)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew is New for trusted built-in palettes. It panics on error.
func MustNew(spec Spec) *Palette {
	p, err := New(spec)
	if err != nil {
		panic(fmt.Sprintf("palette: bad built-in spec: %v", err))
	}
	return p
}

// Discrete returns the cyclic discrete view.
func (p *Palette) Discrete() *Discrete { return p.discrete }

// Continuous returns the interpolated ramp view.
func (p *Palette) Continuous() *Continuous { return p.continuous }
