package palette

import (
	"cmp"
	"errors"
	"fmt"
	"image/color"

	pkgerrors "github.com/pkg/errors"

	"github.com/euxhenh/peasy/ops"
)

// ErrUnknownPreset is returned when a palette name is not in the built-in
// registry.
var ErrUnknownPreset = errors.New("palette: unknown preset")

// Resolve turns a palette specification into a Palette. Accepted shapes:
//
//   - *Palette: returned as-is
//   - string: built-in preset name, case-insensitive
//   - []string: flat list of hex colors
//   - []color.Color: flat list normalized to hex
//
// Any other shape fails.
func Resolve(spec any) (*Palette, error) {
	switch s := spec.(type) {
	case *Palette:
		return s, nil
	case string:
		p, ok := Preset(s)
		if !ok {
			return nil, pkgerrors.Wrapf(ErrUnknownPreset, "%q (have %v)", s, Names())
		}
		return p, nil
	case []string:
		return New(Spec{Colors: s})
	case []color.Color:
		d, err := NewDiscreteFromColors(s)
		if err != nil {
			return nil, err
		}
		return New(Spec{Discrete: d.Colors()})
	default:
		return nil, fmt.Errorf("palette: cannot resolve %T into a palette", spec)
	}
}

// Assign maps each hue value to a hex color. Float64 hues run through the
// continuous ramp after min-max normalization; integer and string hues are
// categorical and map through the cyclic discrete palette. ForceDiscrete
// treats float64 hues as categories too.
//
// Categorical assignment is stable: equal values always receive the same
// color, keyed by the rank of the value among the unique hues, not by the
// value's position in the input.
func (p *Palette) Assign(hues any, forceDiscrete bool) ([]string, error) {
	switch h := hues.(type) {
	case []float64:
		if forceDiscrete {
			return assignCategorical(p, h)
		}
		return p.Numeric(h), nil
	case []int:
		return assignCategorical(p, h)
	case []string:
		return assignCategorical(p, h)
	default:
		return nil, fmt.Errorf("palette: cannot assign colors to hues of type %T", hues)
	}
}

// Numeric maps float values through the continuous ramp after min-max
// normalization. A constant input maps everything to the ramp midpoint.
func (p *Palette) Numeric(values []float64) []string {
	if len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := make([]string, len(values))
	for i, v := range values {
		t := 0.5
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		out[i] = p.continuous.At(t)
	}
	return out
}

func assignCategorical[K cmp.Ordered](p *Palette, keys []K) ([]string, error) {
	_, groups, err := ops.GroupIndices(keys)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(keys))
	for rank, group := range groups {
		c := p.discrete.At(rank)
		for _, pos := range group {
			out[pos] = c
		}
	}
	return out, nil
}

// ForValues resolves spec and picks the view matching the hue dtype:
// float64 hues select the continuous ramp, anything else the discrete
// palette. The companion bool reports whether the continuous view was
// chosen.
func ForValues(values any, spec any) (*Palette, bool, error) {
	p, err := Resolve(spec)
	if err != nil {
		return nil, false, err
	}
	_, isFloat := values.([]float64)
	return p, isFloat, nil
}
