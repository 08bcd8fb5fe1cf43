// Package params normalizes heterogeneous style configuration input
// (scalars, maps, or already-typed records) into canonical immutable
// records: font sizes, despine flags, legend placement, markers and line
// styles.
package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"

	"github.com/euxhenh/peasy/ops"
)

// ErrUnknownField is returned when a map input carries a key the record
// does not recognize.
var ErrUnknownField = errors.New("params: unknown field")

// UnrecognizedConfigError reports an input whose type none of the accepted
// shapes of a validator can interpret.
type UnrecognizedConfigError struct {
	Config string
	Value  any
}

func (e *UnrecognizedConfigError) Error() string {
	return fmt.Sprintf("params: cannot interpret %T as %s config", e.Value, e.Config)
}

// FontSize holds per-element font sizes for a rendered chart.
type FontSize struct {
	Title  int
	XLabel int
	YLabel int
	XTicks int
	YTicks int
	Legend int
}

// DefaultFontSize broadcasts 12 to every field.
func DefaultFontSize() FontSize { return fontSizeAll(12) }

func fontSizeAll(n int) FontSize {
	return FontSize{Title: n, XLabel: n, YLabel: n, XTicks: n, YTicks: n, Legend: n}
}

// ValidateFontSize accepts a FontSize (returned unchanged), an int scalar
// (broadcast to all fields), or a map with a subset of the field names
// {title, xlabel, ylabel, xticks, yticks, legend}; omitted fields keep
// their defaults.
func ValidateFontSize(x any) (FontSize, error) {
	switch v := x.(type) {
	case FontSize:
		return v, nil
	case int:
		return fontSizeAll(v), nil
	case map[string]int:
		fs := DefaultFontSize()
		for k, size := range v {
			switch strings.ToLower(k) {
			case "title":
				fs.Title = size
			case "xlabel":
				fs.XLabel = size
			case "ylabel":
				fs.YLabel = size
			case "xticks":
				fs.XTicks = size
			case "yticks":
				fs.YTicks = size
			case "legend":
				fs.Legend = size
			default:
				return FontSize{}, fmt.Errorf("%w %q in font size config", ErrUnknownField, k)
			}
		}
		return fs, nil
	default:
		return FontSize{}, &UnrecognizedConfigError{Config: "font size", Value: x}
	}
}

// Despine marks which plot borders to remove.
type Despine struct {
	Top    bool
	Left   bool
	Bottom bool
	Right  bool
}

// ValidateDespine accepts a Despine (returned unchanged), a bool (true
// removes all four sides), a string over the characters {t,l,b,r} naming
// the sides to remove, or a map with a subset of the field names
// {top, left, bottom, right}.
func ValidateDespine(x any) (Despine, error) {
	switch v := x.(type) {
	case Despine:
		return v, nil
	case bool:
		return Despine{Top: v, Left: v, Bottom: v, Right: v}, nil
	case string:
		var d Despine
		for _, ch := range v {
			switch ch {
			case 't':
				d.Top = true
			case 'l':
				d.Left = true
			case 'b':
				d.Bottom = true
			case 'r':
				d.Right = true
			default:
				return Despine{}, fmt.Errorf("%w %q in despine config, want characters from tlbr", ErrUnknownField, string(ch))
			}
		}
		return d, nil
	case map[string]bool:
		var d Despine
		for k, on := range v {
			switch strings.ToLower(k) {
			case "top":
				d.Top = on
			case "left":
				d.Left = on
			case "bottom":
				d.Bottom = on
			case "right":
				d.Right = on
			default:
				return Despine{}, fmt.Errorf("%w %q in despine config", ErrUnknownField, k)
			}
		}
		return d, nil
	default:
		return Despine{}, &UnrecognizedConfigError{Config: "despine", Value: x}
	}
}

// Loc names the side of the axes a legend attaches to.
type Loc string

const (
	LocRight  Loc = "r"
	LocLeft   Loc = "l"
	LocTop    Loc = "t"
	LocBottom Loc = "b"
	LocBest   Loc = "best"
)

// Outside controls whether the legend sits outside the plotting area.
type Outside string

const (
	OutsideOn   Outside = "true"
	OutsideOff  Outside = "false"
	OutsideAuto Outside = "auto"
)

// DefaultAutoThresh is the entry count at which Outside "auto" resolves to
// true.
const DefaultAutoThresh = 5

// Legend configures legend placement.
type Legend struct {
	Loc        Loc
	Outside    Outside
	AutoThresh int
	FontSize   int
}

// DefaultLegend places the legend at the best inside location.
func DefaultLegend() Legend {
	return Legend{Loc: LocBest, Outside: OutsideAuto, AutoThresh: DefaultAutoThresh, FontSize: 12}
}

// Placement is the resolved legend position for a concrete entry count.
type Placement struct {
	Loc     Loc
	Outside bool
}

// ValidateLegend accepts a Legend (normalized and checked) or a
// map[string]any with a subset of the field names {loc, outside,
// auto_thresh, font_size}. Outside=true requires a directional Loc; "best"
// only exists inside the axes.
func ValidateLegend(x any) (Legend, error) {
	switch v := x.(type) {
	case Legend:
		return normalizeLegend(v)
	case map[string]any:
		l := DefaultLegend()
		for k, val := range v {
			switch strings.ToLower(k) {
			case "loc":
				s, ok := val.(string)
				if !ok {
					return Legend{}, fmt.Errorf("params: legend loc must be a string, got %T", val)
				}
				l.Loc = Loc(s)
			case "outside":
				switch o := val.(type) {
				case bool:
					l.Outside = OutsideOff
					if o {
						l.Outside = OutsideOn
					}
				case string:
					l.Outside = Outside(o)
				default:
					return Legend{}, fmt.Errorf("params: legend outside must be a bool or string, got %T", val)
				}
			case "auto_thresh":
				n, ok := val.(int)
				if !ok {
					return Legend{}, fmt.Errorf("params: legend auto_thresh must be an int, got %T", val)
				}
				l.AutoThresh = n
			case "font_size":
				n, ok := val.(int)
				if !ok {
					return Legend{}, fmt.Errorf("params: legend font_size must be an int, got %T", val)
				}
				l.FontSize = n
			default:
				return Legend{}, fmt.Errorf("%w %q in legend config", ErrUnknownField, k)
			}
		}
		return normalizeLegend(l)
	default:
		return Legend{}, &UnrecognizedConfigError{Config: "legend", Value: x}
	}
}

func normalizeLegend(l Legend) (Legend, error) {
	if l.AutoThresh <= 0 {
		l.AutoThresh = DefaultAutoThresh
	}
	if l.Outside == "" {
		l.Outside = OutsideAuto
	}
	if l.Loc == "" {
		l.Loc = LocBest
	}
	switch l.Loc {
	case LocRight, LocLeft, LocTop, LocBottom, LocBest:
	default:
		return Legend{}, fmt.Errorf("params: legend loc %q, want one of r, l, t, b, best", l.Loc)
	}
	switch l.Outside {
	case OutsideOn, OutsideOff, OutsideAuto:
	default:
		return Legend{}, fmt.Errorf("params: legend outside %q, want true, false or auto", l.Outside)
	}
	if l.Outside == OutsideOn && l.Loc == LocBest {
		return Legend{}, errors.New("params: legend outside=true requires a directional loc (r, l, t, b)")
	}
	return l, nil
}

// Place resolves the legend position for the given number of legend
// entries. Outside "auto" resolves to true when the entry count meets the
// threshold; the best location never moves outside.
func (l Legend) Place(entries int) Placement {
	out := false
	switch l.Outside {
	case OutsideOn:
		out = true
	case OutsideAuto:
		out = entries >= l.AutoThresh && l.Loc != LocBest
	}
	return Placement{Loc: l.Loc, Outside: out}
}

// Marker presets mirror the built-in marker sets: glyph sequences cycled
// across series.
var (
	MarkersSimple  = ops.MustCycle([]rune{'●', '■', '▲', '◆'})
	MarkersDistant = ops.MustCycle([]rune{'●', '✚', '▲', '✖'})
	MarkersShapes  = ops.MustCycle([]rune{'●', '○', '■', '□', '▲', '△', '◆', '◇'})
)

// ValidateMarkers accepts a marker cycle (returned unchanged), a preset
// name {none, simple, distant, shapes}, or a literal rune slice.
// A nil cycle means no markers.
func ValidateMarkers(x any) (*ops.Cycle[rune], error) {
	switch v := x.(type) {
	case *ops.Cycle[rune]:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "none":
			return nil, nil
		case "simple":
			return MarkersSimple, nil
		case "distant":
			return MarkersDistant, nil
		case "shapes":
			return MarkersShapes, nil
		default:
			return nil, fmt.Errorf("params: unknown marker preset %q, want none, simple, distant or shapes", v)
		}
	case []rune:
		return ops.NewCycle(v)
	default:
		return nil, &UnrecognizedConfigError{Config: "markers", Value: x}
	}
}

// LineStyles is the cycle of chart line rune styles assigned per series.
var LineStyles = ops.MustCycle([]runes.LineStyle{runes.ThinLineStyle, runes.ArcLineStyle})

// ValidateLineStyle maps a preset name to an ntcharts rune line style.
func ValidateLineStyle(name string) (runes.LineStyle, error) {
	switch strings.ToLower(name) {
	case "thin":
		return runes.ThinLineStyle, nil
	case "arc":
		return runes.ArcLineStyle, nil
	default:
		return runes.ThinLineStyle, fmt.Errorf("params: unknown line style %q, want thin or arc", name)
	}
}
