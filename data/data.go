// Package data assembles column-oriented records for handing to the chart
// layer: ordered column names mapped to equal-length series.
package data

import (
	"fmt"
	"strconv"

	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/euxhenh/peasy/validate"
)

// IndexColumn is the column Combined adds to tag each frame's ordinal.
const IndexColumn = "index"

// Column is one named series of a Frame.
type Column interface {
	Len() int
	empty() Column
	appendFrom(other Column) (Column, error)
}

// Floats is a numeric column.
type Floats []float64

func (f Floats) Len() int { return len(f) }
func (f Floats) empty() Column { return Floats(nil) }
func (f Floats) appendFrom(other Column) (Column, error) {
	o, ok := other.(Floats)
	if !ok {
		return nil, fmt.Errorf("data: cannot combine Floats with %T", other)
	}
	return append(f, o...), nil
}

// Strings is a categorical column.
type Strings []string

func (s Strings) Len() int { return len(s) }
func (s Strings) empty() Column { return Strings(nil) }
func (s Strings) appendFrom(other Column) (Column, error) {
	o, ok := other.(Strings)
	if !ok {
		return nil, fmt.Errorf("data: cannot combine Strings with %T", other)
	}
	return append(s, o...), nil
}

// Col pairs a column name with its values, for Frame construction.
type Col struct {
	Name   string
	Values Column
}

// F is shorthand for a float column.
func F(name string, values ...float64) Col { return Col{Name: name, Values: Floats(values)} }

// S is shorthand for a string column.
func S(name string, values ...string) Col { return Col{Name: name, Values: Strings(values)} }

// Frame is an ordered set of named, equal-length columns.
type Frame struct {
	names   []string
	columns map[string]Column
}

// NewFrame builds a frame from columns, which must agree in length and have
// distinct names.
func NewFrame(cols ...Col) (*Frame, error) {
	lengths := make([]any, 0, len(cols))
	for _, c := range cols {
		switch v := c.Values.(type) {
		case Floats:
			lengths = append(lengths, []float64(v))
		case Strings:
			lengths = append(lengths, []string(v))
		}
	}
	if err := validate.SameLength(lengths...); err != nil {
		return nil, pkgerrors.Wrap(err, "data: frame columns")
	}

	f := &Frame{columns: make(map[string]Column, len(cols))}
	for _, c := range cols {
		if _, dup := f.columns[c.Name]; dup {
			return nil, fmt.Errorf("data: duplicate column %q", c.Name)
		}
		f.names = append(f.names, c.Name)
		f.columns[c.Name] = c.Values
	}
	return f, nil
}

// Names returns the column names in insertion order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the row count.
func (f *Frame) Len() int {
	if len(f.names) == 0 {
		return 0
	}
	return f.columns[f.names[0]].Len()
}

// Column looks up a column by name.
func (f *Frame) Column(name string) (Column, bool) {
	c, ok := f.columns[name]
	return c, ok
}

// Floats returns the named column as floats.
func (f *Frame) Floats(name string) (Floats, error) {
	c, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("data: no column %q", name)
	}
	v, ok := c.(Floats)
	if !ok {
		return nil, fmt.Errorf("data: column %q is %T, not Floats", name, c)
	}
	return v, nil
}

// Strings returns the named column as strings.
func (f *Frame) Strings(name string) (Strings, error) {
	c, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("data: no column %q", name)
	}
	v, ok := c.(Strings)
	if !ok {
		return nil, fmt.Errorf("data: column %q is %T, not Strings", name, c)
	}
	return v, nil
}

func (f *Frame) String() string {
	s := "Frame("
	for i, name := range f.names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s:%T", name, f.columns[name])
	}
	return s + ")"
}

// Combined concatenates frames row-wise. Frames must share column names and
// types. When withIndex is set and a frame lacks an "index" column, its rows
// are tagged with the frame's ordinal so hues can distinguish sources.
func Combined(frames []*Frame, withIndex bool) (*Frame, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("data: no frames to combine")
	}

	names := frames[0].Names()
	hasIndex := false
	for _, n := range names {
		if n == IndexColumn {
			hasIndex = true
		}
	}
	if withIndex && !hasIndex {
		names = append(names, IndexColumn)
	}

	acc := make(map[string]Column, len(names))
	for i, f := range frames {
		for _, name := range names {
			col, ok := f.columns[name]
			if !ok {
				if name != IndexColumn {
					return nil, fmt.Errorf("data: frame %d is missing column %q", i, name)
				}
				col = Strings(tagged(strconv.Itoa(i), f.Len()))
			}
			if acc[name] == nil {
				acc[name] = col.empty()
			}
			var err error
			if acc[name], err = acc[name].appendFrom(col); err != nil {
				return nil, pkgerrors.Wrapf(err, "column %q", name)
			}
		}
	}

	cols := make([]Col, 0, len(names))
	for _, name := range names {
		cols = append(cols, Col{Name: name, Values: acc[name]})
	}
	return NewFrame(cols...)
}

func tagged(tag string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = tag
	}
	return out
}

// IsAtomic reports whether v is a scalar. Sequences report false; anything
// else is neither and is handled per onOther: "raise" returns an error,
// "warn" logs and reports false.
func IsAtomic(v any, onOther string) (bool, error) {
	switch v.(type) {
	case int, int64, float64, float32, string, bool:
		return true, nil
	case Floats, Strings, []float64, []string, []int:
		return false, nil
	}
	msg := fmt.Sprintf("data: %T is not atomic and has no length", v)
	switch onOther {
	case "raise":
		return false, fmt.Errorf("%s", msg)
	case "warn":
		log.Warn(msg)
		return false, nil
	default:
		return false, fmt.Errorf("data: could not understand onOther=%q", onOther)
	}
}
