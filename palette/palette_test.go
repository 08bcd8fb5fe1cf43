package palette

import (
	"errors"
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNewDiscreteRejectsBadHex(t *testing.T) {
	tests := []string{"4477AA", "#GGHHII", "#12345", "#1234567", "red", ""}
	for _, bad := range tests {
		if _, err := NewDiscrete([]string{bad}); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("NewDiscrete(%q) err = %v, want ErrInvalidColor", bad, err)
		}
	}
}

func TestNewDiscreteAcceptsShortAndLongHex(t *testing.T) {
	d, err := NewDiscrete([]string{"#abc", "#AABBCC", "#123456"})
	if err != nil {
		t.Fatalf("NewDiscrete returned error: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
}

func TestDiscreteCycles(t *testing.T) {
	d, err := NewDiscrete([]string{"#111111", "#222222", "#333333"})
	if err != nil {
		t.Fatalf("NewDiscrete returned error: %v", err)
	}
	if got := d.At(4); got != "#222222" {
		t.Errorf("At(4) = %q, want %q", got, "#222222")
	}
	if got := d.At(-1); got != "#333333" {
		t.Errorf("At(-1) = %q, want %q", got, "#333333")
	}
	want := []string{"#111111", "#222222", "#333333", "#111111", "#222222"}
	if got := d.Take(5); !reflect.DeepEqual(got, want) {
		t.Errorf("Take(5) = %v, want %v", got, want)
	}
}

func TestNewDiscreteFromColors(t *testing.T) {
	d, err := NewDiscreteFromColors([]color.Color{
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
	})
	if err != nil {
		t.Fatalf("NewDiscreteFromColors returned error: %v", err)
	}
	want := []string{"#ff0000", "#00ff00"}
	if got := d.Colors(); !reflect.DeepEqual(got, want) {
		t.Errorf("Colors() = %v, want %v", got, want)
	}
}

func TestContinuousEndpoints(t *testing.T) {
	c, err := NewContinuous([]string{"#000000", "#ffffff"}, 256)
	if err != nil {
		t.Fatalf("NewContinuous returned error: %v", err)
	}
	if got := c.At(0); got != "#000000" {
		t.Errorf("At(0) = %q, want #000000", got)
	}
	if got := c.At(1); got != "#ffffff" {
		t.Errorf("At(1) = %q, want #ffffff", got)
	}
	// Out-of-range values clamp.
	if got := c.At(-3); got != "#000000" {
		t.Errorf("At(-3) = %q, want #000000", got)
	}
	if got := c.At(2); got != "#ffffff" {
		t.Errorf("At(2) = %q, want #ffffff", got)
	}
}

func TestContinuousMidpointIsBlend(t *testing.T) {
	c, err := NewContinuous([]string{"#000000", "#ffffff"}, 257)
	if err != nil {
		t.Fatalf("NewContinuous returned error: %v", err)
	}
	mid, err := colorful.Hex(c.At(0.5))
	if err != nil {
		t.Fatalf("At(0.5) returned invalid hex: %v", err)
	}
	if math.Abs(mid.R-0.5) > 0.01 || math.Abs(mid.G-0.5) > 0.01 || math.Abs(mid.B-0.5) > 0.01 {
		t.Errorf("At(0.5) = %v, want mid grey", mid)
	}
}

func TestNewRequiresSomeSpec(t *testing.T) {
	if _, err := New(Spec{}); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("New(empty) err = %v, want ErrEmptySpec", err)
	}
}

func TestDerivationRoundTrip(t *testing.T) {
	// A smooth grey ramp keeps adjacent anchors close, so the truncating
	// step size in the discrete-from-continuous derivation stays within
	// interpolation tolerance of the original anchors.
	anchors := []string{
		"#000000", "#202020", "#404040", "#606060", "#808080",
		"#a0a0a0", "#c0c0c0", "#e0e0e0", "#ffffff",
	}
	p, err := New(Spec{Discrete: anchors})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	second, err := New(Spec{
		Continuous:  anchors,
		DiscreteN:   len(anchors),
		ContinuousN: p.Continuous().Len(),
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	got := second.Discrete().Colors()
	if len(got) != len(anchors) {
		t.Fatalf("re-derived %d colors, want %d", len(got), len(anchors))
	}
	for i, want := range anchors {
		wc, _ := colorful.Hex(want)
		gc, err := colorful.Hex(got[i])
		if err != nil {
			t.Fatalf("derived color %q invalid: %v", got[i], err)
		}
		if wc.DistanceRgb(gc) > 0.25 {
			t.Errorf("color %d = %q, want within tolerance of %q", i, got[i], want)
		}
	}
}

func TestDiscreteFromContinuousStepTruncation(t *testing.T) {
	// 256 steps sampled 10 times: step = 255/10 = 25, so the last sample
	// sits at ramp index 225, short of the end. That truncation is the
	// documented behavior.
	p, err := New(Spec{Continuous: []string{"#000000", "#ffffff"}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	colors := p.Discrete().Colors()
	if len(colors) != DefaultDiscreteN {
		t.Fatalf("derived %d colors, want %d", len(colors), DefaultDiscreteN)
	}
	if colors[len(colors)-1] == "#ffffff" {
		t.Errorf("last sample = #ffffff, expected truncation to stop short of the ramp end")
	}
}

func TestPresetLookup(t *testing.T) {
	for _, name := range []string{Cozy, Cherry, Vintage, Warpped, Office, Monochrome, GiveMeAll} {
		p, ok := Preset(name)
		if !ok {
			t.Errorf("Preset(%q) not found", name)
			continue
		}
		if p.Discrete().Len() == 0 {
			t.Errorf("Preset(%q) has empty discrete palette", name)
		}
		if p.Continuous().Len() == 0 {
			t.Errorf("Preset(%q) has empty continuous ramp", name)
		}
	}
}

func TestPresetLookupIsCaseInsensitive(t *testing.T) {
	if _, ok := Preset("cozy"); !ok {
		t.Error(`Preset("cozy") not found, lookup should be case-insensitive`)
	}
	if _, ok := Preset("Warped"); !ok {
		t.Error(`Preset("Warped") not found, alias for WARPPED should resolve`)
	}
}

func TestGiveMeAllConcatenates(t *testing.T) {
	all, _ := Preset(GiveMeAll)
	total := 0
	for _, name := range []string{Cozy, Cherry, Vintage, Warpped, Office, Monochrome} {
		p, _ := Preset(name)
		total += p.Discrete().Len()
	}
	if all.Discrete().Len() != total {
		t.Errorf("GIVE_ME_ALL has %d colors, want %d", all.Discrete().Len(), total)
	}
}
