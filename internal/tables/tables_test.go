package tables

import (
	"strings"
	"testing"

	"github.com/euxhenh/peasy/palette"
)

func TestPalettesListsEveryPreset(t *testing.T) {
	m := Palettes()
	view := m.View()
	for _, name := range palette.Names() {
		if !strings.Contains(view, name) {
			t.Errorf("table view is missing palette %q", name)
		}
	}
}

func TestSwatchCapsColors(t *testing.T) {
	p, _ := palette.Preset(palette.GiveMeAll)
	s := Swatch(p, 5)
	if got := strings.Count(s, "█"); got != 10 {
		t.Errorf("Swatch(5) rendered %d blocks, want 10", got)
	}
}
