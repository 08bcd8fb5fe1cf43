package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/euxhenh/peasy/palette"
)

func TestBrowserCyclesPalettes(t *testing.T) {
	b := NewBrowser()
	n := len(palette.Names())

	m, _ := b.Update(tea.KeyMsg{Type: tea.KeyRight})
	b = m.(Browser)
	if b.selected != 1 {
		t.Errorf("selected after right = %d, want 1", b.selected)
	}

	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyLeft})
	b = m.(Browser)
	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyLeft})
	b = m.(Browser)
	if b.selected != n-1 {
		t.Errorf("selected after wrapping left = %d, want %d", b.selected, n-1)
	}
}

func TestBrowserViewNamesSelection(t *testing.T) {
	b := NewBrowser()
	if !strings.Contains(b.View(), palette.Names()[0]) {
		t.Error("browser view is missing the selected palette name")
	}
}

func TestRampWidth(t *testing.T) {
	p, _ := palette.Preset(palette.Cozy)
	if got := strings.Count(Ramp(p, 10), "█"); got != 10 {
		t.Errorf("Ramp(10) rendered %d cells, want 10", got)
	}
}
