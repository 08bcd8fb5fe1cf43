// Package tui holds the interactive palette browser and the styles shared
// across TUI components.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/euxhenh/peasy/palette"
)

// Browser cycles through the built-in palettes with the arrow keys, showing
// each palette's discrete swatches and continuous ramp.
type Browser struct {
	names    []string
	selected int
	width    int
}

func NewBrowser() Browser {
	return Browser{names: palette.Names(), width: 64}
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			b.width = msg.Width - 4
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "left", "h":
			b.selected = (b.selected + len(b.names) - 1) % len(b.names)
		case "right", "l", "tab":
			b.selected = (b.selected + 1) % len(b.names)
		}
	}
	return b, nil
}

func (b Browser) View() string {
	name := b.names[b.selected]
	p, _ := palette.Preset(name)

	var body strings.Builder
	body.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d/%d)", name, b.selected+1, len(b.names))))
	body.WriteString("\n\n")
	body.WriteString(Swatches(p))
	body.WriteString("\n")
	body.WriteString(Ramp(p, b.width))
	body.WriteString("\n\n")
	body.WriteString(HelpStyle.Render("←/→ to switch palettes, q to quit"))
	return body.String()
}

// Swatches renders every discrete color of p as a labeled block row.
func Swatches(p *palette.Palette) string {
	var b strings.Builder
	for i, c := range p.Discrete().Colors() {
		if i > 0 && i%8 == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("███ "))
	}
	return b.String()
}

// Ramp samples the continuous view across width cells.
func Ramp(p *palette.Palette, width int) string {
	if width < 1 {
		width = 1
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := p.Continuous().At(t)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("█"))
	}
	return b.String()
}
