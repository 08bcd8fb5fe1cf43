// Package tables renders the built-in palette listing as an interactive,
// filterable table.
package tables

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/euxhenh/peasy/palette"
)

const maxSwatchColors = 20

type Model struct {
	table           table.Model
	filterTextInput textinput.Model
}

// Palettes builds a table model listing every built-in palette with a
// color swatch per row.
func Palettes() Model {
	longestName := 0
	rows := make([]table.Row, 0)
	for _, name := range palette.Names() {
		p, _ := palette.Preset(name)
		if len(name) > longestName {
			longestName = len(name)
		}
		rows = append(rows, table.NewRow(table.RowData{
			"name":   name,
			"colors": p.Discrete().Len(),
			"swatch": Swatch(p, maxSwatchColors),
		}))
	}

	columns := []table.Column{
		table.NewColumn("name", "Name", max(longestName+1, 6)).WithFiltered(true),
		table.NewColumn("colors", "Colors", 8),
		table.NewColumn("swatch", "Swatch", 2*maxSwatchColors+2),
	}

	return Model{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}
}

// Swatch renders one block pair per discrete color, capped at n colors.
func Swatch(p *palette.Palette, n int) string {
	if p.Discrete().Len() < n {
		n = p.Discrete().Len()
	}
	var b strings.Builder
	for _, c := range p.Discrete().Take(n) {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██"))
	}
	return b.String()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
