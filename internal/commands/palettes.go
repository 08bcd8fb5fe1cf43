package commands

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/euxhenh/peasy/internal/tables"
	"github.com/euxhenh/peasy/palette"
)

type PalettesCmd struct {
	Output string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (p *PalettesCmd) Run(ctx *Context) error {
	ctx.setup()

	switch p.Output {
	case "table":
		if _, err := tea.NewProgram(tables.Palettes()).Run(); err != nil {
			return pkgerrors.Wrap(err, "palette table")
		}
	case "json":
		out, err := json.MarshalIndent(massagePalettes(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(massagePalettes())
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func massagePalettes() map[string][]string {
	out := make(map[string][]string, len(palette.Names()))
	for _, name := range palette.Names() {
		p, _ := palette.Preset(name)
		out[name] = p.Discrete().Colors()
	}
	return out
}
