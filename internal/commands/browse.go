package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	pkgerrors "github.com/pkg/errors"

	"github.com/euxhenh/peasy/internal/tui"
)

type BrowseCmd struct{}

func (b *BrowseCmd) Run(ctx *Context) error {
	ctx.setup()

	if _, err := tea.NewProgram(tui.NewBrowser()).Run(); err != nil {
		return pkgerrors.Wrap(err, "palette browser")
	}
	return nil
}
