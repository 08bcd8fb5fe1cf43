package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/euxhenh/peasy/internal/tui"
	"github.com/euxhenh/peasy/palette"
)

type ShowCmd struct {
	Name string `arg:"" name:"name" help:"Built-in palette name, e.g. cozy." required:"true"`
}

func (s *ShowCmd) Run(ctx *Context) error {
	ctx.setup()

	p, err := palette.Resolve(s.Name)
	if err != nil {
		return err
	}
	log.WithField("palette", s.Name).Debug("resolved palette")

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 64
	}

	fmt.Println(tui.TitleStyle.Render(s.Name))
	fmt.Println(tui.Swatches(p))
	fmt.Println(tui.Ramp(p, width-2))
	return nil
}
