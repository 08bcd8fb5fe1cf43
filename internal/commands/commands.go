// Package commands implements the peasy CLI: palette listing and preview,
// and demo chart rendering.
package commands

import (
	log "github.com/sirupsen/logrus"
)

// Context carries flags shared by every command.
type Context struct {
	Verbose bool
}

var Cli struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Palettes PalettesCmd `cmd:"" help:"List the built-in palettes."`
	Show     ShowCmd     `cmd:"" help:"Render a palette's swatches and continuous ramp."`
	Demo     DemoCmd     `cmd:"" help:"Render demo charts in a grid."`
	Browse   BrowseCmd   `cmd:"" help:"Interactively browse the built-in palettes."`
}

func (c *Context) setup() {
	if c.Verbose {
		log.SetLevel(log.DebugLevel)
	}
}
