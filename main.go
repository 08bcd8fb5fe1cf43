package main

import (
	"github.com/alecthomas/kong"

	"github.com/euxhenh/peasy/internal/commands"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("peasy"),
		kong.Description("Consistently styled terminal charts with less boilerplate."),
	)
	err := ctx.Run(&commands.Context{Verbose: commands.Cli.Verbose})
	ctx.FatalIfErrorf(err)
}
