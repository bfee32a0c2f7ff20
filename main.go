package main

import (
	"os"

	"github.com/alecthomas/kong"

	"droscher.com/BuzzLog/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("BuzzLog"), kong.Description("BuzzLog keeps track of what you drink and how it adds up against a weekly limit."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug, Stdout: os.Stdout})
	ctx.FatalIfErrorf(err)
}
