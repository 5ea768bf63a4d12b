package main

import (
	"os"

	"github.com/paragon0107/notive/metal/cli/commands"
	"github.com/paragon0107/notive/pkg/cli"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		cli.NewPrinter(os.Stderr).Errorln("error: " + err.Error())
		os.Exit(1)
	}
}
