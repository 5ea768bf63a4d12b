package main

import (
	"log/slog"
	"os"

	"github.com/paragon0107/notive/metal/kernel"
	"github.com/paragon0107/notive/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("bootstrapping error > " + err.Error())
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic(err.Error())
	}
}

func main() {
	err := app.Serve()
	if err != nil {
		slog.Error("Error starting server", "error", err)
	}

	app.Shutdown()
	app.CloseLogs()

	if err != nil {
		os.Exit(1)
	}
}
