package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/coursesite/coursesite/internal/command"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	var cli command.CLI
	kong.Parse(&cli,
		kong.Name(command.Name),
		kong.Description(command.Description),
		kong.UsageOnError(),
		command.Vars(version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Run(ctx)
	stop()
	if err != nil {
		cli.Logger().Error("failed to generate course site", "error", err)
		os.Exit(1)
	}
}
