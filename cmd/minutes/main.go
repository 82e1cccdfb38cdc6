package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-workspace/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := cli.DefaultDeps()
	if os.Getenv("MINUTES_DEBUG") != "" {
		if logger, err := zap.NewDevelopment(); err == nil {
			deps.Logger = logger
			defer logger.Sync()
		}
	}

	if err := cli.NewRootCommand(deps).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
