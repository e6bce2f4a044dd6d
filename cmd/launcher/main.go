package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gamevault/internal/config"
)

func main() {
	config.LoadEnvFiles()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultApp).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
