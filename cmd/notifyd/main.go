package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notifyd/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := cli.BuildRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "notifyd:", err)
		stop()
		os.Exit(1)
	}
}
