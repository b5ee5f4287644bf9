package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hotel_console/internal/adapters/observability"
	"hotel_console/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// no-op unless METRICS_ADDR is set
	observability.Serve()

	root := cli.NewRootCmd(&cli.Env{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
