package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucrnz/qakit/internal/cleanup"
	"github.com/lucrnz/qakit/internal/cli"
)

func main() {
	os.Exit(run())
}

// run returns the exit status so that deferred cleanup happens before os.Exit.
func run() int {
	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Temp files of interrupted atomic writes
	tracker := cleanup.NewTracker()
	defer tracker.RemoveAll()

	err := cli.ExecuteContext(ctx, tracker)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrCheckFailed):
		return 1
	case errors.Is(ctx.Err(), context.Canceled):
		fmt.Fprintln(os.Stderr, "\nInterrupted")
		return 130 // Standard exit code for SIGINT
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}
