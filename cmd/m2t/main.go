package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/OkhDev/media-to-text/cmd/m2t/cmd"
)

func main() {
	// A first interrupt stops the run after the current chunk; a second one
	// kills the process the usual way.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Execute(ctx)
}
