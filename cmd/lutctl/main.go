package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	cmd "github.com/gablabelle/expo-lut-filter/cmd/lutctl/cmd"
)

// GitSHA is set at build time via -ldflags.
var GitSHA = "NA"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRoot(ctx, GitSHA).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
