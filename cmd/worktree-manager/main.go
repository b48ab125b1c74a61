package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rawnly/worktree-manager/internal/cli"
	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(wmerrors.ExitCode(err))
	}
}
