// Package main is the entry point for the resolve CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/cmd/resolve/commands"
	"github.com/forgepm/resolve/internal/app"
	"github.com/forgepm/resolve/internal/core/domain"
	_ "github.com/forgepm/resolve/internal/wiring"
)

// ComponentProvider returns the initialized application components. It is a
// seam for tests to substitute a fake graph without touching os.Args.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// The logger isn't available if wiring itself failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.Orchestrator)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrResolutionFailed) || errors.Is(err, domain.ErrLockFileStale) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
