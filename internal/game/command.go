package game

import (
	"context"
	"log/slog"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"
)

const sessionCmdTimeout = 30 * time.Second

// Runner executes a program with the given arguments.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	// #nosec G204
	return exec.CommandContext(ctx, name, args...).Run()
}

// runSessionCmd starts the configured session command in the background.
func (g *Game) runSessionCmd() {
	if g.sessionCmd == "" {
		return
	}

	args, err := shellquote.Split(g.sessionCmd)
	if err != nil || len(args) == 0 {
		g.logger.Error(
			"invalid session command",
			slog.String("cmd", g.sessionCmd),
			slog.Any("error", err),
		)

		return
	}

	g.cmds.Add(1)

	go func() {
		defer g.cmds.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sessionCmdTimeout)
		defer cancel()

		if err := g.runner(ctx, args[0], args[1:]...); err != nil {
			g.logger.Error(
				"session command failed",
				slog.String("cmd", g.sessionCmd),
				slog.Any("error", err),
			)
		}
	}()
}
