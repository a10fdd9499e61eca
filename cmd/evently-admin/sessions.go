package main

import (
	"context"
	"errors"
	"flag"

	"github.com/evently/evently-ui/config"
	"github.com/evently/evently-ui/internal/bootstrap"
)

// expiredDeleter matches the stores that support one-shot purges.
type expiredDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// runPurgeSessions deletes expired sessions once and reports the count.
// Meant for cron or manual cleanup when the in-process reaper is off.
func runPurgeSessions(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("purge-sessions", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if ctx.Config.Sessions.Backend == config.SessionBackendRedis {
		ctx.Logger.Info("redis sessions expire via key TTL, nothing to purge")
		return nil
	}

	result, err := bootstrap.BuildSessionStore(ctx.Ctx, ctx.Config, ctx.Logger)
	if err != nil {
		return err
	}
	defer result.Close()

	purger, ok := result.Store.(expiredDeleter)
	if !ok {
		return errors.New("configured session store does not support purging")
	}

	removed, err := purger.DeleteExpired(ctx.Ctx)
	if err != nil {
		return err
	}

	ctx.Logger.InfoContext(ctx.Ctx, "expired sessions purged",
		"backend", ctx.Config.Sessions.Backend, "count", removed)
	return nil
}
