package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/evently/evently-ui/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting evently-ui",
		"addr", cfg.HTTP.Addr,
		"api_base_url", cfg.API.BaseURL,
		"session_backend", cfg.Sessions.Backend,
		"dev", cfg.IsDev)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	storeResult, err := bootstrap.BuildSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer storeResult.Close()

	services, err := bootstrap.BuildServices(bootstrap.ServicesConfig{
		Config: cfg,
		Store:  storeResult.Store,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer services.Notifier.StopAll()

	server, err := bootstrap.StartHTTPServer(bootstrap.HTTPServerConfig{
		Config:   cfg,
		Services: services,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)

	if storeResult.RunReaper != nil {
		group.Go(func() error {
			if reapErr := storeResult.RunReaper(groupCtx); reapErr != nil && !errors.Is(reapErr, context.Canceled) {
				return reapErr
			}
			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down", "reason", groupCtx.Err())
		return bootstrap.ShutdownHTTPServer(context.Background(), server, cfg.HTTP.ShutdownTimeout)
	})

	return group.Wait()
}
