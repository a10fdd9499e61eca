package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	evently "github.com/evently/evently-ui"
	"github.com/evently/evently-ui/config"
	httpx "github.com/evently/evently-ui/internal/http"
)

// templatePathFromRoot is where templates live on disk, used for dev-mode
// reloading without a rebuild.
const templatePathFromRoot = "frontend/templates"

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer builds the renderer and router and starts the server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg HTTPServerConfig) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := buildRenderer(cfg.Config.IsDev, logger)
	if err != nil {
		return nil, fmt.Errorf("build template renderer: %w", err)
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Auth:         cfg.Services.Auth,
		Catalog:      cfg.Services.Catalog,
		AdminCatalog: cfg.Services.Catalog,
		Renderer:     renderer,
		CookieDomain: cfg.Config.HTTP.CookieDomain,
		Logger:       logger,
	})

	// Order: Recover -> Logging -> Router
	handler := httpx.Logging(logger)(router)
	handler = httpx.Recover(logger)(handler)

	server := &http.Server{
		Addr:              cfg.Config.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Config.HTTP.ReadHeaderTimeout,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", serveErr)
		}
	}()

	return server, nil
}

// buildRenderer reads templates from disk in dev mode, so edits show up on
// the next process restart without a rebuild, and from the embedded FS
// otherwise.
func buildRenderer(isDev bool, logger *slog.Logger) (*httpx.TemplateRenderer, error) {
	var templateFS fs.FS
	if isDev {
		templateFS = os.DirFS(templatePathFromRoot)
	} else {
		sub, err := fs.Sub(evently.TemplateFS, templatePathFromRoot)
		if err != nil {
			return nil, fmt.Errorf("embedded templates: %w", err)
		}
		templateFS = sub
	}

	return httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     logger,
	})
}

// ShutdownHTTPServer gracefully drains the server within the timeout.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
