package bootstrap

import (
	"log/slog"
	"net/http"

	"github.com/evently/evently-ui/config"
	"github.com/evently/evently-ui/internal/adapters/bookingapi"
	"github.com/evently/evently-ui/internal/ports"
	"github.com/evently/evently-ui/internal/service"
)

// ServiceContainer holds the wired application services.
type ServiceContainer struct {
	Auth     *service.AuthService
	Catalog  *service.CatalogService
	Notifier *service.SessionNotifier
	Client   *bookingapi.Client
}

// ServicesConfig contains dependencies for building the service container.
type ServicesConfig struct {
	Config config.AppConfig
	Store  ports.SessionStore
	Logger *slog.Logger
}

// BuildServices constructs the booking API client and the services on top
// of it.
func BuildServices(cfg ServicesConfig) (ServiceContainer, error) {
	client, err := bookingapi.NewClient(bookingapi.Config{
		BaseURL:    cfg.Config.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Config.API.Timeout},
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	notifier := service.NewSessionNotifier()

	auth := service.NewAuthService(service.AuthServiceOptions{
		Store:    cfg.Store,
		API:      client,
		Notifier: notifier,
		Logger:   cfg.Logger,
		TTL:      cfg.Config.Sessions.TTL,
	})

	catalog := service.NewCatalogService(service.CatalogServiceOptions{
		Events: client,
		Admin:  client,
		Logger: cfg.Logger,
	})

	return ServiceContainer{
		Auth:     auth,
		Catalog:  catalog,
		Notifier: notifier,
		Client:   client,
	}, nil
}
