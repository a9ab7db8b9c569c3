package client

import (
	"context"
	"fmt"

	"github.com/movieportal/movie-portal/internal/adapter"
	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/session"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/internal/tui"
)

// App assembles the client runtime: local storage, portal adapters, the
// session provider, client services and the terminal UI.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	session  *session.Provider
	services *service.ClientServices
	tui      *tui.TUI
}

// NewApp wires the client from configuration. The persisted bearer token, if
// any, is handed to the identity adapter so the previous session can be
// restored on startup.
func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting client config: %w", err)
	}

	log := logger.NewClientLogger("client")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating client storages: %w", err)
	}

	persistedToken, err := storages.SessionStore.LoadToken(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("no persisted session token loaded")
		persistedToken = ""
	}

	consentFlow := adapter.NewBrowserConsentFlow(cfg.Federated, log)

	identity, err := adapter.NewHTTPIdentityProvider(cfg.Adapter, consentFlow, persistedToken, log)
	if err != nil {
		return nil, fmt.Errorf("error creating identity provider: %w", err)
	}

	catalog, err := adapter.NewHTTPCatalogClient(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("error creating catalog client: %w", err)
	}

	provider := session.NewProvider(identity, log)

	// The catalog client authenticates independently of the identity
	// provider, so mirror every session change into its bearer token.
	provider.Subscribe(func(session.Snapshot) {
		catalog.SetToken(provider.Token())
	})

	services := service.NewClientServices(provider, catalog, storages, log)

	ui, err := tui.New(services, provider, cfg.Adapter.HTTPAddress, log)
	if err != nil {
		return nil, fmt.Errorf("error creating terminal ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		session:  provider,
		services: services,
		tui:      ui,
	}, nil
}

// Run starts the background cache refresh and blocks in the terminal UI
// until the user exits.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.GetChildLogger()
	log.Info().Msg("starting client application")

	a.services.RefreshJob.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()
	defer a.session.Close()

	if err := a.tui.Run(ctx); err != nil {
		log.Err(err).Str("func", "*App.Run").Msg("error: terminal ui exited")
		return fmt.Errorf("terminal ui error: %w", err)
	}

	log.Info().Msg("client application stopped")
	return nil
}
