package service

import (
	"context"
	"fmt"

	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/store"
)

// Services groups the server-side services handed to the HTTP layer.
type Services struct {
	AuthService     AuthService
	CatalogService  CatalogService
	FavoriteService FavoriteService
	AppInfoService  AppInfoService
}

// NewServices wires the service layer over the repositories. OIDC discovery
// for federated sign-in runs here; an unset issuer simply disables the flow.
func NewServices(ctx context.Context, repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	verifier, err := NewOIDCTokenVerifier(ctx, cfg.Federated, logger)
	if err != nil {
		return nil, fmt.Errorf("federated verifier setup failed: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service setup failed: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, verifier, cfg.App, logger),
		CatalogService:  NewCatalogService(repositories.MovieRepository, logger),
		FavoriteService: NewFavoriteService(repositories.FavoriteRepository, repositories.MovieRepository, logger),
		AppInfoService:  appInfo,
	}, nil
}
