package service

import (
	"github.com/movieportal/movie-portal/internal/adapter"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/session"
	"github.com/movieportal/movie-portal/internal/store"
)

// ClientServices aggregates the client-side service layer.
type ClientServices struct {
	AuthService     ClientAuthService
	CatalogService  ClientCatalogService
	FavoriteService ClientFavoriteService
	RefreshJob      ClientRefreshJob
}

// NewClientServices wires the client services over the session provider, the
// portal catalog client, and the local storages.
func NewClientServices(provider *session.Provider, catalog adapter.CatalogClient, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(provider, storages.SessionStore, logger)
	catalogSvc := NewClientCatalogService(catalog, storages.CatalogCache, logger)
	favoriteSvc := NewClientFavoriteService(catalog, provider, logger)

	return &ClientServices{
		AuthService:     authSvc,
		CatalogService:  catalogSvc,
		FavoriteService: favoriteSvc,
		RefreshJob:      NewClientRefreshJob(catalogSvc),
	}
}
