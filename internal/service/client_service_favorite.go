package service

import (
	"context"

	"github.com/movieportal/movie-portal/internal/adapter"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/session"
	"github.com/movieportal/movie-portal/models"
)

// clientFavoriteService is the concrete implementation of
// ClientFavoriteService.
type clientFavoriteService struct {
	catalog adapter.CatalogClient
	session *session.Provider
	logger  *logger.Logger
}

// NewClientFavoriteService constructs a ClientFavoriteService over the
// portal catalog client and the session provider.
func NewClientFavoriteService(catalog adapter.CatalogClient, provider *session.Provider, logger *logger.Logger) ClientFavoriteService {
	return &clientFavoriteService{
		catalog: catalog,
		session: provider,
		logger:  logger,
	}
}

// AddFavorite marks a movie as a favorite of the signed-in user.
func (c *clientFavoriteService) AddFavorite(ctx context.Context, movieID int64) (models.Favorite, error) {
	email, err := c.userEmail()
	if err != nil {
		return models.Favorite{}, err
	}

	return c.catalog.AddFavorite(ctx, email, movieID)
}

// ListFavorites fetches the signed-in user's favorites with their movies.
func (c *clientFavoriteService) ListFavorites(ctx context.Context) (models.FavoriteListResponse, error) {
	email, err := c.userEmail()
	if err != nil {
		return models.FavoriteListResponse{}, err
	}

	return c.catalog.ListFavorites(ctx, email)
}

// RemoveFavorite deletes a favorite link of the signed-in user.
func (c *clientFavoriteService) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	if _, err := c.userEmail(); err != nil {
		return err
	}

	return c.catalog.RemoveFavorite(ctx, favoriteID)
}

func (c *clientFavoriteService) userEmail() (string, error) {
	principal := c.session.Principal()
	if principal == nil {
		return "", adapter.ErrNoActiveSession
	}
	return principal.Email, nil
}
