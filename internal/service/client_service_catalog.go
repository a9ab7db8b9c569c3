package service

import (
	"context"
	"errors"

	"github.com/movieportal/movie-portal/internal/adapter"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/models"
)

// clientCatalogService is the concrete implementation of ClientCatalogService.
type clientCatalogService struct {
	catalog adapter.CatalogClient
	cache   store.CatalogCache
	logger  *logger.Logger
}

// NewClientCatalogService constructs a ClientCatalogService over the portal
// catalog client and the local catalog cache.
func NewClientCatalogService(catalog adapter.CatalogClient, cache store.CatalogCache, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{
		catalog: catalog,
		cache:   cache,
		logger:  logger,
	}
}

// ListMovies queries the portal and falls back to the cached snapshot when
// the portal is unreachable.
func (c *clientCatalogService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	log := c.logger.GetChildLogger()

	movies, err := c.catalog.ListMovies(ctx, filter)
	if err == nil {
		return movies, nil
	}
	if !errors.Is(err, adapter.ErrNetworkUnavailable) {
		return nil, err
	}

	log.Warn().Str("func", "*clientCatalogService.ListMovies").Msg("portal unreachable, serving cached catalog")
	return c.cache.ListMovies(ctx, filter)
}

// FeaturedMovies queries the portal's featured selection, falling back to
// the highest-rated cached entries when the portal is unreachable.
func (c *clientCatalogService) FeaturedMovies(ctx context.Context, limit int) ([]models.Movie, error) {
	log := c.logger.GetChildLogger()

	movies, err := c.catalog.FeaturedMovies(ctx, limit)
	if err == nil {
		return movies, nil
	}
	if !errors.Is(err, adapter.ErrNetworkUnavailable) {
		return nil, err
	}

	log.Warn().Str("func", "*clientCatalogService.FeaturedMovies").Msg("portal unreachable, serving cached catalog")

	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return c.cache.FeaturedMovies(ctx, uint64(limit))
}

// GetMovie fetches a single movie, falling back to the cached copy when the
// portal is unreachable.
func (c *clientCatalogService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	log := c.logger.GetChildLogger()

	movie, err := c.catalog.GetMovie(ctx, movieID)
	if err == nil {
		return movie, nil
	}
	if !errors.Is(err, adapter.ErrNetworkUnavailable) {
		return models.Movie{}, err
	}

	log.Warn().Str("func", "*clientCatalogService.GetMovie").Int64("movie_id", movieID).Msg("portal unreachable, serving cached movie")
	return c.cache.GetMovie(ctx, movieID)
}

// CreateMovie adds a catalog entry. Mutations are online-only; a successful
// write triggers a best-effort cache refresh.
func (c *clientCatalogService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	created, err := c.catalog.CreateMovie(ctx, movie)
	if err != nil {
		return models.Movie{}, err
	}

	c.refreshAfterMutation(ctx)
	return created, nil
}

// UpdateMovie edits a catalog entry. Mutations are online-only; a successful
// write triggers a best-effort cache refresh.
func (c *clientCatalogService) UpdateMovie(ctx context.Context, update models.MovieUpdate) error {
	if err := c.catalog.UpdateMovie(ctx, update); err != nil {
		return err
	}

	c.refreshAfterMutation(ctx)
	return nil
}

// DeleteMovie removes a catalog entry. Mutations are online-only; a
// successful write triggers a best-effort cache refresh.
func (c *clientCatalogService) DeleteMovie(ctx context.Context, movieID int64) error {
	if err := c.catalog.DeleteMovie(ctx, movieID); err != nil {
		return err
	}

	c.refreshAfterMutation(ctx)
	return nil
}

// RefreshCache replaces the local snapshot with the server's full catalog.
func (c *clientCatalogService) RefreshCache(ctx context.Context) error {
	log := c.logger.GetChildLogger()

	movies, err := c.catalog.ListMovies(ctx, models.MovieFilter{})
	if err != nil {
		log.Err(err).Str("func", "*clientCatalogService.RefreshCache").Msg("error: fetching catalog for cache refresh")
		return err
	}

	if err = c.cache.ReplaceMovies(ctx, movies); err != nil {
		log.Err(err).Str("func", "*clientCatalogService.RefreshCache").Msg("error: replacing cached catalog")
		return err
	}

	log.Debug().Int("movies", len(movies)).Msg("catalog cache refreshed")
	return nil
}

func (c *clientCatalogService) refreshAfterMutation(ctx context.Context) {
	log := c.logger.GetChildLogger()

	if err := c.RefreshCache(ctx); err != nil {
		log.Warn().Err(err).Str("func", "*clientCatalogService.refreshAfterMutation").Msg("cache refresh after mutation failed")
	}
}
