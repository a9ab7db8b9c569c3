package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
)

type httpCatalogClient struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPCatalogClient constructs the REST implementation of [CatalogClient]
// pointed at the portal server.
func NewHTTPCatalogClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (CatalogClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpCatalogClient{client: client, logger: logger}, nil
}

// SetToken implements [CatalogClient].
func (c *httpCatalogClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpCatalogClient) request(ctx context.Context) *resty.Request {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	req := c.client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// ListMovies implements [CatalogClient]. Filter fields map to query
// parameters understood by GET /api/movies.
func (c *httpCatalogClient) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	params := map[string]string{}
	if filter.Search != "" {
		params["search"] = filter.Search
	}
	if filter.Genre != "" {
		params["genre"] = filter.Genre
	}
	if filter.MinRating > 0 {
		params["min_rating"] = strconv.Itoa(filter.MinRating)
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.FormatUint(filter.Limit, 10)
	}

	var result models.MovieListResponse
	resp, err := c.request(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/api/movies")
	if err != nil {
		return nil, networkErr("list movies", err)
	}
	if err = mapCatalogError(resp); err != nil {
		return nil, err
	}

	return result.Movies, nil
}

// FeaturedMovies implements [CatalogClient].
func (c *httpCatalogClient) FeaturedMovies(ctx context.Context, limit int) ([]models.Movie, error) {
	var result models.MovieListResponse
	resp, err := c.request(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/api/movies/featured")
	if err != nil {
		return nil, networkErr("featured movies", err)
	}
	if err = mapCatalogError(resp); err != nil {
		return nil, err
	}

	return result.Movies, nil
}

// GetMovie implements [CatalogClient].
func (c *httpCatalogClient) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	var movie models.Movie
	resp, err := c.request(ctx).
		SetResult(&movie).
		Get(fmt.Sprintf("/api/movies/%d", movieID))
	if err != nil {
		return models.Movie{}, networkErr("get movie", err)
	}
	if err = mapCatalogError(resp); err != nil {
		return models.Movie{}, err
	}

	return movie, nil
}

// CreateMovie implements [CatalogClient].
func (c *httpCatalogClient) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	var created models.Movie
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(movie).
		SetResult(&created).
		Post("/api/movies")
	if err != nil {
		return models.Movie{}, networkErr("create movie", err)
	}
	if err = mapCatalogError(resp); err != nil {
		return models.Movie{}, err
	}

	return created, nil
}

// UpdateMovie implements [CatalogClient].
func (c *httpCatalogClient) UpdateMovie(ctx context.Context, update models.MovieUpdate) error {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(fmt.Sprintf("/api/movies/%d", update.MovieID))
	if err != nil {
		return networkErr("update movie", err)
	}
	return mapCatalogError(resp)
}

// DeleteMovie implements [CatalogClient].
func (c *httpCatalogClient) DeleteMovie(ctx context.Context, movieID int64) error {
	resp, err := c.request(ctx).
		Delete(fmt.Sprintf("/api/movies/%d", movieID))
	if err != nil {
		return networkErr("delete movie", err)
	}
	return mapCatalogError(resp)
}

// AddFavorite implements [CatalogClient].
func (c *httpCatalogClient) AddFavorite(ctx context.Context, userEmail string, movieID int64) (models.Favorite, error) {
	var favorite models.Favorite
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Favorite{UserEmail: userEmail, MovieID: movieID}).
		SetResult(&favorite).
		Post("/api/favorites")
	if err != nil {
		return models.Favorite{}, networkErr("add favorite", err)
	}
	if err = mapCatalogError(resp); err != nil {
		return models.Favorite{}, err
	}

	return favorite, nil
}

// ListFavorites implements [CatalogClient].
func (c *httpCatalogClient) ListFavorites(ctx context.Context, userEmail string) (models.FavoriteListResponse, error) {
	var result models.FavoriteListResponse
	resp, err := c.request(ctx).
		SetResult(&result).
		Get("/api/favorites/" + userEmail)
	if err != nil {
		return models.FavoriteListResponse{}, networkErr("list favorites", err)
	}
	if err = mapCatalogError(resp); err != nil {
		return models.FavoriteListResponse{}, err
	}

	return result, nil
}

// RemoveFavorite implements [CatalogClient].
func (c *httpCatalogClient) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	resp, err := c.request(ctx).
		Delete(fmt.Sprintf("/api/favorites/%d", favoriteID))
	if err != nil {
		return networkErr("remove favorite", err)
	}
	return mapCatalogError(resp)
}
