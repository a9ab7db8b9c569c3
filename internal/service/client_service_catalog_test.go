package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieportal/movie-portal/internal/adapter"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
)

// fakeCatalogClient is a scriptable adapter.CatalogClient for service tests.
type fakeCatalogClient struct {
	token string

	movies    []models.Movie
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	favorites   models.FavoriteListResponse
	favoriteErr error

	listCalls int
}

func (f *fakeCatalogClient) SetToken(token string) { f.token = token }

func (f *fakeCatalogClient) ListMovies(_ context.Context, _ models.MovieFilter) ([]models.Movie, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.movies, nil
}

func (f *fakeCatalogClient) FeaturedMovies(_ context.Context, limit int) ([]models.Movie, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > 0 && limit < len(f.movies) {
		return f.movies[:limit], nil
	}
	return f.movies, nil
}

func (f *fakeCatalogClient) GetMovie(_ context.Context, movieID int64) (models.Movie, error) {
	if f.getErr != nil {
		return models.Movie{}, f.getErr
	}
	for _, m := range f.movies {
		if m.MovieID == movieID {
			return m, nil
		}
	}
	return models.Movie{}, adapter.ErrNotFound
}

func (f *fakeCatalogClient) CreateMovie(_ context.Context, movie models.Movie) (models.Movie, error) {
	if f.createErr != nil {
		return models.Movie{}, f.createErr
	}
	movie.MovieID = int64(len(f.movies) + 1)
	f.movies = append(f.movies, movie)
	return movie, nil
}

func (f *fakeCatalogClient) UpdateMovie(_ context.Context, _ models.MovieUpdate) error {
	return f.updateErr
}

func (f *fakeCatalogClient) DeleteMovie(_ context.Context, _ int64) error {
	return f.deleteErr
}

func (f *fakeCatalogClient) AddFavorite(_ context.Context, userEmail string, movieID int64) (models.Favorite, error) {
	if f.favoriteErr != nil {
		return models.Favorite{}, f.favoriteErr
	}
	return models.Favorite{FavoriteID: 1, UserEmail: userEmail, MovieID: movieID}, nil
}

func (f *fakeCatalogClient) ListFavorites(_ context.Context, _ string) (models.FavoriteListResponse, error) {
	if f.favoriteErr != nil {
		return models.FavoriteListResponse{}, f.favoriteErr
	}
	return f.favorites, nil
}

func (f *fakeCatalogClient) RemoveFavorite(_ context.Context, _ int64) error {
	return f.favoriteErr
}

// fakeCatalogCache is an in-memory store.CatalogCache.
type fakeCatalogCache struct {
	movies     []models.Movie
	replaceErr error
}

func (f *fakeCatalogCache) ReplaceMovies(_ context.Context, movies []models.Movie) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.movies = append([]models.Movie(nil), movies...)
	return nil
}

func (f *fakeCatalogCache) ListMovies(_ context.Context, _ models.MovieFilter) ([]models.Movie, error) {
	return f.movies, nil
}

func (f *fakeCatalogCache) FeaturedMovies(_ context.Context, limit uint64) ([]models.Movie, error) {
	movies := append([]models.Movie(nil), f.movies...)
	sort.SliceStable(movies, func(i, j int) bool { return movies[i].Rating > movies[j].Rating })
	if limit > 0 && limit < uint64(len(movies)) {
		movies = movies[:limit]
	}
	return movies, nil
}

func (f *fakeCatalogCache) GetMovie(_ context.Context, movieID int64) (models.Movie, error) {
	for _, m := range f.movies {
		if m.MovieID == movieID {
			return m, nil
		}
	}
	return models.Movie{}, errors.New("movie is not cached")
}

func sampleMovies() []models.Movie {
	return []models.Movie{
		{MovieID: 1, Title: "Heat", Genre: "Crime", Rating: 5},
		{MovieID: 2, Title: "Alien", Genre: "Sci-Fi", Rating: 5},
	}
}

func TestClientCatalogService_ListMovies_PrefersServer(t *testing.T) {
	client := &fakeCatalogClient{movies: sampleMovies()}
	cache := &fakeCatalogCache{movies: []models.Movie{{MovieID: 9, Title: "Stale"}}}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	got, err := svc.ListMovies(context.Background(), models.MovieFilter{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Heat", got[0].Title)
}

func TestClientCatalogService_ListMovies_FallsBackToCacheWhenOffline(t *testing.T) {
	client := &fakeCatalogClient{listErr: adapter.ErrNetworkUnavailable}
	cache := &fakeCatalogCache{movies: sampleMovies()}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	got, err := svc.ListMovies(context.Background(), models.MovieFilter{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClientCatalogService_ListMovies_NonNetworkErrorIsNotMasked(t *testing.T) {
	client := &fakeCatalogClient{listErr: adapter.ErrUnauthorized}
	cache := &fakeCatalogCache{movies: sampleMovies()}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	_, err := svc.ListMovies(context.Background(), models.MovieFilter{})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientCatalogService_FeaturedMovies_OfflineFallbackIsRatingOrdered(t *testing.T) {
	client := &fakeCatalogClient{listErr: adapter.ErrNetworkUnavailable}
	cache := &fakeCatalogCache{movies: []models.Movie{
		{MovieID: 1, Title: "Newest", Rating: 2},
		{MovieID: 2, Title: "Classic", Rating: 5},
		{MovieID: 3, Title: "Middling", Rating: 3},
	}}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	got, err := svc.FeaturedMovies(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Classic", got[0].Title)
	assert.Equal(t, "Middling", got[1].Title)
}

func TestClientCatalogService_GetMovie_FallsBackToCacheWhenOffline(t *testing.T) {
	client := &fakeCatalogClient{getErr: adapter.ErrNetworkUnavailable}
	cache := &fakeCatalogCache{movies: sampleMovies()}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	got, err := svc.GetMovie(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Alien", got.Title)
}

func TestClientCatalogService_RefreshCache_ReplacesSnapshot(t *testing.T) {
	client := &fakeCatalogClient{movies: sampleMovies()}
	cache := &fakeCatalogCache{movies: []models.Movie{{MovieID: 9, Title: "Stale"}}}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	err := svc.RefreshCache(context.Background())

	require.NoError(t, err)
	require.Len(t, cache.movies, 2)
	assert.Equal(t, "Heat", cache.movies[0].Title)
}

func TestClientCatalogService_RefreshCache_ReturnsFetchError(t *testing.T) {
	client := &fakeCatalogClient{listErr: adapter.ErrNetworkUnavailable}
	cache := &fakeCatalogCache{}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	err := svc.RefreshCache(context.Background())

	assert.ErrorIs(t, err, adapter.ErrNetworkUnavailable)
}

func TestClientCatalogService_CreateMovie_RefreshesCache(t *testing.T) {
	client := &fakeCatalogClient{}
	cache := &fakeCatalogCache{}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	created, err := svc.CreateMovie(context.Background(), models.Movie{Title: "Ran"})

	require.NoError(t, err)
	assert.NotZero(t, created.MovieID)
	assert.Len(t, cache.movies, 1)
}

func TestClientCatalogService_DeleteMovie_OnlineOnly(t *testing.T) {
	client := &fakeCatalogClient{deleteErr: adapter.ErrNetworkUnavailable}
	cache := &fakeCatalogCache{movies: sampleMovies()}
	svc := NewClientCatalogService(client, cache, logger.Nop())

	err := svc.DeleteMovie(context.Background(), 1)

	assert.ErrorIs(t, err, adapter.ErrNetworkUnavailable)
	assert.Len(t, cache.movies, 2, "cache must stay untouched on a failed mutation")
}
