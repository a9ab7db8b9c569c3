package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/models"
)

// fakeMovieRepository is a scriptable store.MovieRepository for service
// tests.
type fakeMovieRepository struct {
	createFunc   func(ctx context.Context, movie models.Movie) (models.Movie, error)
	getFunc      func(ctx context.Context, movieID int64) (models.Movie, error)
	listFunc     func(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	featuredFunc func(ctx context.Context, limit uint64) ([]models.Movie, error)
	updateFunc   func(ctx context.Context, update models.MovieUpdate) (models.Movie, error)
	deleteFunc   func(ctx context.Context, movieID int64) error
}

func (f *fakeMovieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	return f.createFunc(ctx, movie)
}

func (f *fakeMovieRepository) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	return f.getFunc(ctx, movieID)
}

func (f *fakeMovieRepository) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	return f.listFunc(ctx, filter)
}

func (f *fakeMovieRepository) FeaturedMovies(ctx context.Context, limit uint64) ([]models.Movie, error) {
	return f.featuredFunc(ctx, limit)
}

func (f *fakeMovieRepository) UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error) {
	return f.updateFunc(ctx, update)
}

func (f *fakeMovieRepository) DeleteMovie(ctx context.Context, movieID int64) error {
	return f.deleteFunc(ctx, movieID)
}

func validMovie() models.Movie {
	return models.Movie{
		MovieID:      1,
		PosterURL:    "https://img.example.com/poster.jpg",
		Title:        "Batman Begins",
		Genre:        "Action",
		Duration:     140,
		ReleaseYear:  2005,
		Rating:       5,
		Summary:      "Bruce Wayne becomes Batman.",
		CreatorEmail: "creator@example.com",
	}
}

func TestCatalogService_CreateMovie_Success(t *testing.T) {
	repo := &fakeMovieRepository{
		createFunc: func(_ context.Context, movie models.Movie) (models.Movie, error) {
			movie.MovieID = 10
			return movie, nil
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	created, err := svc.CreateMovie(context.Background(), validMovie())

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.MovieID)
}

func TestCatalogService_CreateMovie_RejectsInvalidEntry(t *testing.T) {
	svc := NewCatalogService(&fakeMovieRepository{}, logger.Nop())

	movie := validMovie()
	movie.Rating = 9

	_, err := svc.CreateMovie(context.Background(), movie)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_FeaturedMovies_DefaultsLimit(t *testing.T) {
	var gotLimit uint64
	repo := &fakeMovieRepository{
		featuredFunc: func(_ context.Context, limit uint64) ([]models.Movie, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	_, err := svc.FeaturedMovies(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, uint64(defaultFeaturedLimit), gotLimit)
}

func TestCatalogService_UpdateMovie_CreatorOnly(t *testing.T) {
	repo := &fakeMovieRepository{
		getFunc: func(_ context.Context, _ int64) (models.Movie, error) {
			return validMovie(), nil
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	title := "Renamed"
	_, err := svc.UpdateMovie(context.Background(), "somebody.else@example.com", models.MovieUpdate{
		MovieID: 1,
		Title:   &title,
	})

	require.ErrorIs(t, err, ErrNotCreator)
}

func TestCatalogService_UpdateMovie_CreatorCaseInsensitive(t *testing.T) {
	repo := &fakeMovieRepository{
		getFunc: func(_ context.Context, _ int64) (models.Movie, error) {
			return validMovie(), nil
		},
		updateFunc: func(_ context.Context, update models.MovieUpdate) (models.Movie, error) {
			movie := validMovie()
			movie.Title = *update.Title
			return movie, nil
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	title := "Renamed"
	updated, err := svc.UpdateMovie(context.Background(), "Creator@Example.COM", models.MovieUpdate{
		MovieID: 1,
		Title:   &title,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestCatalogService_UpdateMovie_RejectsEmptyUpdate(t *testing.T) {
	svc := NewCatalogService(&fakeMovieRepository{}, logger.Nop())

	_, err := svc.UpdateMovie(context.Background(), "creator@example.com", models.MovieUpdate{MovieID: 1})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_DeleteMovie_PropagatesNotFound(t *testing.T) {
	repo := &fakeMovieRepository{
		getFunc: func(_ context.Context, _ int64) (models.Movie, error) {
			return models.Movie{}, store.ErrMovieNotFound
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	err := svc.DeleteMovie(context.Background(), "creator@example.com", 99)

	require.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestCatalogService_DeleteMovie_CreatorOnly(t *testing.T) {
	deleted := false
	repo := &fakeMovieRepository{
		getFunc: func(_ context.Context, _ int64) (models.Movie, error) {
			return validMovie(), nil
		},
		deleteFunc: func(_ context.Context, _ int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewCatalogService(repo, logger.Nop())

	err := svc.DeleteMovie(context.Background(), "intruder@example.com", 1)
	require.ErrorIs(t, err, ErrNotCreator)
	assert.False(t, deleted)

	err = svc.DeleteMovie(context.Background(), "creator@example.com", 1)
	require.NoError(t, err)
	assert.True(t, deleted)
}
