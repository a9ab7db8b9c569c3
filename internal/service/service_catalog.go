package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/internal/validators"
	"github.com/movieportal/movie-portal/models"
)

// defaultFeaturedLimit caps the featured listing when the caller does not
// supply one.
const defaultFeaturedLimit = 4

// catalogService is the concrete implementation of CatalogService. Reads are
// open; mutations are restricted to the entry's creator.
type catalogService struct {
	movieRepository store.MovieRepository
	movieValidator  validators.Validator
	logger          *logger.Logger
}

// NewCatalogService constructs a CatalogService wired to the given
// MovieRepository.
func NewCatalogService(movieRepository store.MovieRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		movieRepository: movieRepository,
		movieValidator:  validators.NewMovieValidator(),
		logger:          logger,
	}
}

// CreateMovie validates and persists a new catalog entry.
//
// Returns [ErrInvalidDataProvided] (wrapping the validator error) on bad
// input.
func (c *catalogService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := c.movieValidator.Validate(ctx, movie); err != nil {
		log.Err(err).Str("title", movie.Title).Msg("invalid movie data provided")
		return models.Movie{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	created, err := c.movieRepository.CreateMovie(ctx, movie)
	if err != nil {
		log.Err(err).Str("title", movie.Title).Msg("movie creation ended with error")
		return models.Movie{}, fmt.Errorf("movie creation ended with error: %w", err)
	}

	return created, nil
}

// GetMovie returns a single catalog entry.
func (c *catalogService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	movie, err := c.movieRepository.GetMovie(ctx, movieID)
	if err != nil {
		return models.Movie{}, fmt.Errorf("movie lookup failed: %w", err)
	}

	return movie, nil
}

// ListMovies returns catalog entries matching the filter.
func (c *catalogService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	movies, err := c.movieRepository.ListMovies(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("movie listing failed: %w", err)
	}

	return movies, nil
}

// FeaturedMovies returns the top rated entries, defaulting the limit when
// the caller passes zero.
func (c *catalogService) FeaturedMovies(ctx context.Context, limit uint64) ([]models.Movie, error) {
	if limit == 0 {
		limit = defaultFeaturedLimit
	}

	movies, err := c.movieRepository.FeaturedMovies(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("featured listing failed: %w", err)
	}

	return movies, nil
}

// UpdateMovie validates the partial update and applies it if the requester
// created the entry.
//
// Returns:
//   - [ErrInvalidDataProvided] on bad input.
//   - [ErrNotCreator] when the requester did not create the entry.
//   - A wrapped storage error otherwise (e.g. [store.ErrMovieNotFound]).
func (c *catalogService) UpdateMovie(ctx context.Context, requesterEmail string, update models.MovieUpdate) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := c.movieValidator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("movie_id", update.MovieID).Msg("invalid movie update provided")
		return models.Movie{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	if err := c.requireCreator(ctx, requesterEmail, update.MovieID); err != nil {
		return models.Movie{}, err
	}

	updated, err := c.movieRepository.UpdateMovie(ctx, update)
	if err != nil {
		log.Err(err).Int64("movie_id", update.MovieID).Msg("movie update ended with error")
		return models.Movie{}, fmt.Errorf("movie update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteMovie removes an entry if the requester created it.
func (c *catalogService) DeleteMovie(ctx context.Context, requesterEmail string, movieID int64) error {
	log := logger.FromContext(ctx)

	if err := c.requireCreator(ctx, requesterEmail, movieID); err != nil {
		return err
	}

	if err := c.movieRepository.DeleteMovie(ctx, movieID); err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("movie deletion ended with error")
		return fmt.Errorf("movie deletion ended with error: %w", err)
	}

	return nil
}

func (c *catalogService) requireCreator(ctx context.Context, requesterEmail string, movieID int64) error {
	movie, err := c.movieRepository.GetMovie(ctx, movieID)
	if err != nil {
		return fmt.Errorf("movie lookup failed: %w", err)
	}

	if !strings.EqualFold(movie.CreatorEmail, requesterEmail) {
		logger.FromContext(ctx).Warn().
			Int64("movie_id", movieID).
			Str("requester", requesterEmail).
			Str("creator", movie.CreatorEmail).
			Msg("mutation attempted by non-creator")
		return ErrNotCreator
	}

	return nil
}
