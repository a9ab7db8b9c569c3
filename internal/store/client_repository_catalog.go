package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
)

// localCatalogCache is the SQLite-backed implementation of [CatalogCache].
type localCatalogCache struct {
	logger *logger.Logger
	db     *DB
}

// NewLocalCatalogCache constructs a [CatalogCache] backed by the client
// database.
func NewLocalCatalogCache(db *DB, logger *logger.Logger) CatalogCache {
	logger.Debug().Msg("creating local catalog cache")
	return &localCatalogCache{
		db:     db,
		logger: logger,
	}
}

// ReplaceMovies swaps the cached catalog for the given snapshot inside a
// single transaction, so readers never observe a half-refreshed cache.
func (c *localCatalogCache) ReplaceMovies(ctx context.Context, movies []models.Movie) error {
	log := logger.FromContext(ctx)

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*localCatalogCache.ReplaceMovies").Msg("error: beginning transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCachedMovies); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	for _, m := range movies {
		if _, err = tx.ExecContext(ctx, insertCachedMovie,
			m.MovieID, m.PosterURL, m.Title, m.Genre, m.Duration,
			m.ReleaseYear, m.Rating, m.Summary, m.CreatorEmail, m.CreatedAt, m.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*localCatalogCache.ReplaceMovies").Int64("movie_id", m.MovieID).Msg("error: inserting cached movie")
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListMovies returns cached entries matching the filter, newest first.
func (c *localCatalogCache) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	// SQLite LIKE is case-insensitive for ASCII, close enough to the
	// server's ILIKE for a local cache.
	builder := squirrel.Select(movieColumns...).
		From("cached_movies").
		OrderBy("created_at DESC")
	if filter.Search != "" {
		builder = builder.Where(squirrel.Like{"title": "%" + filter.Search + "%"})
	}
	if filter.Genre != "" {
		builder = builder.Where(squirrel.Eq{"genre": filter.Genre})
	}
	if filter.MinRating > 0 {
		builder = builder.Where(squirrel.GtOrEq{"rating": filter.MinRating})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*localCatalogCache.ListMovies").Msg("error: building list query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return c.queryMovies(ctx, query, args...)
}

// FeaturedMovies returns the top rated cached entries, most recent first
// within the same rating, mirroring the portal's featured ordering.
func (c *localCatalogCache) FeaturedMovies(ctx context.Context, limit uint64) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.Select(movieColumns...).
		From("cached_movies").
		OrderBy("rating DESC", "created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*localCatalogCache.FeaturedMovies").Msg("error: building featured query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return c.queryMovies(ctx, query, args...)
}

func (c *localCatalogCache) queryMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var m models.Movie
		if err = rows.Scan(&m.MovieID, &m.PosterURL, &m.Title, &m.Genre, &m.Duration,
			&m.ReleaseYear, &m.Rating, &m.Summary, &m.CreatorEmail, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		movies = append(movies, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return movies, nil
}

// GetMovie returns a single cached entry.
func (c *localCatalogCache) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	row := c.db.QueryRowContext(ctx, getCachedMovie, movieID)

	movie, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		return models.Movie{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return movie, nil
}
