package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
)

// movieColumns is the canonical column list scanned into [models.Movie].
var movieColumns = []string{
	"movie_id", "poster_url", "title", "genre", "duration",
	"release_year", "rating", "summary", "creator_email",
	"created_at", "updated_at",
}

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository]. List queries are assembled dynamically with squirrel
// because the filter combination is not known up front.
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// database connection and logger.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMovie persists a new catalog entry and returns it with the
// server-assigned fields (MovieID, CreatedAt, UpdatedAt).
func (r *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMovie,
		movie.PosterURL, movie.Title, movie.Genre, movie.Duration,
		movie.ReleaseYear, movie.Rating, movie.Summary, movie.CreatorEmail)

	created, err := scanMovie(row)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.CreateMovie").Msg("error: inserting movie")
		return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetMovie retrieves a single catalog entry by id.
//
// Error handling:
//   - sql.ErrNoRows → [ErrMovieNotFound].
func (r *movieRepository) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getMovie, movieID)

	movie, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "*movieRepository.GetMovie").Msg("error: scanning movie row")
		return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return movie, nil
}

// ListMovies returns catalog entries matching the filter, newest first.
// Zero-valued filter fields are skipped so an empty filter lists everything.
func (r *movieRepository) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.Select(movieColumns...).
		From("movies").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if filter.Search != "" {
		builder = builder.Where(squirrel.ILike{"title": "%" + filter.Search + "%"})
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
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error: building list query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryMovies(ctx, query, args...)
}

// FeaturedMovies returns the top rated catalog entries, most recent first
// within the same rating.
func (r *movieRepository) FeaturedMovies(ctx context.Context, limit uint64) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.Select(movieColumns...).
		From("movies").
		OrderBy("rating DESC", "created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.FeaturedMovies").Msg("error: building featured query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryMovies(ctx, query, args...)
}

// UpdateMovie applies the non-nil fields of update to a catalog entry and
// returns the refreshed record.
//
// Error handling:
//   - sql.ErrNoRows → [ErrMovieNotFound].
func (r *movieRepository) UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.Update("movies").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"movie_id": update.MovieID}).
		Suffix("RETURNING " + strings.Join(movieColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar)
	if update.PosterURL != nil {
		builder = builder.Set("poster_url", *update.PosterURL)
	}
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Genre != nil {
		builder = builder.Set("genre", *update.Genre)
	}
	if update.Duration != nil {
		builder = builder.Set("duration", *update.Duration)
	}
	if update.ReleaseYear != nil {
		builder = builder.Set("release_year", *update.ReleaseYear)
	}
	if update.Rating != nil {
		builder = builder.Set("rating", *update.Rating)
	}
	if update.Summary != nil {
		builder = builder.Set("summary", *update.Summary)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.UpdateMovie").Msg("error: building update query")
		return models.Movie{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	movie, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "*movieRepository.UpdateMovie").Msg("error: scanning updated movie row")
		return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return movie, nil
}

// DeleteMovie removes a catalog entry.
//
// Error handling:
//   - zero affected rows → [ErrMovieNotFound].
func (r *movieRepository) DeleteMovie(ctx context.Context, movieID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMovie, movieID)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.DeleteMovie").Msg("error: deleting movie")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrMovieNotFound
	}

	return nil
}

func (r *movieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.queryMovies").Msg("error: executing movie query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var m models.Movie
		if err = rows.Scan(&m.MovieID, &m.PosterURL, &m.Title, &m.Genre, &m.Duration,
			&m.ReleaseYear, &m.Rating, &m.Summary, &m.CreatorEmail, &m.CreatedAt, &m.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*movieRepository.queryMovies").Msg("error: scanning movie rows")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		movies = append(movies, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return movies, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var m models.Movie
	err := row.Scan(&m.MovieID, &m.PosterURL, &m.Title, &m.Genre, &m.Duration,
		&m.ReleaseYear, &m.Rating, &m.Summary, &m.CreatorEmail, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
