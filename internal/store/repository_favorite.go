package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository].
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// AddFavorite persists a new favorite link.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on (user_email, movie_id) →
//     [ErrFavoriteAlreadyExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrMovieNotFound].
func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFavorite, favorite.UserEmail, favorite.MovieID)

	var created models.Favorite
	if err := row.Scan(&created.FavoriteID, &created.UserEmail, &created.MovieID, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error: inserting favorite")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Favorite{}, ErrFavoriteAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Favorite{}, ErrMovieNotFound
		default:
			return models.Favorite{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetFavorite retrieves a single favorite link by id.
func (r *favoriteRepository) GetFavorite(ctx context.Context, favoriteID int64) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	var found models.Favorite
	row := r.db.QueryRowContext(ctx, getFavorite, favoriteID)

	if err := row.Scan(&found.FavoriteID, &found.UserEmail, &found.MovieID, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Favorite{}, ErrFavoriteNotFound
		}
		log.Err(err).Str("func", "*favoriteRepository.GetFavorite").Msg("error: scanning favorite row")
		return models.Favorite{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListFavoritesByEmail returns the user's favorite links, newest first.
func (r *favoriteRepository) ListFavoritesByEmail(ctx context.Context, userEmail string) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFavoritesByEmail, userEmail)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavoritesByEmail").Msg("error: executing favorites query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		if err = rows.Scan(&f.FavoriteID, &f.UserEmail, &f.MovieID, &f.CreatedAt); err != nil {
			log.Err(err).Str("func", "*favoriteRepository.ListFavoritesByEmail").Msg("error: scanning favorite rows")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		favorites = append(favorites, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return favorites, nil
}

// RemoveFavorite deletes a favorite link.
//
// Error handling:
//   - zero affected rows → [ErrFavoriteNotFound].
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFavorite, favoriteID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.RemoveFavorite").Msg("error: deleting favorite")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}
