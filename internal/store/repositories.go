package store

import (
	"context"
	"fmt"

	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
)

// Repositories groups the server-side repositories into a single value that
// can be passed around the service layer.
type Repositories struct {
	UserRepository     UserRepository
	MovieRepository    MovieRepository
	FavoriteRepository FavoriteRepository
}

// NewRepositories connects to PostgreSQL, applies pending migrations and
// constructs the repository set.
func NewRepositories(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		MovieRepository:    NewMovieRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
	}, nil
}
