package store

import (
	"context"

	"github.com/movieportal/movie-portal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CatalogCache is the local read-through copy of the movie catalog. The
// background refresh job replaces its contents wholesale; readers get the
// last synchronized snapshot even when the portal is unreachable.
type CatalogCache interface {
	ReplaceMovies(ctx context.Context, movies []models.Movie) error
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	FeaturedMovies(ctx context.Context, limit uint64) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)
}

// SessionStore persists the bearer token between client runs so a session
// can be restored at startup.
type SessionStore interface {
	SaveToken(ctx context.Context, token string) error
	LoadToken(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}
