package service

import (
	"context"
	"time"

	"github.com/movieportal/movie-portal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService orchestrates the session provider and the persisted
// token store: every successful state change is mirrored into the local
// database so the next run can restore the session.
type ClientAuthService interface {
	// Restore settles the initial session state from the persisted token
	// and synchronizes the store with the outcome.
	Restore(ctx context.Context)

	SignUp(ctx context.Context, creds models.Credentials) (models.Principal, error)
	SignIn(ctx context.Context, email, password string) (models.Principal, error)
	SignInFederated(ctx context.Context) (models.Principal, error)
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
}

// ClientCatalogService reads the catalog server-first with a cache fallback,
// and forwards mutations to the server.
type ClientCatalogService interface {
	// ListMovies queries the portal; when it is unreachable the last
	// synchronized cache snapshot is served instead.
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	FeaturedMovies(ctx context.Context, limit int) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)

	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	UpdateMovie(ctx context.Context, update models.MovieUpdate) error
	DeleteMovie(ctx context.Context, movieID int64) error

	// RefreshCache replaces the local snapshot with the server's catalog.
	RefreshCache(ctx context.Context) error
}

// ClientFavoriteService manages the signed-in user's favorites through the
// portal API.
type ClientFavoriteService interface {
	AddFavorite(ctx context.Context, movieID int64) (models.Favorite, error)
	ListFavorites(ctx context.Context) (models.FavoriteListResponse, error)
	RemoveFavorite(ctx context.Context, favoriteID int64) error
}

// ClientRefreshJob is a background worker that periodically refreshes the
// local catalog cache.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
