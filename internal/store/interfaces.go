package store

import (
	"context"

	"github.com/movieportal/movie-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository manages account records in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.Principal) (models.Principal, error)
	FindUserByEmail(ctx context.Context, email string) (models.Principal, error)
	FindUserByID(ctx context.Context, userID int64) (models.Principal, error)
	// UpsertFederatedUser inserts the account on first federated sign-in and
	// refreshes the mutable profile fields on subsequent ones.
	UpsertFederatedUser(ctx context.Context, user models.Principal) (models.Principal, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Principal, error)
}

// MovieRepository manages catalog entries in the "movies" table.
type MovieRepository interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	FeaturedMovies(ctx context.Context, limit uint64) ([]models.Movie, error)
	UpdateMovie(ctx context.Context, update models.MovieUpdate) (models.Movie, error)
	DeleteMovie(ctx context.Context, movieID int64) error
}

// FavoriteRepository manages (user email, movie id) links in the "favorites"
// table.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	GetFavorite(ctx context.Context, favoriteID int64) (models.Favorite, error)
	ListFavoritesByEmail(ctx context.Context, userEmail string) ([]models.Favorite, error)
	RemoveFavorite(ctx context.Context, favoriteID int64) error
}
