package service

import (
	"context"

	"github.com/movieportal/movie-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers the account lifecycle on the server: registration,
// password and federated sign-in, profile mutation and the JWT session
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.Principal, error)
	Login(ctx context.Context, email, password string) (models.Principal, error)
	// FederatedLogin verifies the external ID token and upserts the matching
	// account.
	FederatedLogin(ctx context.Context, rawIDToken string) (models.Principal, error)
	GetUser(ctx context.Context, userID int64) (models.Principal, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Principal, error)
	CreateToken(ctx context.Context, user models.Principal) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService covers catalog reads and creator-scoped mutations.
type CatalogService interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	FeaturedMovies(ctx context.Context, limit uint64) ([]models.Movie, error)
	// UpdateMovie and DeleteMovie reject requesters other than the entry's
	// creator with [ErrNotCreator].
	UpdateMovie(ctx context.Context, requesterEmail string, update models.MovieUpdate) (models.Movie, error)
	DeleteMovie(ctx context.Context, requesterEmail string, movieID int64) error
}

// FavoriteService covers the per-user favorites collection.
type FavoriteService interface {
	AddFavorite(ctx context.Context, userEmail string, movieID int64) (models.Favorite, error)
	// ListFavorites returns the links together with the full movie records so
	// clients avoid a round-trip per favorite.
	ListFavorites(ctx context.Context, userEmail string) (models.FavoriteListResponse, error)
	RemoveFavorite(ctx context.Context, requesterEmail string, favoriteID int64) error
}

// AppInfoService reports build metadata for the version endpoint.
type AppInfoService interface {
	Version(ctx context.Context) string
}

// IDTokenVerifier checks a raw OIDC ID token against the configured issuer
// and returns the identity claims the portal cares about.
type IDTokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (FederatedClaims, error)
}

// FederatedClaims is the subset of ID-token claims used to build an account.
type FederatedClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"picture"`
}
