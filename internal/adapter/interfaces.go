// Package adapter provides transport-layer abstractions for communicating
// with the movie-portal server and the external identity provider.
//
// The two primary abstractions are [IdentityProvider], which translates
// application-level auth intents into REST calls and surfaces a single
// subscription point for session changes, and [CatalogClient], which covers
// the movie and favorites CRUD surface.
//
// Error values defined in errors.go are mapped from HTTP status codes by the
// per-operation mappers in errors_mapper.go so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrAccountNotFound]
// for 404 on sign-in).
package adapter

import (
	"context"

	"github.com/movieportal/movie-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProvider defines the auth operations of the portal plus a
// subscription point for session-change notifications. Implementations are
// responsible for serialisation, bearer-token management, and mapping
// transport-level failures to the sentinel values defined in this package.
//
// All network-dependent operations may fail with [ErrNetworkUnavailable];
// none of them are retried by the adapter itself.
type IdentityProvider interface {
	// Resolve determines the initial session state exactly once at startup:
	// a persisted token is validated against the server and the first
	// subscription notification is fired with the outcome. Listeners
	// registered before Resolve are invoked after it completes; listeners
	// registered after receive the resolved state immediately.
	Resolve(ctx context.Context)

	// CreateAccount registers a new account with the given credentials and
	// starts a session for it. Fails with [ErrInvalidCredentialsFormat] if
	// the server rejects the email/password shape and
	// [ErrAccountAlreadyExists] if the email is taken.
	CreateAccount(ctx context.Context, creds models.Credentials) (models.Principal, error)

	// SignIn authenticates with an email/password pair and starts a session.
	// Fails with [ErrInvalidCredentials] on a password mismatch and
	// [ErrAccountNotFound] for an unknown email.
	SignIn(ctx context.Context, email, password string) (models.Principal, error)

	// SignInFederated delegates to the external provider's hosted consent
	// flow and exchanges the resulting identity token for a portal session.
	// Fails with [ErrFederatedFlowCancelled] if the user abandons the flow
	// and [ErrFederatedFlowFailed] for any other flow failure.
	SignInFederated(ctx context.Context) (models.Principal, error)

	// UpdateProfile merges the non-nil fields of update into the current
	// session's principal. Fails with [ErrNoActiveSession] when no session
	// is active.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error

	// SignOut ends the session. The local session always clears and the
	// returned error is always nil; the server-side invalidation is
	// fire-and-forget and its failure is not observable to the caller.
	SignOut(ctx context.Context) error

	// Subscribe registers fn to be invoked with the current principal
	// (nil when unauthenticated) once immediately if the initial state has
	// resolved, and again on every subsequent session change. The returned
	// handle deregisters the listener; invoking it more than once is a no-op
	// after the first call.
	Subscribe(fn func(principal *models.Principal)) (unsubscribe func())

	// Token returns the bearer token of the active session, or an empty
	// string when no session is active.
	Token() string
}

// CatalogClient defines the movie and favorites CRUD surface of the portal
// server. Mutating calls require a bearer token set via SetToken.
type CatalogClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty string clears it.
	SetToken(token string)

	// ListMovies fetches the catalog entries matching filter.
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)

	// FeaturedMovies fetches the limit highest-rated catalog entries.
	FeaturedMovies(ctx context.Context, limit int) ([]models.Movie, error)

	// GetMovie fetches a single catalog entry by ID. Fails with
	// [ErrNotFound] for an unknown ID.
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)

	// CreateMovie adds a new catalog entry and returns it with
	// server-assigned fields populated.
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)

	// UpdateMovie pushes a partial update of a single catalog entry.
	UpdateMovie(ctx context.Context, update models.MovieUpdate) error

	// DeleteMovie removes a catalog entry by ID.
	DeleteMovie(ctx context.Context, movieID int64) error

	// AddFavorite marks a catalog entry as a favorite of userEmail.
	AddFavorite(ctx context.Context, userEmail string, movieID int64) (models.Favorite, error)

	// ListFavorites fetches all favorites of userEmail together with the
	// full catalog entries they point at.
	ListFavorites(ctx context.Context, userEmail string) (models.FavoriteListResponse, error)

	// RemoveFavorite deletes a favorite link by its ID.
	RemoveFavorite(ctx context.Context, favoriteID int64) error
}

// ConsentFlow runs the external provider's hosted consent flow and returns
// the raw identity token it produced. Implementations block until the flow
// completes, fails, or ctx is cancelled.
type ConsentFlow interface {
	Authorize(ctx context.Context) (string, error)
}
