package service

import (
	"context"

	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/session"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/models"
)

// clientAuthService is the concrete implementation of ClientAuthService.
type clientAuthService struct {
	session  *session.Provider
	sessions store.SessionStore
	logger   *logger.Logger
}

// NewClientAuthService constructs a ClientAuthService over the session
// provider and the local session store.
func NewClientAuthService(provider *session.Provider, sessions store.SessionStore, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		session:  provider,
		sessions: sessions,
		logger:   logger,
	}
}

// Restore settles the initial session state and reconciles the persisted
// token with the outcome: a rejected token is cleared so the next run does
// not retry it.
func (c *clientAuthService) Restore(ctx context.Context) {
	log := c.logger.GetChildLogger()

	c.session.Resolve(ctx)

	if c.session.Snapshot().Authenticated() {
		c.persistToken(ctx)
		return
	}
	if err := c.sessions.ClearToken(ctx); err != nil {
		log.Err(err).Str("func", "*clientAuthService.Restore").Msg("error: clearing stale session token")
	}
}

// SignUp registers a new account and persists the issued token on success.
func (c *clientAuthService) SignUp(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	principal, err := c.session.SignUp(ctx, creds)
	if err != nil {
		return models.Principal{}, err
	}

	c.persistToken(ctx)
	return principal, nil
}

// SignIn authenticates with email and password and persists the issued
// token on success.
func (c *clientAuthService) SignIn(ctx context.Context, email, password string) (models.Principal, error) {
	principal, err := c.session.SignIn(ctx, email, password)
	if err != nil {
		return models.Principal{}, err
	}

	c.persistToken(ctx)
	return principal, nil
}

// SignInFederated runs the federated consent flow and persists the issued
// token on success.
func (c *clientAuthService) SignInFederated(ctx context.Context) (models.Principal, error) {
	principal, err := c.session.SignInFederated(ctx)
	if err != nil {
		return models.Principal{}, err
	}

	c.persistToken(ctx)
	return principal, nil
}

// SignOut ends the session. The persisted token is cleared first so the
// local state never outlives the session, then the provider is signed out.
func (c *clientAuthService) SignOut(ctx context.Context) error {
	log := c.logger.GetChildLogger()

	if err := c.sessions.ClearToken(ctx); err != nil {
		log.Err(err).Str("func", "*clientAuthService.SignOut").Msg("error: clearing persisted session token")
	}

	return c.session.SignOut(ctx)
}

// UpdateProfile edits the signed-in user's display name and photo.
func (c *clientAuthService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	return c.session.UpdateProfile(ctx, update)
}

func (c *clientAuthService) persistToken(ctx context.Context) {
	log := c.logger.GetChildLogger()

	token := c.session.Token()
	if token == "" {
		return
	}
	if err := c.sessions.SaveToken(ctx, token); err != nil {
		log.Err(err).Str("func", "*clientAuthService.persistToken").Msg("error: persisting session token")
	}
}
