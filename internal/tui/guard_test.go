package tui

import (
	"context"
	"testing"

	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/session"
	"github.com/movieportal/movie-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubIdentity is the minimal identity adapter needed to drive the session
// provider through the guard tests.
type stubIdentity struct {
	persisted *models.Principal

	listeners []func(*models.Principal)
	current   *models.Principal
	resolved  bool
}

func (s *stubIdentity) Resolve(ctx context.Context) {
	s.resolved = true
	s.current = s.persisted
	s.notify()
}

func (s *stubIdentity) CreateAccount(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	p := models.Principal{Email: creds.Email}
	s.current = &p
	s.resolved = true
	s.notify()
	return p, nil
}

func (s *stubIdentity) SignIn(ctx context.Context, email, password string) (models.Principal, error) {
	p := models.Principal{Email: email}
	s.current = &p
	s.resolved = true
	s.notify()
	return p, nil
}

func (s *stubIdentity) SignInFederated(ctx context.Context) (models.Principal, error) {
	return s.SignIn(ctx, "federated@example.com", "")
}

func (s *stubIdentity) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	return nil
}

func (s *stubIdentity) SignOut(ctx context.Context) error {
	s.current = nil
	s.notify()
	return nil
}

func (s *stubIdentity) Subscribe(fn func(*models.Principal)) func() {
	s.listeners = append(s.listeners, fn)
	if s.resolved {
		fn(s.current)
	}
	return func() {}
}

func (s *stubIdentity) Token() string { return "" }

func (s *stubIdentity) notify() {
	for _, fn := range s.listeners {
		fn(s.current)
	}
}

func newGuardFixture(t *testing.T, persisted *models.Principal, resolve bool) (*Guard, *session.Provider) {
	t.Helper()
	stub := &stubIdentity{persisted: persisted}
	provider := session.NewProvider(stub, logger.Nop())
	t.Cleanup(provider.Close)
	if resolve {
		provider.Resolve(context.Background())
	}
	return NewGuard(provider), provider
}

func TestGuard_PublicRouteAlwaysAllowed(t *testing.T) {
	guard, _ := newGuardFixture(t, nil, false)

	decision, route := guard.Check(RouteMovies)

	assert.Equal(t, DecisionAllow, decision)
	assert.Equal(t, RouteMovies, route)
}

func TestGuard_WaitsWhileSessionUnresolved(t *testing.T) {
	guard, _ := newGuardFixture(t, nil, false)

	decision, route := guard.Check(RouteFavorites)

	assert.Equal(t, DecisionWait, decision, "an unresolved session must never cause a redirect")
	assert.Equal(t, RouteWaiting, route)

	_, pending := guard.ConsumeIntent()
	assert.False(t, pending, "waiting records no intent")
}

func TestGuard_AllowsAuthenticated(t *testing.T) {
	guard, _ := newGuardFixture(t, &models.Principal{UserID: 1, Email: "a@example.com"}, true)

	decision, route := guard.Check(RouteProfile)

	assert.Equal(t, DecisionAllow, decision)
	assert.Equal(t, RouteProfile, route)
}

func TestGuard_RedirectsUnauthenticatedWithIntent(t *testing.T) {
	guard, _ := newGuardFixture(t, nil, true)

	decision, route := guard.Check(RouteAddMovie)

	assert.Equal(t, DecisionRedirect, decision)
	assert.Equal(t, RouteLogin, route)

	intent, ok := guard.ConsumeIntent()
	require.True(t, ok)
	assert.Equal(t, RouteAddMovie, intent)
}

func TestGuard_IntentConsumedExactlyOnce(t *testing.T) {
	guard, _ := newGuardFixture(t, nil, true)
	guard.Check(RouteFavorites)

	intent, ok := guard.ConsumeIntent()
	require.True(t, ok)
	assert.Equal(t, RouteFavorites, intent)

	_, ok = guard.ConsumeIntent()
	assert.False(t, ok, "a second consumption finds nothing")
}

func TestGuard_LaterRedirectOverwritesIntent(t *testing.T) {
	guard, _ := newGuardFixture(t, nil, true)

	guard.Check(RouteFavorites)
	guard.Check(RouteProfile)

	intent, ok := guard.ConsumeIntent()
	require.True(t, ok)
	assert.Equal(t, RouteProfile, intent, "the most recent attempt wins")
}

func TestGuard_ClearIntent(t *testing.T) {
	guard, _ := newGuardFixture(t, nil, true)
	guard.Check(RouteFavorites)

	guard.ClearIntent()

	_, ok := guard.ConsumeIntent()
	assert.False(t, ok)
}

func TestGuard_SignInThenRetryAllowed(t *testing.T) {
	guard, provider := newGuardFixture(t, nil, true)

	decision, _ := guard.Check(RouteFavorites)
	require.Equal(t, DecisionRedirect, decision)

	_, err := provider.SignIn(context.Background(), "a@example.com", "Passw0rd")
	require.NoError(t, err)

	intent, ok := guard.ConsumeIntent()
	require.True(t, ok)

	decision, route := guard.Check(intent)
	assert.Equal(t, DecisionAllow, decision)
	assert.Equal(t, RouteFavorites, route)
}
