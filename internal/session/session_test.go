package session

import (
	"context"
	"testing"

	"github.com/movieportal/movie-portal/internal/adapter"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdentity drives the provider the way the HTTP adapter does: operations
// succeed or fail per the configured stubs and successful ones notify the
// registered listeners synchronously.
type fakeIdentity struct {
	persisted *models.Principal

	signInPrincipal models.Principal
	signInErr       error
	createErr       error
	profileErr      error

	listeners map[int]func(*models.Principal)
	nextID    int
	current   *models.Principal
	resolved  bool
	token     string
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{listeners: map[int]func(*models.Principal){}}
}

func (f *fakeIdentity) Resolve(ctx context.Context) {
	f.resolved = true
	f.current = f.persisted
	f.notify()
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	if f.createErr != nil {
		return models.Principal{}, f.createErr
	}
	p := models.Principal{Email: creds.Email, Name: creds.Name}
	f.establish(p)
	return p, nil
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (models.Principal, error) {
	if f.signInErr != nil {
		return models.Principal{}, f.signInErr
	}
	f.establish(f.signInPrincipal)
	return f.signInPrincipal, nil
}

func (f *fakeIdentity) SignInFederated(ctx context.Context) (models.Principal, error) {
	return f.SignIn(ctx, "", "")
}

func (f *fakeIdentity) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	if f.profileErr != nil {
		return f.profileErr
	}
	if f.current != nil && update.Name != nil {
		cp := *f.current
		cp.Name = *update.Name
		f.current = &cp
	}
	f.notify()
	return nil
}

func (f *fakeIdentity) SignOut(ctx context.Context) error {
	f.current = nil
	f.token = ""
	f.notify()
	return nil
}

func (f *fakeIdentity) Subscribe(fn func(*models.Principal)) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	if f.resolved {
		fn(f.current)
	}
	return func() { delete(f.listeners, id) }
}

func (f *fakeIdentity) Token() string { return f.token }

func (f *fakeIdentity) establish(p models.Principal) {
	f.current = &p
	f.resolved = true
	f.token = "fake-token"
	f.notify()
}

func (f *fakeIdentity) notify() {
	for _, fn := range f.listeners {
		fn(f.current)
	}
}

var _ adapter.IdentityProvider = (*fakeIdentity)(nil)

func newTestProvider(f *fakeIdentity) *Provider {
	return NewProvider(f, logger.Nop())
}

func TestProvider_StartsUnknownAndLoading(t *testing.T) {
	p := newTestProvider(newFakeIdentity())
	defer p.Close()

	got := p.Snapshot()
	assert.Equal(t, StateUnknown, got.State)
	assert.True(t, got.Loading)
	assert.Nil(t, got.Principal)
}

func TestProvider_ResolveWithoutPersistedSession(t *testing.T) {
	p := newTestProvider(newFakeIdentity())
	defer p.Close()

	p.Resolve(context.Background())

	got := p.Snapshot()
	assert.Equal(t, StateUnauthenticated, got.State)
	assert.False(t, got.Loading)
}

func TestProvider_ResolveWithPersistedSession(t *testing.T) {
	f := newFakeIdentity()
	f.persisted = &models.Principal{UserID: 1, Email: "a@example.com"}

	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())

	got := p.Snapshot()
	assert.Equal(t, StateAuthenticated, got.State)
	require.NotNil(t, got.Principal)
	assert.Equal(t, "a@example.com", got.Principal.Email)
}

func TestProvider_UnknownOccursAtMostOnce(t *testing.T) {
	f := newFakeIdentity()
	p := newTestProvider(f)
	defer p.Close()

	var states []State
	p.Subscribe(func(s Snapshot) { states = append(states, s.State) })

	p.Resolve(context.Background())
	f.signInPrincipal = models.Principal{UserID: 1, Email: "a@example.com"}
	_, err := p.SignIn(context.Background(), "a@example.com", "Passw0rd")
	require.NoError(t, err)
	require.NoError(t, p.SignOut(context.Background()))

	require.NotEmpty(t, states)
	assert.Equal(t, StateUnknown, states[0])
	for _, s := range states[1:] {
		assert.NotEqual(t, StateUnknown, s, "unknown may only appear before the initial resolution")
	}
}

func TestProvider_SignInSuccess(t *testing.T) {
	f := newFakeIdentity()
	f.signInPrincipal = models.Principal{UserID: 1, Email: "a@example.com"}

	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())

	got, err := p.SignIn(context.Background(), "a@example.com", "Passw0rd")

	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)
	assert.True(t, p.Snapshot().Authenticated())
	assert.False(t, p.Loading(), "the identity callback settles loading")
	assert.Equal(t, "fake-token", p.Token())
}

func TestProvider_SignInFailureKeepsPreviousState(t *testing.T) {
	f := newFakeIdentity()
	f.signInErr = adapter.ErrInvalidCredentials

	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())

	_, err := p.SignIn(context.Background(), "a@example.com", "nope")

	assert.ErrorIs(t, err, adapter.ErrInvalidCredentials)
	got := p.Snapshot()
	assert.Equal(t, StateUnauthenticated, got.State)
	assert.False(t, got.Loading, "a failed intent must not leave the session loading")
}

func TestProvider_LoadingVisibleDuringIntent(t *testing.T) {
	f := newFakeIdentity()
	f.signInPrincipal = models.Principal{UserID: 1, Email: "a@example.com"}

	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())

	var sawLoading bool
	p.Subscribe(func(s Snapshot) {
		if s.Loading {
			sawLoading = true
		}
	})

	_, err := p.SignIn(context.Background(), "a@example.com", "Passw0rd")
	require.NoError(t, err)

	assert.True(t, sawLoading, "subscribers observe the loading phase of an intent")
	assert.False(t, p.Loading())
}

func TestProvider_SignOutAlwaysSucceeds(t *testing.T) {
	f := newFakeIdentity()
	f.signInPrincipal = models.Principal{UserID: 1, Email: "a@example.com"}

	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())
	_, err := p.SignIn(context.Background(), "a@example.com", "Passw0rd")
	require.NoError(t, err)

	require.NoError(t, p.SignOut(context.Background()))

	got := p.Snapshot()
	assert.Equal(t, StateUnauthenticated, got.State)
	assert.Nil(t, got.Principal)
	assert.False(t, got.Loading)
}

func TestProvider_SubscribeFiresImmediately(t *testing.T) {
	f := newFakeIdentity()
	f.persisted = &models.Principal{UserID: 1, Email: "a@example.com"}

	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())

	var fired int
	var got Snapshot
	p.Subscribe(func(s Snapshot) { fired++; got = s })

	assert.Equal(t, 1, fired)
	assert.Equal(t, StateAuthenticated, got.State)
}

func TestProvider_UnsubscribeIsIdempotent(t *testing.T) {
	f := newFakeIdentity()
	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())

	first, second := 0, 0
	unsub := p.Subscribe(func(Snapshot) { first++ })
	p.Subscribe(func(Snapshot) { second++ })

	unsub()
	unsub()

	require.NoError(t, p.SignOut(context.Background()))

	assert.Equal(t, 1, first, "removed listener only saw the immediate fire")
	assert.Greater(t, second, 1)
}

func TestProvider_SnapshotPrincipalIsACopy(t *testing.T) {
	f := newFakeIdentity()
	f.persisted = &models.Principal{UserID: 1, Email: "a@example.com", Name: "Alice"}

	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())

	first := p.Snapshot()
	first.Principal.Name = "Mallory"

	assert.Equal(t, "Alice", p.Snapshot().Principal.Name)
}

func TestProvider_UpdateProfileRequiresSession(t *testing.T) {
	f := newFakeIdentity()
	f.profileErr = adapter.ErrNoActiveSession

	p := newTestProvider(f)
	defer p.Close()
	p.Resolve(context.Background())

	name := "New Name"
	err := p.UpdateProfile(context.Background(), models.ProfileUpdate{Name: &name})

	assert.ErrorIs(t, err, adapter.ErrNoActiveSession)
	assert.False(t, p.Loading())
}

func TestProvider_CloseStopsNotifications(t *testing.T) {
	f := newFakeIdentity()
	p := newTestProvider(f)
	p.Resolve(context.Background())

	fired := 0
	p.Subscribe(func(Snapshot) { fired++ })
	before := fired

	p.Close()
	p.Close() // idempotent

	f.signInPrincipal = models.Principal{UserID: 1}
	_, _ = f.SignIn(context.Background(), "a@example.com", "Passw0rd")

	assert.Equal(t, before, fired, "no notifications after close")
	assert.Empty(t, f.listeners, "close detaches from the identity adapter")
}
