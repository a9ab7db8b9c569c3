// Package session tracks the signed-in account state on the client side.
//
// The [Provider] sits between the identity adapter and the TUI: it owns the
// authoritative view of the session (unknown, authenticated, unauthenticated),
// exposes it as immutable snapshots and fans state changes out to subscribers.
// Every state-changing operation goes through the provider so that concurrent
// intents are serialized and the adapter callback stays the single writer.
package session

import (
	"context"
	"sync"

	"github.com/movieportal/movie-portal/internal/adapter"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
)

// State describes what the provider currently knows about the session.
type State int

const (
	// StateUnknown is the initial state before the persisted session has
	// been resolved. It occurs at most once per provider lifetime.
	StateUnknown State = iota
	// StateAuthenticated means a principal is signed in.
	StateAuthenticated
	// StateUnauthenticated means no principal is signed in.
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the session. The Principal pointer is
// owned by the receiver; the provider never mutates a handed-out snapshot.
type Snapshot struct {
	State     State
	Principal *models.Principal
	// Loading is true from the moment a state-changing intent starts until
	// the identity callback (or the intent's error path) settles it.
	Loading bool
}

// Authenticated reports whether the snapshot carries a signed-in principal.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.Principal != nil
}

// Provider owns the client session state. Construct with [NewProvider] and
// release with [Provider.Close]; there is no package-level instance.
type Provider struct {
	identity adapter.IdentityProvider
	logger   *logger.Logger

	mu        sync.RWMutex
	state     State
	principal *models.Principal
	loading   bool
	closed    bool
	listeners map[int]func(Snapshot)
	nextID    int

	// opMu serializes state-changing intents. The identity adapter notifies
	// synchronously, so whichever intent runs last also settles last: a
	// sign-out issued after an in-flight sign-in always wins.
	opMu sync.Mutex

	unsubscribe func()
}

// NewProvider wires a provider to the identity adapter. The provider starts
// in [StateUnknown] with Loading set; call [Provider.Resolve] to settle the
// initial state from the persisted session.
func NewProvider(identity adapter.IdentityProvider, logger *logger.Logger) *Provider {
	p := &Provider{
		identity:  identity,
		logger:    logger.GetChildLogger(),
		state:     StateUnknown,
		loading:   true,
		listeners: make(map[int]func(Snapshot)),
	}
	p.unsubscribe = identity.Subscribe(p.apply)
	return p
}

// Resolve settles the initial session state from whatever token survived the
// previous run. The adapter callback transitions the provider out of
// [StateUnknown]; that transition happens exactly once.
func (p *Provider) Resolve(ctx context.Context) {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	p.identity.Resolve(ctx)
}

// apply is the identity subscription callback and the only writer of the
// resolved state. A nil principal means unauthenticated.
func (p *Provider) apply(principal *models.Principal) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	if principal != nil {
		p.state = StateAuthenticated
	} else {
		p.state = StateUnauthenticated
	}
	p.principal = principal
	p.loading = false
	p.mu.Unlock()

	p.logger.Debug().Stringer("state", p.Snapshot().State).Msg("session state settled")
	p.notify()
}

// Snapshot returns the current session state.
func (p *Provider) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

// Loading reports whether a state-changing intent is still settling.
func (p *Provider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Principal returns the signed-in principal or nil.
func (p *Provider) Principal() *models.Principal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.principal
}

// Token exposes the adapter's current bearer token, used by callers that
// persist the session between runs.
func (p *Provider) Token() string {
	return p.identity.Token()
}

// Subscribe registers fn for session changes. It fires once immediately with
// the current snapshot and then on every settled change. The returned
// function removes the listener; calling it more than once is harmless.
func (p *Provider) Subscribe(fn func(Snapshot)) func() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return func() {}
	}
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	snapshot := p.snapshotLocked()
	p.mu.Unlock()

	fn(snapshot)

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

// SignUp creates an account and signs it in.
func (p *Provider) SignUp(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	return p.runAuth(func() (models.Principal, error) {
		return p.identity.CreateAccount(ctx, creds)
	})
}

// SignIn authenticates with an email/password pair.
func (p *Provider) SignIn(ctx context.Context, email, password string) (models.Principal, error) {
	return p.runAuth(func() (models.Principal, error) {
		return p.identity.SignIn(ctx, email, password)
	})
}

// SignInFederated authenticates through the external consent flow.
func (p *Provider) SignInFederated(ctx context.Context) (models.Principal, error) {
	return p.runAuth(func() (models.Principal, error) {
		return p.identity.SignInFederated(ctx)
	})
}

// SignOut ends the session. It never fails: the local session is always
// cleared even when the server cannot be reached.
func (p *Provider) SignOut(ctx context.Context) error {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	p.beginIntent()
	return p.identity.SignOut(ctx)
}

// UpdateProfile applies a partial profile change to the signed-in principal.
func (p *Provider) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	p.beginIntent()
	if err := p.identity.UpdateProfile(ctx, update); err != nil {
		p.failIntent()
		return err
	}
	return nil
}

// Close detaches the provider from the identity adapter and drops all
// listeners. Further intents are ignored. Close is idempotent.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.listeners = make(map[int]func(Snapshot))
	unsub := p.unsubscribe
	p.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// runAuth executes a sign-in style intent under the single-flight lock.
// The adapter notifies on success, which clears loading through apply; the
// error path clears it here while leaving the previous state untouched.
func (p *Provider) runAuth(op func() (models.Principal, error)) (models.Principal, error) {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	p.beginIntent()
	principal, err := op()
	if err != nil {
		p.failIntent()
		return models.Principal{}, err
	}
	return principal, nil
}

func (p *Provider) beginIntent() {
	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	p.notify()
}

// failIntent restores the pre-intent resolved state after a failed operation.
func (p *Provider) failIntent() {
	p.mu.Lock()
	p.loading = false
	p.mu.Unlock()

	p.notify()
}

func (p *Provider) notify() {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return
	}
	fns := make([]func(Snapshot), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	snapshot := p.snapshotLocked()
	p.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// snapshotLocked builds a snapshot with a defensive principal copy. Callers
// must hold mu.
func (p *Provider) snapshotLocked() Snapshot {
	s := Snapshot{State: p.state, Loading: p.loading}
	if p.principal != nil {
		cp := *p.principal
		s.Principal = &cp
	}
	return s
}
