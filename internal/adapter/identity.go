package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/go-resty/resty/v2"
	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/utils"
	"github.com/movieportal/movie-portal/models"
)

type httpIdentityProvider struct {
	client *resty.Client
	flow   ConsentFlow
	logger *logger.Logger

	mu        sync.RWMutex
	token     string
	current   *models.Principal
	resolved  bool
	listeners map[int]func(*models.Principal)
	nextID    int
}

// NewHTTPIdentityProvider constructs the REST implementation of
// [IdentityProvider] pointed at the portal server.
//
// persistedToken is an optional session token recovered from the local store;
// it is validated during Resolve before any listener sees an authenticated
// state. flow runs the external consent flow for SignInFederated and may be
// nil when federated sign-in is not configured.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPIdentityProvider(adapterCfg config.ClientAdapter, flow ConsentFlow, persistedToken string, logger *logger.Logger) (IdentityProvider, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpIdentityProvider{
		client:    client,
		flow:      flow,
		logger:    logger,
		token:     strings.TrimSpace(persistedToken),
		listeners: make(map[int]func(*models.Principal)),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Resolve implements [IdentityProvider]. With no persisted token the session
// resolves straight to unauthenticated. Otherwise the token is validated via
// GET /api/auth/me; any failure (including a network one) clears the token
// and resolves to unauthenticated rather than leaving listeners waiting.
func (h *httpIdentityProvider) Resolve(ctx context.Context) {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token == "" {
		h.clearSession()
		return
	}

	var principal models.Principal
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&principal).
		Get("/api/auth/me")
	if err != nil || !isSuccess(resp) {
		h.logger.Warn().Err(err).Msg("persisted session token rejected, resolving unauthenticated")
		h.clearSession()
		return
	}

	h.establishSession(principal, token)
}

// CreateAccount implements [IdentityProvider]. It POSTs the credentials to
// POST /api/auth/register; on success the bearer token is extracted from the
// Authorization response header and a new session is established before the
// principal is returned.
func (h *httpIdentityProvider) CreateAccount(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	var principal models.Principal

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&principal).
		Post("/api/auth/register")
	if err != nil {
		return models.Principal{}, networkErr("create account", err)
	}
	if err = mapCreateAccountError(resp); err != nil {
		return models.Principal{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Principal{}, fmt.Errorf("create account parse bearer token: %w", err)
	}

	h.establishSession(principal, token)
	return principal, nil
}

// SignIn implements [IdentityProvider]. It POSTs the email/password pair to
// POST /api/auth/login and establishes a session from the response.
func (h *httpIdentityProvider) SignIn(ctx context.Context, email, password string) (models.Principal, error) {
	var principal models.Principal

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Email: email, Password: password}).
		SetResult(&principal).
		Post("/api/auth/login")
	if err != nil {
		return models.Principal{}, networkErr("sign in", err)
	}
	if err = mapSignInError(resp); err != nil {
		return models.Principal{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Principal{}, fmt.Errorf("sign in parse bearer token: %w", err)
	}

	h.establishSession(principal, token)
	return principal, nil
}

// SignInFederated implements [IdentityProvider]. The consent flow produces an
// identity token from the external provider; the token is exchanged at
// POST /api/auth/federated for a portal session.
func (h *httpIdentityProvider) SignInFederated(ctx context.Context) (models.Principal, error) {
	if h.flow == nil {
		return models.Principal{}, fmt.Errorf("%w: consent flow not configured", ErrFederatedFlowFailed)
	}

	idToken, err := h.flow.Authorize(ctx)
	if err != nil {
		switch {
		case errors.Is(err, ErrFederatedFlowCancelled) || errors.Is(err, ErrFederatedFlowFailed):
			return models.Principal{}, err
		case errors.Is(err, context.Canceled):
			return models.Principal{}, fmt.Errorf("%w: %v", ErrFederatedFlowCancelled, err)
		default:
			return models.Principal{}, fmt.Errorf("%w: %v", ErrFederatedFlowFailed, err)
		}
	}

	var principal models.Principal
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FederatedSignInRequest{IDToken: idToken}).
		SetResult(&principal).
		Post("/api/auth/federated")
	if err != nil {
		return models.Principal{}, networkErr("federated sign in", err)
	}
	if !isSuccess(resp) {
		return models.Principal{}, fmt.Errorf("%w: %s", ErrFederatedFlowFailed, statusBody(resp))
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Principal{}, fmt.Errorf("federated sign in parse bearer token: %w", err)
	}

	h.establishSession(principal, token)
	return principal, nil
}

// UpdateProfile implements [IdentityProvider]. The partial update is pushed
// to PATCH /api/auth/profile, then merged into the locally held principal so
// the next notification carries the fresh snapshot.
func (h *httpIdentityProvider) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	h.mu.RLock()
	token := h.token
	current := h.current
	h.mu.RUnlock()

	if token == "" || current == nil {
		return ErrNoActiveSession
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token).
		SetBody(update).
		Patch("/api/auth/profile")
	if err != nil {
		return networkErr("update profile", err)
	}
	if err = mapProfileError(resp); err != nil {
		return err
	}

	overlay := models.Principal{}
	if update.Name != nil {
		overlay.Name = *update.Name
	}
	if update.PhotoURL != nil {
		overlay.PhotoURL = *update.PhotoURL
	}

	h.mu.Lock()
	merged := *h.current
	if err = mergo.Merge(&merged, overlay, mergo.WithOverride); err != nil {
		h.mu.Unlock()
		return fmt.Errorf("merge profile update: %w", err)
	}
	h.current = &merged
	h.mu.Unlock()

	h.notify()
	return nil
}

// SignOut implements [IdentityProvider]. The local session clears and
// listeners are notified before the server-side invalidation is attempted in
// the background; a failure of the remote half is logged and never surfaced.
func (h *httpIdentityProvider) SignOut(_ context.Context) error {
	h.mu.Lock()
	token := h.token
	h.token = ""
	h.current = nil
	h.resolved = true
	h.mu.Unlock()

	h.notify()

	if token != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_, err := h.client.R().
				SetContext(ctx).
				SetAuthToken(token).
				Post("/api/auth/logout")
			if err != nil {
				h.logger.Warn().Err(err).Msg("remote sign-out failed")
			}
		}()
	}

	return nil
}

// Subscribe implements [IdentityProvider].
func (h *httpIdentityProvider) Subscribe(fn func(principal *models.Principal)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	resolved := h.resolved
	snapshot := h.snapshotLocked()
	h.mu.Unlock()

	if resolved {
		fn(snapshot)
	}

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

// Token implements [IdentityProvider].
func (h *httpIdentityProvider) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpIdentityProvider) establishSession(principal models.Principal, token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.current = &principal
	h.resolved = true
	h.mu.Unlock()

	h.notify()
}

func (h *httpIdentityProvider) clearSession() {
	h.mu.Lock()
	h.token = ""
	h.current = nil
	h.resolved = true
	h.mu.Unlock()

	h.notify()
}

// notify invokes every listener with its own copy of the current principal.
// Listeners must not retain the pointer past the callback; handing out
// per-listener copies keeps a misbehaving one from corrupting shared state.
func (h *httpIdentityProvider) notify() {
	h.mu.RLock()
	fns := make([]func(*models.Principal), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		h.mu.RLock()
		snapshot := h.snapshotLocked()
		h.mu.RUnlock()
		fn(snapshot)
	}
}

// snapshotLocked returns a copy of the current principal or nil. Callers
// must hold mu.
func (h *httpIdentityProvider) snapshotLocked() *models.Principal {
	if h.current == nil {
		return nil
	}
	cp := *h.current
	return &cp
}
