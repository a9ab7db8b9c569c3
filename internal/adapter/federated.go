package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
	"golang.org/x/oauth2"
)

type consentResult struct {
	code string
	err  error
}

// browserConsentFlow implements [ConsentFlow] with the OAuth2
// authorization-code flow: it opens the provider's hosted consent page in
// the system browser and collects the redirect on a loopback listener.
type browserConsentFlow struct {
	cfg    config.ClientFederated
	logger *logger.Logger

	// openBrowser is swappable in tests.
	openBrowser func(url string) error
}

// NewBrowserConsentFlow constructs a [ConsentFlow] for the configured OIDC
// issuer. OIDC discovery happens lazily inside Authorize so construction
// never touches the network.
func NewBrowserConsentFlow(cfg config.ClientFederated, logger *logger.Logger) ConsentFlow {
	return &browserConsentFlow{cfg: cfg, logger: logger, openBrowser: openSystemBrowser}
}

// Authorize implements [ConsentFlow]. It blocks until the user completes or
// abandons the hosted consent page, then exchanges the authorization code
// and returns the verified raw ID token.
func (f *browserConsentFlow) Authorize(ctx context.Context) (string, error) {
	provider, err := oidc.NewProvider(ctx, f.cfg.IssuerURL)
	if err != nil {
		return "", fmt.Errorf("%w: oidc discovery: %v", ErrFederatedFlowFailed, err)
	}

	listener, err := net.Listen("tcp", f.cfg.CallbackAddress)
	if err != nil {
		return "", fmt.Errorf("%w: callback listener: %v", ErrFederatedFlowFailed, err)
	}
	defer listener.Close()

	oauthCfg := oauth2.Config{
		ClientID:     f.cfg.ClientID,
		ClientSecret: f.cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		RedirectURL:  "http://" + listener.Addr().String() + "/callback",
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	state := uuid.NewString()
	results := make(chan consentResult, 1)
	var once sync.Once
	send := func(res consentResult) {
		once.Do(func() { results <- res })
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			send(consentResult{err: errors.New("state mismatch")})
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}

		if errParam := r.URL.Query().Get("error"); errParam != "" {
			if errParam == "access_denied" {
				send(consentResult{err: ErrFederatedFlowCancelled})
			} else {
				send(consentResult{err: fmt.Errorf("provider error: %s", errParam)})
			}
			http.Error(w, "authorization failed", http.StatusBadRequest)
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			send(consentResult{err: errors.New("missing authorization code")})
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		send(consentResult{code: code})
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "Sign-in complete. You can close this window and return to the terminal.")
	})

	srv := &http.Server{Handler: mux}
	go func() {
		// http.ErrServerClosed is the normal shutdown path.
		if serveErr := srv.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			send(consentResult{err: serveErr})
		}
	}()
	defer srv.Close()

	if err = f.openBrowser(oauthCfg.AuthCodeURL(state)); err != nil {
		return "", fmt.Errorf("%w: open browser: %v", ErrFederatedFlowFailed, err)
	}

	var res consentResult
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrFederatedFlowCancelled, ctx.Err())
	case res = <-results:
	}

	if res.err != nil {
		if errors.Is(res.err, ErrFederatedFlowCancelled) {
			return "", fmt.Errorf("%w: consent denied", ErrFederatedFlowCancelled)
		}
		return "", fmt.Errorf("%w: %v", ErrFederatedFlowFailed, res.err)
	}

	token, err := oauthCfg.Exchange(ctx, res.code)
	if err != nil {
		return "", fmt.Errorf("%w: code exchange: %v", ErrFederatedFlowFailed, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", fmt.Errorf("%w: no id_token in exchange response", ErrFederatedFlowFailed)
	}

	// Verify locally before handing the token to the portal. The server
	// verifies again; failing fast here gives a clearer error to the user.
	verifier := provider.Verifier(&oidc.Config{ClientID: f.cfg.ClientID})
	if _, err = verifier.Verify(ctx, rawIDToken); err != nil {
		return "", fmt.Errorf("%w: id token verification: %v", ErrFederatedFlowFailed, err)
	}

	return rawIDToken, nil
}

func openSystemBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
