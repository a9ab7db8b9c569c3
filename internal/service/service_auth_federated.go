package service

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
)

// oidcTokenVerifier implements [IDTokenVerifier] on top of the issuer's
// published OIDC metadata and signing keys.
type oidcTokenVerifier struct {
	verifier *oidc.IDTokenVerifier
	logger   *logger.Logger
}

// NewOIDCTokenVerifier runs OIDC discovery against cfg.IssuerURL and builds
// a verifier bound to cfg.ClientID. Returns (nil, nil) when no issuer is
// configured, which disables federated sign-in.
func NewOIDCTokenVerifier(ctx context.Context, cfg config.Federated, logger *logger.Logger) (IDTokenVerifier, error) {
	if cfg.IssuerURL == "" {
		logger.Info().Msg("no federated issuer configured, federated sign-in disabled")
		return nil, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery for %q failed: %w", cfg.IssuerURL, err)
	}

	return &oidcTokenVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		logger:   logger,
	}, nil
}

// Verify implements [IDTokenVerifier]. It checks the signature, issuer,
// audience and expiry of the raw token and extracts the profile claims.
func (v *oidcTokenVerifier) Verify(ctx context.Context, rawIDToken string) (FederatedClaims, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return FederatedClaims{}, fmt.Errorf("id token verification failed: %w", err)
	}

	var claims FederatedClaims
	if err = idToken.Claims(&claims); err != nil {
		return FederatedClaims{}, fmt.Errorf("id token claims extraction failed: %w", err)
	}

	return claims, nil
}
