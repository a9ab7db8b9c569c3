package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/internal/utils"
	"github.com/movieportal/movie-portal/internal/validators"
	"github.com/movieportal/movie-portal/models"
)

// Account provider labels stored in the users table.
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification (bcrypt),
// federated sign-in and the JWT token lifecycle, using a UserRepository for
// persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// credentialsValidator enforces the email/password format rules before
	// any hashing or storage happens.
	credentialsValidator validators.Validator

	// idTokenVerifier checks federated ID tokens against the configured
	// issuer. May be nil when federated sign-in is not configured.
	idTokenVerifier IDTokenVerifier

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg. verifier may be nil to
// disable federated sign-in.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, verifier IDTokenVerifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		credentialsValidator: validators.NewCredentialsValidator(),
		idTokenVerifier:      verifier,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		logger:               logger,
	}
}

// RegisterUser creates a new password account.
//
// The credentials are validated, the password is bcrypt-hashed, and
// persistence is delegated to the UserRepository. The returned principal
// never carries the hash.
//
// Returns:
//   - [ErrInvalidDataProvided] (wrapping the validator error) on bad input.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see [store.ErrEmailAlreadyExists]).
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if err := a.credentialsValidator.Validate(ctx, creds); err != nil {
		log.Err(err).Str("email", creds.Email).Msg("invalid registration data provided")
		return models.Principal{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Principal{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.userRepository.CreateUser(ctx, models.Principal{
		Email:    strings.ToLower(strings.TrimSpace(creds.Email)),
		Password: hash,
		Name:     creds.Name,
		PhotoURL: creds.PhotoURL,
		Provider: ProviderPassword,
	})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.Principal{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registered.Password = ""
	return registered, nil
}

// Login authenticates an existing password account.
//
// Returns:
//   - [ErrInvalidDataProvided] if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. account not found —
//     see [store.ErrNoUserWasFound]).
//   - [ErrWrongPassword] if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, email, password string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Principal{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Principal{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(found.Password, password) {
		log.Error().
			Int64("id", found.UserID).
			Str("email", found.Email).
			Msg("wrong password")
		return models.Principal{}, ErrWrongPassword
	}

	found.Password = ""
	return found, nil
}

// FederatedLogin verifies the external ID token and upserts the matching
// account. First sign-in creates the account; later ones refresh the display
// name and photo from the fresh claims.
//
// Returns:
//   - [ErrInvalidDataProvided] if the raw token is empty.
//   - [ErrInvalidIDToken] when verification fails or no verifier is
//     configured.
func (a *authService) FederatedLogin(ctx context.Context, rawIDToken string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if rawIDToken == "" {
		return models.Principal{}, ErrInvalidDataProvided
	}
	if a.idTokenVerifier == nil {
		log.Error().Msg("federated sign-in attempted without a configured verifier")
		return models.Principal{}, ErrInvalidIDToken
	}

	claims, err := a.idTokenVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		log.Err(err).Msg("federated id token rejected")
		return models.Principal{}, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}
	if claims.Email == "" {
		return models.Principal{}, fmt.Errorf("%w: token carries no email", ErrInvalidIDToken)
	}

	saved, err := a.userRepository.UpsertFederatedUser(ctx, models.Principal{
		Email:    strings.ToLower(claims.Email),
		Name:     claims.Name,
		PhotoURL: claims.PhotoURL,
		Provider: ProviderGoogle,
	})
	if err != nil {
		log.Err(err).Str("email", claims.Email).Msg("federated user upsert failed")
		return models.Principal{}, fmt.Errorf("federated user upsert failed: %w", err)
	}

	saved.Password = ""
	return saved, nil
}

// GetUser returns the account with the given id, without the credential.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.Principal, error) {
	found, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Principal{}, fmt.Errorf("user search by id failed: %w", err)
	}

	found.Password = ""
	return found, nil
}

// UpdateProfile applies a partial profile change to the account.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Principal, error) {
	log := logger.FromContext(ctx)

	updated, err := a.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.Principal{}, fmt.Errorf("profile update failed: %w", err)
	}

	updated.Password = ""
	return updated, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.Principal) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %v", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates the compact JWT and extracts the claims.
//
// Returns:
//   - [ErrTokenIsExpired] when the token's expiry has passed.
//   - The underlying parse error for any other verification failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("token parsing failed")
		return models.Token{}, err
	}

	return token, nil
}
