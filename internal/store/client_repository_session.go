package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/movieportal/movie-portal/internal/crypto"
	"github.com/movieportal/movie-portal/internal/logger"
)

// ErrLocalSessionNotFound is returned when no token survived the previous
// client run.
var ErrLocalSessionNotFound = errors.New("local session not found")

// localSessionStore is the SQLite-backed implementation of [SessionStore].
// The table holds at most one row; the token is sealed before it touches
// the database.
type localSessionStore struct {
	logger *logger.Logger
	db     *DB
	cipher crypto.TokenCipher
}

// NewLocalSessionStore constructs a [SessionStore] backed by the client
// database.
func NewLocalSessionStore(db *DB, cipher crypto.TokenCipher, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating local session store")
	return &localSessionStore{
		db:     db,
		cipher: cipher,
		logger: logger,
	}
}

// SaveToken seals the bearer token and stores it, replacing any previous
// one.
func (s *localSessionStore) SaveToken(ctx context.Context, token string) error {
	blob, err := s.cipher.Seal(token)
	if err != nil {
		s.logger.Err(err).Str("func", "*localSessionStore.SaveToken").Msg("error: sealing session token")
		return fmt.Errorf("seal session token: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, saveLocalSessionToken, blob); err != nil {
		s.logger.Err(err).Str("func", "*localSessionStore.SaveToken").Msg("error: saving session token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// LoadToken returns the persisted bearer token, or
// [ErrLocalSessionNotFound] when none exists. A blob that no longer opens
// with the current key material is treated as absent.
func (s *localSessionStore) LoadToken(ctx context.Context) (string, error) {
	var blob string
	if err := s.db.QueryRowContext(ctx, getLocalSessionToken).Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLocalSessionNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	token, err := s.cipher.Open(blob)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding persisted token that does not open with the current key")
		return "", ErrLocalSessionNotFound
	}

	return token, nil
}

// ClearToken removes the persisted token. Clearing an absent token is not
// an error.
func (s *localSessionStore) ClearToken(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteLocalSessionToken); err != nil {
		s.logger.Err(err).Str("func", "*localSessionStore.ClearToken").Msg("error: clearing session token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
