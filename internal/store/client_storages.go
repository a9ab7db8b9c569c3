package store

import (
	"context"
	"fmt"

	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/crypto"
	"github.com/movieportal/movie-portal/internal/logger"
)

// ClientStorages groups the client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// CatalogCache is the SQLite-backed local copy of the movie catalog.
	CatalogCache CatalogCache

	// SessionStore persists the bearer token between runs.
	SessionStore SessionStore
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite database named by cfg.DB.DSN (creating the file on first run),
// bootstraps the schema and wires the repositories. The persisted session
// token is sealed with key material kept in a file next to the database;
// an in-memory database gets ephemeral material instead.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	material, err := keyMaterialFor(cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("session key material error: %w", err)
	}

	cipher, err := crypto.NewTokenCipher(material)
	if err != nil {
		return nil, fmt.Errorf("token cipher error: %w", err)
	}

	return &ClientStorages{
		CatalogCache: NewLocalCatalogCache(db, logger),
		SessionStore: NewLocalSessionStore(db, cipher, logger),
	}, nil
}

func keyMaterialFor(dsn string) ([]byte, error) {
	if dsn == inMemoryDSN {
		return crypto.NewRandomKeyMaterial()
	}
	return crypto.LoadOrCreateKeyFile(dsn + ".key")
}
