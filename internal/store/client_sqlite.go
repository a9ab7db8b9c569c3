package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/movieportal/movie-portal/internal/config"
	"github.com/movieportal/movie-portal/internal/logger"
)

// inMemoryDSN selects a throwaway SQLite database that lives only for the
// lifetime of the process.
const inMemoryDSN = ":memory:"

// NewConnectSQLite opens (creating the file if needed), pings and
// bootstraps the local client database.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{DB: conn, logger: log}
	if err = db.bootstrapClientSchema(ctx); err != nil {
		return nil, fmt.Errorf("error bootstrapping client schema: %w", err)
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == inMemoryDSN {
		return nil
	}
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// bootstrapClientSchema creates the local tables on first run. The client
// schema is tiny and device-local, so it is managed inline rather than
// through versioned migrations.
func (db *DB) bootstrapClientSchema(ctx context.Context) error {
	for _, ddl := range []string{createCachedMoviesTable, createLocalSessionTable} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
	}

	return nil
}
