package store

import "github.com/movieportal/movie-portal/migrations"

// Migrate applies all pending schema migrations to the wrapped database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
