package store

const (
	createCachedMoviesTable = `
		CREATE TABLE IF NOT EXISTS cached_movies (
			movie_id      INTEGER PRIMARY KEY,
			poster_url    TEXT NOT NULL DEFAULT '',
			title         TEXT NOT NULL,
			genre         TEXT NOT NULL DEFAULT '',
			duration      INTEGER NOT NULL DEFAULT 0,
			release_year  INTEGER NOT NULL DEFAULT 0,
			rating        INTEGER NOT NULL DEFAULT 0,
			summary       TEXT NOT NULL DEFAULT '',
			creator_email TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMP NOT NULL,
			updated_at    TIMESTAMP NOT NULL
		);`

	createLocalSessionTable = `
		CREATE TABLE IF NOT EXISTS local_session (
			id    INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL
		);`

	deleteAllCachedMovies = `DELETE FROM cached_movies;`

	insertCachedMovie = `
		INSERT INTO cached_movies (
			movie_id,
			poster_url,
			title,
			genre,
			duration,
			release_year,
			rating,
			summary,
			creator_email,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	getCachedMovie = `
		SELECT movie_id, poster_url, title, genre, duration, release_year, rating, summary, creator_email, created_at, updated_at
		FROM cached_movies
		WHERE movie_id = $1;`

	saveLocalSessionToken = `
		INSERT INTO local_session (id, token) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET token = excluded.token;`

	getLocalSessionToken = `SELECT token FROM local_session WHERE id = 1;`

	deleteLocalSessionToken = `DELETE FROM local_session WHERE id = 1;`
)
