package store

const (
	createUser = `INSERT INTO users (email, password_hash, name, photo_url, provider)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, password_hash, name, photo_url, provider, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, photo_url, provider, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, photo_url, provider, created_at
    FROM users
    WHERE user_id = $1;`

	upsertFederatedUser = `INSERT INTO users (email, password_hash, name, photo_url, provider)
    VALUES ($1, '', $2, $3, $4)
    ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, photo_url = EXCLUDED.photo_url
    RETURNING user_id, email, password_hash, name, photo_url, provider, created_at;`

	createMovie = `INSERT INTO movies (poster_url, title, genre, duration, release_year, rating, summary, creator_email)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING movie_id, poster_url, title, genre, duration, release_year, rating, summary, creator_email, created_at, updated_at;`

	getMovie = `SELECT movie_id, poster_url, title, genre, duration, release_year, rating, summary, creator_email, created_at, updated_at
    FROM movies
    WHERE movie_id = $1;`

	deleteMovie = `DELETE FROM movies
    WHERE movie_id = $1;`

	createFavorite = `INSERT INTO favorites (user_email, movie_id)
    VALUES ($1, $2)
    RETURNING favorite_id, user_email, movie_id, created_at;`

	getFavorite = `SELECT favorite_id, user_email, movie_id, created_at
    FROM favorites
    WHERE favorite_id = $1;`

	listFavoritesByEmail = `SELECT favorite_id, user_email, movie_id, created_at
    FROM favorites
    WHERE user_email = $1
    ORDER BY created_at DESC;`

	deleteFavorite = `DELETE FROM favorites
    WHERE favorite_id = $1;`
)
