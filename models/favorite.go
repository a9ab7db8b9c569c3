package models

import "time"

// Favorite links an account to a catalog entry it has marked.
// The pair (UserEmail, MovieID) is unique.
type Favorite struct {
	// FavoriteID is the unique identifier of the link, assigned by the server.
	FavoriteID int64 `json:"favorite_id"`

	// UserEmail is the email of the account that added the favorite.
	UserEmail string `json:"user_email"`

	// MovieID is the catalog entry being favorited.
	MovieID int64 `json:"movie_id"`

	// CreatedAt is the timestamp when the favorite was added.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
