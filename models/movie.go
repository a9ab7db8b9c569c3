package models

import "time"

// Movie represents a single catalog entry.
type Movie struct {
	// MovieID is the unique identifier of the entry, assigned by the server.
	MovieID int64 `json:"movie_id"`

	// PosterURL points at the poster image shown in list and detail views.
	PosterURL string `json:"poster_url"`

	// Title is the movie title. Required.
	Title string `json:"title"`

	// Genre is a single genre label (e.g. "Drama", "Action").
	Genre string `json:"genre"`

	// Duration is the running time in minutes.
	Duration int `json:"duration"`

	// ReleaseYear is the four-digit year of release.
	ReleaseYear int `json:"release_year"`

	// Rating is a star rating in the range 1..5.
	Rating int `json:"rating"`

	// Summary is a short free-text description.
	Summary string `json:"summary"`

	// CreatorEmail is the email of the account that added the entry.
	// Mutations are only allowed for the creator.
	CreatorEmail string `json:"creator_email"`

	// CreatedAt is the timestamp when the entry was added.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// MovieUpdate represents a partial update of a single catalog entry.
// Only non-nil fields will be updated.
type MovieUpdate struct {
	// MovieID identifies the record to update. Required.
	MovieID int64 `json:"movie_id"`

	PosterURL   *string `json:"poster_url,omitempty"`
	Title       *string `json:"title,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
	Summary     *string `json:"summary,omitempty"`
}

// MovieFilter represents search criteria for listing catalog entries.
// Zero-valued fields are ignored so an empty filter returns everything.
type MovieFilter struct {
	// Search matches a case-insensitive substring of the title.
	Search string `json:"search,omitempty"`

	// Genre filters by exact genre label.
	Genre string `json:"genre,omitempty"`

	// MinRating keeps only entries rated at or above this value.
	MinRating int `json:"min_rating,omitempty"`

	// Limit caps the number of returned entries. Zero means no cap.
	Limit uint64 `json:"limit,omitempty"`
}
