package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/movieportal/movie-portal/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldPosterURL targets the poster image reference of a catalog entry.
	FieldPosterURL = "poster_url"

	// FieldTitle targets the title of a catalog entry.
	FieldTitle = "title"

	// FieldGenre targets the genre label of a catalog entry.
	FieldGenre = "genre"

	// FieldDuration targets the running time in minutes.
	FieldDuration = "duration"

	// FieldReleaseYear targets the four-digit year of release.
	FieldReleaseYear = "release_year"

	// FieldRating targets the star rating (1..5).
	FieldRating = "rating"

	// FieldSummary targets the free-text description.
	FieldSummary = "summary"

	// FieldCreatorEmail targets the email of the account that added the entry.
	FieldCreatorEmail = "creator_email"
)

const (
	minTitleLength   = 2
	minDuration      = 60
	minSummaryLength = 10
	firstFilmYear    = 1888
	minRating        = 1
	maxRating        = 5
)

// MovieValidator enforces the catalog entry rules: required poster and
// title, duration above an hour, sane release year and a 1..5 star rating.
type MovieValidator struct {
}

func NewMovieValidator() Validator {
	return &MovieValidator{}
}

func (v *MovieValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Movie:
		return v.validateMovie(ctx, value, fields...)
	case *models.Movie:
		return v.validateMovie(ctx, *value, fields...)

	case models.MovieUpdate:
		return v.validateMovieUpdate(ctx, value)
	case *models.MovieUpdate:
		return v.validateMovieUpdate(ctx, *value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *MovieValidator) validateMovie(_ context.Context, movie models.Movie, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldPosterURL, FieldTitle, FieldGenre, FieldDuration,
			FieldReleaseYear, FieldRating, FieldSummary, FieldCreatorEmail,
		}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldPosterURL:
			err = validatePosterURL(movie.PosterURL)
		case FieldTitle:
			err = validateTitle(movie.Title)
		case FieldGenre:
			if strings.TrimSpace(movie.Genre) == "" {
				err = ErrEmptyGenre
			}
		case FieldDuration:
			err = validateDuration(movie.Duration)
		case FieldReleaseYear:
			err = validateReleaseYear(movie.ReleaseYear)
		case FieldRating:
			err = validateRating(movie.Rating)
		case FieldSummary:
			err = validateSummary(movie.Summary)
		case FieldCreatorEmail:
			if strings.TrimSpace(movie.CreatorEmail) == "" {
				err = ErrEmptyCreatorEmail
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateMovieUpdate checks only the supplied fields; a fully empty update
// is rejected.
func (v *MovieValidator) validateMovieUpdate(_ context.Context, update models.MovieUpdate) error {
	if update.PosterURL == nil && update.Title == nil && update.Genre == nil &&
		update.Duration == nil && update.ReleaseYear == nil && update.Rating == nil &&
		update.Summary == nil {
		return ErrNoFieldsToUpdate
	}

	if update.PosterURL != nil {
		if err := validatePosterURL(*update.PosterURL); err != nil {
			return err
		}
	}
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Genre != nil && strings.TrimSpace(*update.Genre) == "" {
		return ErrEmptyGenre
	}
	if update.Duration != nil {
		if err := validateDuration(*update.Duration); err != nil {
			return err
		}
	}
	if update.ReleaseYear != nil {
		if err := validateReleaseYear(*update.ReleaseYear); err != nil {
			return err
		}
	}
	if update.Rating != nil {
		if err := validateRating(*update.Rating); err != nil {
			return err
		}
	}
	if update.Summary != nil {
		if err := validateSummary(*update.Summary); err != nil {
			return err
		}
	}

	return nil
}

func validatePosterURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyPosterURL
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidPosterURL
	}
	return nil
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < minTitleLength {
		return ErrTitleTooShort
	}
	return nil
}

func validateDuration(duration int) error {
	if duration <= minDuration {
		return ErrDurationTooShort
	}
	return nil
}

func validateReleaseYear(year int) error {
	if year < firstFilmYear || year > time.Now().Year()+1 {
		return ErrInvalidYear
	}
	return nil
}

func validateRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return ErrInvalidRating
	}
	return nil
}

func validateSummary(summary string) error {
	if utf8.RuneCountInString(strings.TrimSpace(summary)) < minSummaryLength {
		return ErrSummaryTooShort
	}
	return nil
}
