package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/movieportal/movie-portal/models"
)

func validMovie() models.Movie {
	return models.Movie{
		PosterURL:    "https://img.example.com/poster.png",
		Title:        "Batman Begins",
		Genre:        "Action",
		Duration:     140,
		ReleaseYear:  2005,
		Rating:       5,
		Summary:      "Bruce Wayne becomes Batman.",
		CreatorEmail: "a@example.com",
	}
}

func TestMovieValidator_Validate(t *testing.T) {
	v := NewMovieValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Movie)
		wantErr error
	}{
		{name: "valid movie", mutate: func(*models.Movie) {}},
		{name: "empty poster", mutate: func(m *models.Movie) { m.PosterURL = "" }, wantErr: ErrEmptyPosterURL},
		{name: "relative poster url", mutate: func(m *models.Movie) { m.PosterURL = "/poster.png" }, wantErr: ErrInvalidPosterURL},
		{name: "one letter title", mutate: func(m *models.Movie) { m.Title = "B" }, wantErr: ErrTitleTooShort},
		{name: "blank genre", mutate: func(m *models.Movie) { m.Genre = "  " }, wantErr: ErrEmptyGenre},
		{name: "exactly an hour", mutate: func(m *models.Movie) { m.Duration = 60 }, wantErr: ErrDurationTooShort},
		{name: "pre-cinema year", mutate: func(m *models.Movie) { m.ReleaseYear = 1800 }, wantErr: ErrInvalidYear},
		{name: "zero rating", mutate: func(m *models.Movie) { m.Rating = 0 }, wantErr: ErrInvalidRating},
		{name: "six star rating", mutate: func(m *models.Movie) { m.Rating = 6 }, wantErr: ErrInvalidRating},
		{name: "short summary", mutate: func(m *models.Movie) { m.Summary = "too short" }, wantErr: ErrSummaryTooShort},
		{name: "no creator", mutate: func(m *models.Movie) { m.CreatorEmail = "" }, wantErr: ErrEmptyCreatorEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie := validMovie()
			tt.mutate(&movie)

			err := v.Validate(ctx, movie)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMovieValidator_FieldScoping(t *testing.T) {
	v := NewMovieValidator()

	movie := validMovie()
	movie.Summary = "short"

	// Only the rating field is in scope, so the bad summary passes.
	if err := v.Validate(context.Background(), movie, FieldRating); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMovieValidator_Update(t *testing.T) {
	v := NewMovieValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.MovieUpdate{MovieID: 1}); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}

	rating := 4
	if err := v.Validate(ctx, models.MovieUpdate{MovieID: 1, Rating: &rating}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	duration := 45
	if err := v.Validate(ctx, models.MovieUpdate{MovieID: 1, Duration: &duration}); !errors.Is(err, ErrDurationTooShort) {
		t.Fatalf("expected ErrDurationTooShort, got %v", err)
	}
}

func TestMovieValidator_UnsupportedType(t *testing.T) {
	v := NewMovieValidator()

	if err := v.Validate(context.Background(), "not a movie"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
