package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/models"
)

func newTestMovieRepo(t *testing.T) (*movieRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &movieRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func movieRow(id int64, title string, rating int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(movieColumns).
		AddRow(id, "http://img/poster.png", title, "Action", 120, 2020, rating, "summary", "a@example.com", now, now)
}

func TestCreateMovie_Success(t *testing.T) {
	repo, mock, db := newTestMovieRepo(t)
	defer db.Close()

	movie := models.Movie{
		PosterURL:    "http://img/poster.png",
		Title:        "Batman Begins",
		Genre:        "Action",
		Duration:     140,
		ReleaseYear:  2005,
		Rating:       5,
		Summary:      "origin story",
		CreatorEmail: "a@example.com",
	}

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs(movie.PosterURL, movie.Title, movie.Genre, movie.Duration,
			movie.ReleaseYear, movie.Rating, movie.Summary, movie.CreatorEmail).
		WillReturnRows(movieRow(1, movie.Title, movie.Rating))

	created, err := repo.CreateMovie(context.Background(), movie)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.MovieID != 1 {
		t.Errorf("expected assigned movie_id 1, got %d", created.MovieID)
	}
}

func TestGetMovie_NotFound(t *testing.T) {
	repo, mock, db := newTestMovieRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM movies").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMovie(context.Background(), 999)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestListMovies_EmptyFilterListsEverything(t *testing.T) {
	repo, mock, db := newTestMovieRepo(t)
	defer db.Close()

	rows := movieRow(1, "First", 4)
	now := time.Now()
	rows.AddRow(int64(2), "", "Second", "Drama", 95, 2018, 3, "", "b@example.com", now, now)

	mock.ExpectQuery("SELECT (.+) FROM movies ORDER BY created_at DESC").
		WillReturnRows(rows)

	movies, err := repo.ListMovies(context.Background(), models.MovieFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
}

func TestListMovies_SearchAndRatingFilter(t *testing.T) {
	repo, mock, db := newTestMovieRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM movies WHERE title ILIKE (.+) AND rating >=").
		WithArgs("%batman%", 4).
		WillReturnRows(movieRow(1, "Batman Begins", 5))

	movies, err := repo.ListMovies(context.Background(), models.MovieFilter{Search: "batman", MinRating: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Batman Begins" {
		t.Fatalf("unexpected result: %+v", movies)
	}
}

func TestFeaturedMovies_OrdersByRating(t *testing.T) {
	repo, mock, db := newTestMovieRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM movies ORDER BY rating DESC, created_at DESC LIMIT 4").
		WillReturnRows(movieRow(1, "Top Rated", 5))

	movies, err := repo.FeaturedMovies(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 || movies[0].Rating != 5 {
		t.Fatalf("unexpected result: %+v", movies)
	}
}

func TestUpdateMovie_NotFound(t *testing.T) {
	repo, mock, db := newTestMovieRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE movies SET").
		WillReturnError(sql.ErrNoRows)

	title := "Renamed"
	_, err := repo.UpdateMovie(context.Background(), models.MovieUpdate{MovieID: 999, Title: &title})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestDeleteMovie_Success(t *testing.T) {
	repo, mock, db := newTestMovieRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM movies").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteMovie(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteMovie_NotFound(t *testing.T) {
	repo, mock, db := newTestMovieRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM movies").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteMovie(context.Background(), 999)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}
