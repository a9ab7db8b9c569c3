package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/models"
)

// NavigateTo asks the root model to switch pages. The root consults the
// route guard before performing the switch; a protected target may be held
// on the waiting page or redirected to login instead.
type NavigateTo struct {
	Route   Route
	Payload tea.Msg
}

// SignInResult finishes a login, register, or federated sign-in attempt.
type SignInResult struct {
	Principal models.Principal
	Err       error
}

type sessionResolvedMsg struct{}

type signOutDoneMsg struct {
	err error
}

type moviesLoadedMsg struct {
	movies []models.Movie
	err    error
}

type showMovieMsg struct {
	movie models.Movie
}

type editMovieMsg struct {
	movie models.Movie
}

type movieSavedMsg struct {
	movie models.Movie
	err   error
}

type movieDeletedMsg struct {
	err error
}

type favoritesLoadedMsg struct {
	response models.FavoriteListResponse
	err      error
}

type favoriteToggledMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type copiedMsg struct{}
