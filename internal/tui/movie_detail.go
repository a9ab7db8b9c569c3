package tui

import (
	"fmt"
	"strings"

	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/session"
	"github.com/movieportal/movie-portal/models"
)

// movieDetailModel shows a single catalog entry. The creator of the entry
// gets edit and delete actions; everyone signed in can favorite it, and the
// share link can be copied to the clipboard.
type movieDetailModel struct {
	ctx          context.Context
	services     *service.ClientServices
	session      *session.Provider
	shareBaseURL string

	movie      models.Movie
	confirming bool
	status     string
	errMsg     string
}

func newMovieDetailModel(ctx context.Context, services *service.ClientServices, provider *session.Provider, shareBaseURL string) *movieDetailModel {
	return &movieDetailModel{
		ctx:          ctx,
		services:     services,
		session:      provider,
		shareBaseURL: shareBaseURL,
	}
}

func (m *movieDetailModel) Init() tea.Cmd {
	m.confirming = false
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *movieDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case showMovieMsg:
		m.movie = typed.movie
		return m, nil

	case movieDeletedMsg:
		if typed.err != nil {
			m.errMsg = humanizeError(typed.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Route: RouteMovies} }

	case favoriteToggledMsg:
		if typed.err != nil {
			m.errMsg = humanizeError(typed.err)
			return m, nil
		}
		m.status = "Added to favorites"
		return m, nil

	case copiedMsg:
		m.status = "Share link copied"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirming = false
			return m, m.cmdDelete()
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Route: RouteMovies} }
	case key.Matches(keyMsg, keys.edit):
		if !m.isCreator() {
			m.errMsg = "Only the creator can edit this movie"
			return m, nil
		}
		movie := m.movie
		return m, func() tea.Msg {
			return NavigateTo{Route: RouteUpdateMovie, Payload: editMovieMsg{movie: movie}}
		}
	case key.Matches(keyMsg, keys.delete):
		if !m.isCreator() {
			m.errMsg = "Only the creator can delete this movie"
			return m, nil
		}
		m.confirming = true
		return m, nil
	case key.Matches(keyMsg, keys.favorite):
		m.errMsg = ""
		return m, m.cmdAddFavorite()
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyShareLink()
	}

	return m, nil
}

func (m *movieDetailModel) View() string {
	if m.confirming {
		content := "Delete \"" + m.movie.Title + "\"?\n\n"
		content += "y yes    n no"
		return overlayBoxStyle.Render(content)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Title:    %s\n", m.movie.Title))
	b.WriteString(fmt.Sprintf("Genre:    %s\n", valueOrDash(m.movie.Genre)))
	b.WriteString(fmt.Sprintf("Year:     %d\n", m.movie.ReleaseYear))
	b.WriteString(fmt.Sprintf("Duration: %s\n", formatDuration(m.movie.Duration)))
	b.WriteString(fmt.Sprintf("Rating:   %s\n", ratingStars(m.movie.Rating)))
	b.WriteString(fmt.Sprintf("Poster:   %s\n", valueOrDash(m.movie.PosterURL)))
	b.WriteString(fmt.Sprintf("Added by: %s\n", valueOrDash(m.movie.CreatorEmail)))
	b.WriteString("\n")
	b.WriteString(m.movie.Summary)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	hotKeys := "f: favorite │ c: copy link │ esc: back"
	if m.isCreator() {
		hotKeys = "e: edit │ d: delete │ " + hotKeys
	}

	return renderPage("MOVIE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *movieDetailModel) isCreator() bool {
	principal := m.session.Principal()
	if principal == nil {
		return false
	}
	return strings.EqualFold(principal.Email, m.movie.CreatorEmail)
}

func (m *movieDetailModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService
	movieID := m.movie.MovieID

	return func() tea.Msg {
		return movieDeletedMsg{err: catalog.DeleteMovie(ctx, movieID)}
	}
}

func (m *movieDetailModel) cmdAddFavorite() tea.Cmd {
	ctx := m.ctx
	favorites := m.services.FavoriteService
	movieID := m.movie.MovieID

	return func() tea.Msg {
		_, err := favorites.AddFavorite(ctx, movieID)
		return favoriteToggledMsg{err: err}
	}
}

func (m *movieDetailModel) cmdCopyShareLink() tea.Cmd {
	link := fmt.Sprintf("%s/movies/%d", strings.TrimRight(m.shareBaseURL, "/"), m.movie.MovieID)

	return func() tea.Msg {
		if err := clipboard.WriteAll(link); err != nil {
			return favoriteToggledMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
