package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/models"
)

// favoritesModel lists the signed-in user's favorite movies. Each row pairs
// a favorite record with its catalog entry from the same response.
type favoritesModel struct {
	ctx       context.Context
	favorites service.ClientFavoriteService

	response models.FavoriteListResponse
	idx      int
	loading  bool
	spinner  spinner.Model
	errMsg   string
}

func newFavoritesModel(ctx context.Context, favorites service.ClientFavoriteService) *favoritesModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &favoritesModel{
		ctx:       ctx,
		favorites: favorites,
		spinner:   sp,
	}
}

func (m *favoritesModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.idx = 0
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *favoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case favoritesLoadedMsg:
		m.loading = false
		if typed.err != nil {
			m.errMsg = humanizeError(typed.err)
			return m, nil
		}
		m.response = typed.response
		if m.idx >= len(m.response.Favorites) {
			m.idx = 0
		}
		return m, nil

	case favoriteToggledMsg:
		if typed.err != nil {
			m.errMsg = humanizeError(typed.err)
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(typed, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Route: RouteMovies} }
		case key.Matches(typed, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(typed, keys.down):
			if m.idx < len(m.response.Favorites)-1 {
				m.idx++
			}
		case key.Matches(typed, keys.refresh):
			m.loading = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
		case key.Matches(typed, keys.enter):
			if movie, ok := m.selectedMovie(); ok {
				return m, func() tea.Msg {
					return NavigateTo{Route: RouteMovieDetail, Payload: showMovieMsg{movie: movie}}
				}
			}
		case key.Matches(typed, keys.delete):
			if m.idx < len(m.response.Favorites) {
				return m, m.cmdRemove(m.response.Favorites[m.idx].FavoriteID)
			}
		}
	}

	return m, nil
}

func (m *favoritesModel) View() string {
	if m.loading {
		return renderPage("MY FAVORITES", m.spinner.View()+" Loading favorites...", "esc: back")
	}

	var b strings.Builder
	if len(m.response.Favorites) == 0 {
		b.WriteString("No favorites yet. Press f on a movie to add one.\n")
	}
	for i, fav := range m.response.Favorites {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + m.rowFor(fav) + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage(
		"MY FAVORITES",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ d: remove │ r: refresh │ esc: back",
	)
}

func (m *favoritesModel) rowFor(fav models.Favorite) string {
	for _, movie := range m.response.Movies {
		if movie.MovieID == fav.MovieID {
			return fitText(movie.Title, 40) + " " + ratingStars(movie.Rating)
		}
	}
	return "movie removed from the catalog"
}

func (m *favoritesModel) selectedMovie() (models.Movie, bool) {
	if m.idx >= len(m.response.Favorites) {
		return models.Movie{}, false
	}
	movieID := m.response.Favorites[m.idx].MovieID
	for _, movie := range m.response.Movies {
		if movie.MovieID == movieID {
			return movie, true
		}
	}
	return models.Movie{}, false
}

func (m *favoritesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	favorites := m.favorites

	return func() tea.Msg {
		response, err := favorites.ListFavorites(ctx)
		return favoritesLoadedMsg{response: response, err: err}
	}
}

func (m *favoritesModel) cmdRemove(favoriteID int64) tea.Cmd {
	ctx := m.ctx
	favorites := m.favorites

	return func() tea.Msg {
		return favoriteToggledMsg{err: favorites.RemoveFavorite(ctx, favoriteID)}
	}
}
