package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/models"
)

// moviesModel is the catalog listing page. Search narrows the listing by
// title; entries open into the detail page.
type moviesModel struct {
	ctx     context.Context
	catalog service.ClientCatalogService

	movies  []models.Movie
	idx     int
	loading bool
	spinner spinner.Model

	search    textinput.Model
	searching bool

	errMsg string
}

func newMoviesModel(ctx context.Context, catalog service.ClientCatalogService) *moviesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "title..."
	search.CharLimit = 100
	search.Width = 30

	return &moviesModel{
		ctx:     ctx,
		catalog: catalog,
		spinner: s,
		search:  search,
		loading: true,
	}
}

func (m *moviesModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *moviesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case moviesLoadedMsg:
		m.loading = false
		if typed.err != nil {
			m.errMsg = humanizeError(typed.err)
			return m, nil
		}
		m.movies = typed.movies
		if m.idx >= len(m.movies) {
			m.idx = 0
		}
		m.errMsg = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.searching = false
			m.search.Blur()
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
		case key.Matches(keyMsg, keys.esc):
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.movies)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if movie, ok := m.current(); ok {
			return m, func() tea.Msg {
				return NavigateTo{Route: RouteMovieDetail, Payload: showMovieMsg{movie: movie}}
			}
		}
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(keyMsg, keys.newItem):
		return m, func() tea.Msg { return NavigateTo{Route: RouteAddMovie} }
	case key.Matches(keyMsg, keys.favorite):
		return m, func() tea.Msg { return NavigateTo{Route: RouteFavorites} }
	case key.Matches(keyMsg, keys.profile):
		return m, func() tea.Msg { return NavigateTo{Route: RouteProfile} }
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Route: RouteWelcome} }
	}

	return m, nil
}

func (m *moviesModel) View() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: [" + m.search.View() + "]\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading catalog...\n")
	case len(m.movies) == 0:
		b.WriteString("No movies found\n")
	default:
		for i, movie := range m.movies {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-40s %-12s %s\n",
				cursor,
				fitText(movie.Title, 40),
				fitText(movie.Genre, 12),
				ratingStars(movie.Rating),
			))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("MOVIES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ /: search │ n: add │ f: favorites │ p: profile │ r: reload │ esc: back")
}

func (m *moviesModel) current() (models.Movie, bool) {
	if len(m.movies) == 0 || m.idx < 0 || m.idx >= len(m.movies) {
		return models.Movie{}, false
	}
	return m.movies[m.idx], true
}

func (m *moviesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	filter := models.MovieFilter{Search: strings.TrimSpace(m.search.Value())}

	return func() tea.Msg {
		movies, err := catalog.ListMovies(ctx, filter)
		return moviesLoadedMsg{movies: movies, err: err}
	}
}
