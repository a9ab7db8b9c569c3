package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/models"
)

const (
	movieFieldTitle = iota
	movieFieldPosterURL
	movieFieldGenre
	movieFieldDuration
	movieFieldYear
	movieFieldRating
	movieFieldSummary
	movieFieldCount
)

// movieFormModel backs both the add and the edit page. An [editMovieMsg]
// payload switches it into editing mode with the fields prefilled.
type movieFormModel struct {
	ctx     context.Context
	catalog service.ClientCatalogService

	inputs     []textinput.Model
	focus      int
	editing    bool
	movieID    int64
	submitting bool
	errMsg     string
}

func newMovieFormModel(ctx context.Context, catalog service.ClientCatalogService, movie *models.Movie) *movieFormModel {
	placeholders := [movieFieldCount]string{
		"title",
		"poster URL",
		"genre",
		"duration in minutes",
		"release year",
		"rating 1-5",
		"summary",
	}

	inputs := make([]textinput.Model, movieFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 50
	}
	inputs[movieFieldSummary].CharLimit = 2000
	inputs[movieFieldTitle].Focus()

	m := &movieFormModel{
		ctx:     ctx,
		catalog: catalog,
		inputs:  inputs,
	}
	if movie != nil {
		m.prefill(*movie)
	}
	return m
}

func (m *movieFormModel) prefill(movie models.Movie) {
	m.editing = true
	m.movieID = movie.MovieID
	m.inputs[movieFieldTitle].SetValue(movie.Title)
	m.inputs[movieFieldPosterURL].SetValue(movie.PosterURL)
	m.inputs[movieFieldGenre].SetValue(movie.Genre)
	m.inputs[movieFieldDuration].SetValue(strconv.Itoa(movie.Duration))
	m.inputs[movieFieldYear].SetValue(strconv.Itoa(movie.ReleaseYear))
	m.inputs[movieFieldRating].SetValue(strconv.Itoa(movie.Rating))
	m.inputs[movieFieldSummary].SetValue(movie.Summary)
}

func (m *movieFormModel) reset() {
	m.editing = false
	m.movieID = 0
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = movieFieldTitle
	m.inputs[movieFieldTitle].Focus()
}

func (m *movieFormModel) Init() tea.Cmd {
	if !m.editing {
		m.reset()
	}
	return textinput.Blink
}

func (m *movieFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case editMovieMsg:
		m.prefill(typed.movie)
		return m, nil

	case movieSavedMsg:
		m.submitting = false
		if typed.err != nil {
			m.errMsg = humanizeError(typed.err)
			return m, nil
		}
		saved := typed.movie
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Route: RouteMovieDetail, Payload: showMovieMsg{movie: saved}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Route: RouteMovies} }
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			movie, update, err := m.collect()
			if err != "" {
				m.errMsg = err
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			if m.editing {
				return m, m.cmdUpdate(update, movie)
			}
			return m, m.cmdCreate(movie)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *movieFormModel) View() string {
	labels := [movieFieldCount]string{
		"Title   ",
		"Poster  ",
		"Genre   ",
		"Duration",
		"Year    ",
		"Rating  ",
		"Summary ",
	}

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(labels[i] + " │ [" + m.inputs[i].View() + "]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	title := "ADD MOVIE"
	if m.editing {
		title = "EDIT MOVIE"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

// collect parses the inputs into a full movie and a partial update. The
// returned string carries the first validation problem, empty when valid.
func (m *movieFormModel) collect() (models.Movie, models.MovieUpdate, string) {
	title := strings.TrimSpace(m.inputs[movieFieldTitle].Value())
	posterURL := strings.TrimSpace(m.inputs[movieFieldPosterURL].Value())
	genre := strings.TrimSpace(m.inputs[movieFieldGenre].Value())
	summary := strings.TrimSpace(m.inputs[movieFieldSummary].Value())

	if title == "" {
		return models.Movie{}, models.MovieUpdate{}, "Title is required"
	}

	duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[movieFieldDuration].Value()))
	if err != nil {
		return models.Movie{}, models.MovieUpdate{}, "Duration must be a number of minutes"
	}
	year, err := strconv.Atoi(strings.TrimSpace(m.inputs[movieFieldYear].Value()))
	if err != nil {
		return models.Movie{}, models.MovieUpdate{}, "Release year must be a number"
	}
	rating, err := strconv.Atoi(strings.TrimSpace(m.inputs[movieFieldRating].Value()))
	if err != nil {
		return models.Movie{}, models.MovieUpdate{}, "Rating must be a number from 1 to 5"
	}

	movie := models.Movie{
		MovieID:     m.movieID,
		Title:       title,
		PosterURL:   posterURL,
		Genre:       genre,
		Duration:    duration,
		ReleaseYear: year,
		Rating:      rating,
		Summary:     summary,
	}

	update := models.MovieUpdate{
		MovieID:     m.movieID,
		Title:       &title,
		PosterURL:   &posterURL,
		Genre:       &genre,
		Duration:    &duration,
		ReleaseYear: &year,
		Rating:      &rating,
		Summary:     &summary,
	}

	return movie, update, ""
}

func (m *movieFormModel) cmdCreate(movie models.Movie) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog

	return func() tea.Msg {
		created, err := catalog.CreateMovie(ctx, movie)
		return movieSavedMsg{movie: created, err: err}
	}
}

func (m *movieFormModel) cmdUpdate(update models.MovieUpdate, movie models.Movie) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog

	return func() tea.Msg {
		if err := catalog.UpdateMovie(ctx, update); err != nil {
			return movieSavedMsg{err: err}
		}
		return movieSavedMsg{movie: movie}
	}
}

func (m *movieFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *movieFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
