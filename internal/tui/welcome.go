package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/session"
)

type welcomeItem struct {
	label string
	route Route
}

// welcomeModel is the landing page: a small menu whose entries route into
// the catalog, the auth pages, and the protected areas.
type welcomeModel struct {
	session *session.Provider

	items []welcomeItem
	idx   int
}

func newWelcomeModel(provider *session.Provider) *welcomeModel {
	return &welcomeModel{
		session: provider,
		items: []welcomeItem{
			{label: "Browse movies", route: RouteMovies},
			{label: "My favorites", route: RouteFavorites},
			{label: "Sign in", route: RouteLogin},
			{label: "Register", route: RouteRegister},
			{label: "Profile", route: RouteProfile},
		},
	}
}

func (m *welcomeModel) Init() tea.Cmd {
	return nil
}

func (m *welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		target := m.items[m.idx].route
		return m, func() tea.Msg { return NavigateTo{Route: target} }
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *welcomeModel) View() string {
	var b strings.Builder

	snapshot := m.session.Snapshot()
	switch {
	case snapshot.Loading:
		b.WriteString("Checking session...\n\n")
	case snapshot.Authenticated():
		name := snapshot.Principal.Name
		if name == "" {
			name = snapshot.Principal.Email
		}
		b.WriteString("Signed in as " + name + "\n\n")
	default:
		b.WriteString("Not signed in\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item.label + "\n")
	}

	return renderPage("MOVIE PORTAL", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ q: quit")
}
