package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/service"
)

// RootModel is the TUI router:
// 1) keeps the active page
// 2) handles the global Ctrl+C quit
// 3) runs every NavigateTo through the route guard
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	guard    *Guard
	services *service.ClientServices

	pages   map[Route]tea.Model
	current tea.Model
	route   Route

	// pending holds a navigation stalled on the waiting page until the
	// session settles.
	pending *NavigateTo

	quitByUser bool
}

func newRootModel(ctx context.Context, pages map[Route]tea.Model, guard *Guard, services *service.ClientServices) RootModel {
	return RootModel{
		ctx:      ctx,
		guard:    guard,
		services: services,
		pages:    pages,
		current:  pages[RouteWelcome],
		route:    RouteWelcome,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.cmdRestoreSession()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	switch typed := msg.(type) {
	case NavigateTo:
		return r.navigate(typed)

	case sessionResolvedMsg:
		// The guard can settle a stalled navigation now.
		if r.pending != nil {
			pending := *r.pending
			r.pending = nil
			return r.navigate(pending)
		}

	case SignInResult:
		if typed.Err == nil {
			target := RouteMovies
			if intent, ok := r.guard.ConsumeIntent(); ok {
				target = intent
			}
			return r.navigate(NavigateTo{Route: target})
		}
		// Failed attempts stay on the login or register page.

	case signOutDoneMsg:
		return r.navigate(NavigateTo{Route: RouteWelcome})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.route] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return renderPage("Movie Portal", "", "")
	}
	return r.current.View()
}

// navigate runs the attempt through the guard and switches to whatever page
// the guard picked.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	decision, target := r.guard.Check(nav.Route)

	switch decision {
	case DecisionWait:
		r.pending = &nav
		return r.switchTo(target, nil)
	case DecisionRedirect:
		r.pending = nil
		return r.switchTo(target, nil)
	default:
		return r.switchTo(target, nav.Payload)
	}
}

func (r RootModel) switchTo(route Route, payload tea.Msg) (tea.Model, tea.Cmd) {
	next, exists := r.pages[route]
	if !exists {
		return r, nil
	}

	r.current = next
	r.route = route

	initCmd := next.Init()
	if payload == nil {
		return r, initCmd
	}
	return r, tea.Batch(initCmd, func() tea.Msg { return payload })
}

// cmdRestoreSession settles the initial session state off the UI thread. The
// waiting page spins until this completes.
func (r RootModel) cmdRestoreSession() tea.Cmd {
	ctx := r.ctx
	auth := r.services.AuthService

	return func() tea.Msg {
		auth.Restore(ctx)
		return sessionResolvedMsg{}
	}
}
