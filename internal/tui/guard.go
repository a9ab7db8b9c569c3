package tui

import (
	"sync"

	"github.com/movieportal/movie-portal/internal/session"
)

// Route identifies a page of the terminal client.
type Route string

const (
	RouteWelcome     Route = "welcome"
	RouteLogin       Route = "login"
	RouteRegister    Route = "register"
	RouteMovies      Route = "movies"
	RouteMovieDetail Route = "movie_detail"
	RouteAddMovie    Route = "add_movie"
	RouteUpdateMovie Route = "update_movie"
	RouteFavorites   Route = "favorites"
	RouteProfile     Route = "profile"
	RouteWaiting     Route = "waiting"
)

// protectedRoutes require a signed-in session.
var protectedRoutes = map[Route]struct{}{
	RouteAddMovie:    {},
	RouteUpdateMovie: {},
	RouteFavorites:   {},
	RouteProfile:     {},
}

// Protected reports whether the route requires authentication.
func (r Route) Protected() bool {
	_, ok := protectedRoutes[r]
	return ok
}

// Decision is the guard's verdict for a navigation attempt.
type Decision int

const (
	// DecisionAllow lets the navigation proceed to the target route.
	DecisionAllow Decision = iota
	// DecisionWait holds the navigation on the waiting page until the
	// session settles. The guard never redirects on an unsettled session.
	DecisionWait
	// DecisionRedirect sends the user to the login page; the attempted
	// route is remembered as the pending intent.
	DecisionRedirect
)

// Guard decides whether a navigation attempt may enter its target route
// given the current session state. When an unauthenticated user attempts a
// protected route, the guard records the target so the login page can return
// the user there after sign-in.
type Guard struct {
	session *session.Provider

	mu     sync.Mutex
	intent Route
}

// NewGuard builds a guard over the given session provider.
func NewGuard(provider *session.Provider) *Guard {
	return &Guard{session: provider}
}

// Check evaluates a navigation attempt to target. The second return value is
// the route to show: target on allow, [RouteWaiting] on wait, [RouteLogin]
// on redirect.
func (g *Guard) Check(target Route) (Decision, Route) {
	if !target.Protected() {
		return DecisionAllow, target
	}

	snapshot := g.session.Snapshot()
	switch {
	case snapshot.Loading || snapshot.State == session.StateUnknown:
		return DecisionWait, RouteWaiting
	case snapshot.Authenticated():
		return DecisionAllow, target
	default:
		g.mu.Lock()
		g.intent = target
		g.mu.Unlock()
		return DecisionRedirect, RouteLogin
	}
}

// ConsumeIntent returns the route recorded by the last redirect and clears
// it. The second call after a redirect reports false: an intent is honored
// exactly once.
func (g *Guard) ConsumeIntent() (Route, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.intent == "" {
		return "", false
	}
	intent := g.intent
	g.intent = ""
	return intent, true
}

// ClearIntent drops a pending intent without honoring it, used when the user
// abandons the login page.
func (g *Guard) ClearIntent() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intent = ""
}
