package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/session"
)

// TUI is the terminal front end of the movie portal.
type TUI struct {
	services     *service.ClientServices
	session      *session.Provider
	shareBaseURL string
	logger       *logger.Logger
}

func New(services *service.ClientServices, provider *session.Provider, shareBaseURL string, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:     services,
		session:      provider,
		shareBaseURL: shareBaseURL,
		logger:       logger,
	}, nil
}

// Run drives the whole client session: it restores the persisted session in
// the background, opens the welcome page, and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	guard := NewGuard(t.session)

	pages := map[Route]tea.Model{
		RouteWelcome:     newWelcomeModel(t.session),
		RouteLogin:       newLoginModel(ctx, t.services.AuthService),
		RouteRegister:    newRegisterModel(ctx, t.services.AuthService),
		RouteMovies:      newMoviesModel(ctx, t.services.CatalogService),
		RouteMovieDetail: newMovieDetailModel(ctx, t.services, t.session, t.shareBaseURL),
		RouteAddMovie:    newMovieFormModel(ctx, t.services.CatalogService, nil),
		RouteUpdateMovie: newMovieFormModel(ctx, t.services.CatalogService, nil),
		RouteFavorites:   newFavoritesModel(ctx, t.services.FavoriteService),
		RouteProfile:     newProfileModel(ctx, t.services.AuthService, t.session),
		RouteWaiting:     newWaitingModel(),
	}

	root := newRootModel(ctx, pages, guard, t.services)
	_, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	return err
}
