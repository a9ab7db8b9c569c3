package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/utils"
	"github.com/movieportal/movie-portal/models"
)

// Function-field stubs for the service layer. Only the fields a test sets
// are exercised; calling an unset field panics and fails the test loudly.

type stubAuthService struct {
	registerFn      func(ctx context.Context, creds models.Credentials) (models.Principal, error)
	loginFn         func(ctx context.Context, email, password string) (models.Principal, error)
	federatedFn     func(ctx context.Context, rawIDToken string) (models.Principal, error)
	getUserFn       func(ctx context.Context, userID int64) (models.Principal, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Principal, error)
	createTokenFn   func(ctx context.Context, user models.Principal) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	return s.registerFn(ctx, creds)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (models.Principal, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) FederatedLogin(ctx context.Context, rawIDToken string) (models.Principal, error) {
	return s.federatedFn(ctx, rawIDToken)
}

func (s *stubAuthService) GetUser(ctx context.Context, userID int64) (models.Principal, error) {
	return s.getUserFn(ctx, userID)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Principal, error) {
	return s.updateProfileFn(ctx, userID, update)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.Principal) (models.Token, error) {
	return s.createTokenFn(ctx, user)
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return s.parseTokenFn(ctx, tokenString)
}

type stubCatalogService struct {
	createFn   func(ctx context.Context, movie models.Movie) (models.Movie, error)
	getFn      func(ctx context.Context, movieID int64) (models.Movie, error)
	listFn     func(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	featuredFn func(ctx context.Context, limit uint64) ([]models.Movie, error)
	updateFn   func(ctx context.Context, requesterEmail string, update models.MovieUpdate) (models.Movie, error)
	deleteFn   func(ctx context.Context, requesterEmail string, movieID int64) error
}

func (s *stubCatalogService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	return s.createFn(ctx, movie)
}

func (s *stubCatalogService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	return s.getFn(ctx, movieID)
}

func (s *stubCatalogService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	return s.listFn(ctx, filter)
}

func (s *stubCatalogService) FeaturedMovies(ctx context.Context, limit uint64) ([]models.Movie, error) {
	return s.featuredFn(ctx, limit)
}

func (s *stubCatalogService) UpdateMovie(ctx context.Context, requesterEmail string, update models.MovieUpdate) (models.Movie, error) {
	return s.updateFn(ctx, requesterEmail, update)
}

func (s *stubCatalogService) DeleteMovie(ctx context.Context, requesterEmail string, movieID int64) error {
	return s.deleteFn(ctx, requesterEmail, movieID)
}

type stubFavoriteService struct {
	addFn    func(ctx context.Context, userEmail string, movieID int64) (models.Favorite, error)
	listFn   func(ctx context.Context, userEmail string) (models.FavoriteListResponse, error)
	removeFn func(ctx context.Context, requesterEmail string, favoriteID int64) error
}

func (s *stubFavoriteService) AddFavorite(ctx context.Context, userEmail string, movieID int64) (models.Favorite, error) {
	return s.addFn(ctx, userEmail, movieID)
}

func (s *stubFavoriteService) ListFavorites(ctx context.Context, userEmail string) (models.FavoriteListResponse, error) {
	return s.listFn(ctx, userEmail)
}

func (s *stubFavoriteService) RemoveFavorite(ctx context.Context, requesterEmail string, favoriteID int64) error {
	return s.removeFn(ctx, requesterEmail, favoriteID)
}

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) Version(_ context.Context) string { return s.version }

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context so handlers
// that call logger.FromRequest do not touch stderr during tests.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withChiParam attaches a chi route parameter to the request so handlers
// called outside the router can still read it.
func withChiParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

// asUser adds the context values the auth middleware would have set.
func asUser(r *http.Request, userID int64, email string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, utils.UserEmailCtxKey, email)
	return r.WithContext(ctx)
}
