package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/federated", h.federatedLogin)

		r.Get("/api/movies", h.listMovies)
		r.Get("/api/movies/featured", h.featuredMovies)
		r.Get("/api/movies/{movieID}", h.getMovie)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Patch("/api/auth/profile", h.updateProfile)
		r.Post("/api/auth/logout", h.logout)

		r.Post("/api/movies", h.createMovie)
		r.Patch("/api/movies/{movieID}", h.updateMovie)
		r.Delete("/api/movies/{movieID}", h.deleteMovie)

		r.Post("/api/favorites", h.addFavorite)
		r.Get("/api/favorites/{userEmail}", h.listFavorites)
		r.Delete("/api/favorites/{favoriteID}", h.removeFavorite)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
