package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/movieportal/movie-portal/internal/app"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/internal/utils"
	"github.com/movieportal/movie-portal/models"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := movieFilterFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMovies").Msg("invalid filter parameters")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	movies, err := h.services.CatalogService.ListMovies(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMovies").Msg("error listing movies")
		http.Error(w, "error listing movies", statusFromError(err))
		return
	}

	response := models.MovieListResponse{
		Movies: movies,
		Length: len(movies),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) featuredMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var limit uint64
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			log.Err(err).Str("func", "*Handler.featuredMovies").Msg("invalid limit parameter")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	movies, err := h.services.CatalogService.FeaturedMovies(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.featuredMovies").Msg("error listing featured movies")
		http.Error(w, "error listing featured movies", statusFromError(err))
		return
	}

	response := models.MovieListResponse{
		Movies: movies,
		Length: len(movies),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, err := pathID(r, "movieID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMovie").Msg("invalid movie id")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	movie, err := h.services.CatalogService.GetMovie(ctx, movieID)
	if err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			log.Err(err).Int64("movie_id", movieID).Msg(app.MsgMovieNotFound)
			http.Error(w, app.MsgMovieNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getMovie").Msg("error getting movie")
		http.Error(w, "error getting movie", statusFromError(err))
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, found := utils.GetUserEmailFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createMovie").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The creator is always the authenticated account, never the payload.
	movie.CreatorEmail = email

	created, err := h.services.CatalogService.CreateMovie(ctx, movie)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createMovie").Msg("error creating movie")
		http.Error(w, "error creating movie", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, found := utils.GetUserEmailFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateMovie").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	movieID, err := pathID(r, "movieID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateMovie").Msg("invalid movie id")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var update models.MovieUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.MovieID = movieID

	updated, err := h.services.CatalogService.UpdateMovie(ctx, email, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			log.Err(err).Int64("movie_id", movieID).Msg(app.MsgMovieNotFound)
			http.Error(w, app.MsgMovieNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotCreator):
			log.Err(err).Int64("movie_id", movieID).Msg(app.MsgNotMovieCreator)
			http.Error(w, app.MsgNotMovieCreator, http.StatusForbidden)
			return
		default:
			log.Err(err).Str("func", "*Handler.updateMovie").Msg("error updating movie")
			http.Error(w, "error updating movie", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, found := utils.GetUserEmailFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteMovie").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	movieID, err := pathID(r, "movieID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteMovie").Msg("invalid movie id")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.CatalogService.DeleteMovie(ctx, email, movieID); err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			log.Err(err).Int64("movie_id", movieID).Msg(app.MsgMovieNotFound)
			http.Error(w, app.MsgMovieNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotCreator):
			log.Err(err).Int64("movie_id", movieID).Msg(app.MsgNotMovieCreator)
			http.Error(w, app.MsgNotMovieCreator, http.StatusForbidden)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteMovie").Msg("error deleting movie")
			http.Error(w, "error deleting movie", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

// movieFilterFromQuery maps the catalog listing query parameters onto a
// filter value.
func movieFilterFromQuery(r *http.Request) (models.MovieFilter, error) {
	query := r.URL.Query()

	filter := models.MovieFilter{
		Search: query.Get("search"),
		Genre:  query.Get("genre"),
	}

	if rawRating := query.Get("min_rating"); rawRating != "" {
		minRating, err := strconv.Atoi(rawRating)
		if err != nil {
			return models.MovieFilter{}, err
		}
		filter.MinRating = minRating
	}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			return models.MovieFilter{}, err
		}
		filter.Limit = limit
	}

	return filter, nil
}

// pathID parses the named chi route parameter as a positive int64.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
