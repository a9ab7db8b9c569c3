package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/movieportal/movie-portal/internal/app"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/internal/utils"
	"github.com/movieportal/movie-portal/models"
)

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, found := utils.GetUserEmailFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.addFavorite").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var favorite models.Favorite
	if err := json.NewDecoder(r.Body).Decode(&favorite); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.FavoriteService.AddFavorite(ctx, email, favorite.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrFavoriteAlreadyExists):
			log.Err(err).Int64("movie_id", favorite.MovieID).Msg(app.MsgFavoriteAlreadyExists)
			http.Error(w, app.MsgFavoriteAlreadyExists, http.StatusConflict)
			return
		case errors.Is(err, store.ErrMovieNotFound):
			log.Err(err).Int64("movie_id", favorite.MovieID).Msg(app.MsgMovieNotFound)
			http.Error(w, app.MsgMovieNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.addFavorite").Msg("error adding favorite")
			http.Error(w, "error adding favorite", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, found := utils.GetUserEmailFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listFavorites").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	// Favorites of other accounts are never exposed.
	requestedEmail := chi.URLParam(r, "userEmail")
	if !strings.EqualFold(requestedEmail, email) {
		log.Error().Str("requested", requestedEmail).Msg("favorites requested for a different account")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	response, err := h.services.FavoriteService.ListFavorites(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listFavorites").Msg("error listing favorites")
		http.Error(w, "error listing favorites", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, found := utils.GetUserEmailFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.removeFavorite").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	favoriteID, err := pathID(r, "favoriteID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.removeFavorite").Msg("invalid favorite id")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.FavoriteService.RemoveFavorite(ctx, email, favoriteID); err != nil {
		switch {
		case errors.Is(err, store.ErrFavoriteNotFound):
			log.Err(err).Int64("favorite_id", favoriteID).Msg(app.MsgFavoriteNotFound)
			http.Error(w, app.MsgFavoriteNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotCreator):
			log.Err(err).Int64("favorite_id", favoriteID).Msg("favorite belongs to a different account")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		default:
			log.Err(err).Str("func", "*Handler.removeFavorite").Msg("error removing favorite")
			http.Error(w, "error removing favorite", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
