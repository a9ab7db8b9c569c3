package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/movieportal/movie-portal/internal/app"
	"github.com/movieportal/movie-portal/internal/logger"
	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/store"
	"github.com/movieportal/movie-portal/internal/utils"
	"github.com/movieportal/movie-portal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg(app.MsgEmailAlreadyExists)
			http.Error(w, app.MsgEmailAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.respondWithSession(w, r, registered)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	principal, err := h.services.AuthService.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg(app.MsgInvalidEmailPassword)
			http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg(app.MsgAccountNotFound)
			http.Error(w, app.MsgAccountNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", principal.UserID).Str("email", principal.Email).Msg("user successfully logged in")

	h.respondWithSession(w, r, principal)
}

func (h *Handler) federatedLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.FederatedSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	principal, err := h.services.AuthService.FederatedLogin(ctx, request.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidIDToken):
			log.Err(err).Msg(app.MsgInvalidIDToken)
			http.Error(w, app.MsgInvalidIDToken, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during federated login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.respondWithSession(w, r, principal)
}

// me returns the account behind the presented bearer token. It backs the
// client's session restore at startup.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.me").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	principal, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.me").Msg("error getting account")
		http.Error(w, app.MsgAccountNotFound, statusFromError(err))
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateProfile").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	principal, err := h.services.AuthService.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("error updating profile")
		http.Error(w, "error updating profile", statusFromError(err))
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}

// logout acknowledges the client's sign-out. Tokens are stateless, so there
// is no server-side session to destroy; the client discards its token.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondWithSession issues a token for principal, puts it in the
// "Authorization" response header, and writes the principal as JSON.
func (h *Handler) respondWithSession(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(ctx, principal)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, principal, http.StatusOK)
}
