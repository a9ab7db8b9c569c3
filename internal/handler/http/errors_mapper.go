package http

import (
	"errors"
	"net/http"

	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrWrongPassword:         http.StatusUnauthorized,
	service.ErrInvalidIDToken:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrNotCreator:            http.StatusForbidden,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrMovieNotFound:         http.StatusNotFound,
	store.ErrFavoriteNotFound:      http.StatusNotFound,
	store.ErrFavoriteAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
