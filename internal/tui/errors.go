package tui

import (
	"errors"

	"github.com/movieportal/movie-portal/internal/adapter"
)

// humanizeError maps adapter sentinels onto short messages fit for a status
// line. Unknown errors pass through unchanged.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrNetworkUnavailable):
		return "No network or the portal is unreachable"
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, adapter.ErrAccountNotFound):
		return "No account with this email"
	case errors.Is(err, adapter.ErrAccountAlreadyExists):
		return "An account with this email already exists"
	case errors.Is(err, adapter.ErrInvalidCredentialsFormat):
		return "Email or password rejected by the portal"
	case errors.Is(err, adapter.ErrFederatedFlowCancelled):
		return "Sign-in with Google was cancelled"
	case errors.Is(err, adapter.ErrFederatedFlowFailed):
		return "Sign-in with Google failed"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, sign in again"
	case errors.Is(err, adapter.ErrNotFound):
		return "Not found on the portal"
	case errors.Is(err, adapter.ErrConflict):
		return "Already exists"
	}

	return err.Error()
}
