// Package app contains shared application-layer constants used across the
// movie-portal server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match the stored credential.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgAccountNotFound is returned when a sign-in targets an email with no
	// registered account.
	MsgAccountNotFound = "account not found"

	// MsgEmailAlreadyExists is returned when a registration attempt uses an
	// email that is already taken.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInvalidIDToken is returned when the federated sign-in token cannot
	// be verified against the configured issuer.
	MsgInvalidIDToken = "invalid identity token"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMovieNotFound is returned when a catalog request targets a movie id
	// that does not exist.
	MsgMovieNotFound = "movie not found"

	// MsgNotMovieCreator is returned when a mutation is attempted by an
	// account other than the one that added the entry.
	MsgNotMovieCreator = "only the creator can modify this movie"

	// MsgFavoriteNotFound is returned when a delete targets a favorite id
	// that does not exist.
	MsgFavoriteNotFound = "favorite not found"

	// MsgFavoriteAlreadyExists is returned when the movie is already in the
	// user's favorites.
	MsgFavoriteAlreadyExists = "favorite already exists"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"
)
