package adapter

import "errors"

// Auth operation failures surfaced by [IdentityProvider]. Callers match them
// with [errors.Is]; the adapter never retries or swallows them.
var (
	// ErrInvalidCredentialsFormat indicates the server rejected the shape of
	// the email or password during account creation.
	ErrInvalidCredentialsFormat = errors.New("invalid credentials format")

	// ErrAccountAlreadyExists indicates the email is already registered.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvalidCredentials indicates an email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound indicates no account exists for the email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrFederatedFlowCancelled indicates the user abandoned the hosted
	// consent flow.
	ErrFederatedFlowCancelled = errors.New("federated flow cancelled")

	// ErrFederatedFlowFailed indicates the hosted consent flow failed for
	// any reason other than user cancellation.
	ErrFederatedFlowFailed = errors.New("federated flow failed")

	// ErrNoActiveSession indicates an operation that requires an
	// authenticated principal was called without one.
	ErrNoActiveSession = errors.New("no active session")

	// ErrNetworkUnavailable indicates the request never produced an HTTP
	// response (DNS failure, refused connection, timeout).
	ErrNetworkUnavailable = errors.New("network unavailable")
)

// Transport failures shared by [CatalogClient] operations.
var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
