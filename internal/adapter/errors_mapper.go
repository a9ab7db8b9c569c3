package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusBody extracts a trimmed response body for error messages, falling
// back to the standard status text when the body is empty.
func statusBody(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

// mapCreateAccountError translates the status code of a failed registration
// response into the adapter's error taxonomy.
func mapCreateAccountError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidCredentialsFormat, statusBody(resp))
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrAccountAlreadyExists, statusBody(resp))
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), statusBody(resp))
	}
}

// mapSignInError translates the status code of a failed sign-in response.
func mapSignInError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, statusBody(resp))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrAccountNotFound, statusBody(resp))
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), statusBody(resp))
	}
}

// mapProfileError translates the status code of a failed profile update.
func mapProfileError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrNoActiveSession, statusBody(resp))
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), statusBody(resp))
	}
}

// mapCatalogError translates the status code of a failed catalog response
// into the generic transport sentinels.
func mapCatalogError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, statusBody(resp))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, statusBody(resp))
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, statusBody(resp))
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), statusBody(resp))
	}
}

// networkErr wraps a transport failure (no HTTP response produced) in
// [ErrNetworkUnavailable].
func networkErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrNetworkUnavailable, err)
}
