package models

// Credentials carries the email/password pair used by registration and
// password sign-in requests. Password is plaintext on the wire (TLS is
// assumed) and is hashed server-side before storage.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Name and PhotoURL are optional profile fields supplied at
	// registration time; ignored by sign-in.
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// FederatedSignInRequest carries the identity token obtained from the
// external consent flow. The server verifies the token and upserts the
// matching account.
type FederatedSignInRequest struct {
	// IDToken is the raw OIDC ID token issued by the external provider.
	IDToken string `json:"id_token"`
}

// MovieListResponse is the payload of catalog listing endpoints.
type MovieListResponse struct {
	// Movies is the page of catalog entries matching the request filter.
	Movies []Movie `json:"movies"`

	// Length is the number of entries in Movies, provided so clients can
	// validate the response without iterating the slice.
	Length int `json:"length"`
}

// FavoriteListResponse is the payload of the favorites listing endpoint.
// Movies carries the full catalog entries so the client does not need a
// second round-trip per favorite.
type FavoriteListResponse struct {
	Favorites []Favorite `json:"favorites"`
	Movies    []Movie    `json:"movies"`
}
