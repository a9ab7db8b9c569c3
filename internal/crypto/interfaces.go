package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_cipher_mock.go -package=mock

// TokenCipher protects the bearer token persisted between client runs.
// It knows nothing about the network, the database, or sessions; its only
// job is to seal and open small secrets at rest.
type TokenCipher interface {
	// Seal encrypts plaintext and returns a base64 blob safe to store in
	// the local database.
	Seal(plaintext string) (string, error)

	// Open decrypts a blob produced by Seal. It fails when the blob is
	// corrupted or was sealed with different key material.
	Open(blob string) (string, error)
}
