package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen   = 16
	secretLen = 32

	// keyMaterialLen is the layout of a key file: salt followed by secret.
	keyMaterialLen = saltLen + secretLen
)

// ErrInvalidKeyMaterial is returned when the key material has the wrong
// length to split into a salt and a secret.
var ErrInvalidKeyMaterial = errors.New("invalid key material")

// tokenCipher is the private implementation of [TokenCipher]. The AES key
// is derived once at construction and kept only in memory.
type tokenCipher struct {
	gcm cipher.AEAD
}

// NewTokenCipher builds a [TokenCipher] from key material produced by
// [NewRandomKeyMaterial] or loaded via [LoadOrCreateKeyFile]. The AES-256
// key is stretched from the secret with Argon2id using the parameters
// recommended by OWASP (2024): 1 iteration, 64 MiB memory, 4 threads.
func NewTokenCipher(material []byte) (TokenCipher, error) {
	if len(material) != keyMaterialLen {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyMaterial, keyMaterialLen, len(material))
	}

	salt, secret := material[:saltLen], material[saltLen:]
	key := argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &tokenCipher{gcm: gcm}, nil
}

// Seal implements [TokenCipher]. A random nonce is prepended to the
// ciphertext so Open can locate it: blob = nonce || ciphertext, base64.
func (c *tokenCipher) Seal(plaintext string) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := c.gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ciphertext...)), nil
}

// Open implements [TokenCipher]. An authentication failure almost always
// means the key file changed since the token was sealed.
func (c *tokenCipher) Open(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := c.gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := c.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt token: %w", err)
	}

	return string(plaintext), nil
}

// NewRandomKeyMaterial reads fresh salt and secret from the OS CSPRNG.
// Use it directly for ephemeral ciphers that should not survive the
// process, such as tests and in-memory databases.
func NewRandomKeyMaterial() ([]byte, error) {
	material := make([]byte, keyMaterialLen)
	if _, err := io.ReadFull(rand.Reader, material); err != nil {
		return nil, fmt.Errorf("generate key material: %w", err)
	}
	return material, nil
}

// LoadOrCreateKeyFile returns the key material stored at path, generating
// and persisting fresh material on first run. The file is created with
// owner-only permissions.
func LoadOrCreateKeyFile(path string) ([]byte, error) {
	material, err := os.ReadFile(path)
	if err == nil {
		if len(material) != keyMaterialLen {
			return nil, fmt.Errorf("%w: key file %s holds %d bytes", ErrInvalidKeyMaterial, path, len(material))
		}
		return material, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	material, err = NewRandomKeyMaterial()
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, material, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}

	return material, nil
}
