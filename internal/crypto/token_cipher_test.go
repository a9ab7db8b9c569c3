package crypto

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func newTestCipher(t *testing.T) TokenCipher {
	t.Helper()

	material, err := NewRandomKeyMaterial()
	if err != nil {
		t.Fatalf("NewRandomKeyMaterial error: %v", err)
	}
	c, err := NewTokenCipher(material)
	if err != nil {
		t.Fatalf("NewTokenCipher error: %v", err)
	}
	return c
}

func TestNewRandomKeyMaterial_LengthAndRandomness(t *testing.T) {
	m1, err := NewRandomKeyMaterial()
	if err != nil {
		t.Fatalf("NewRandomKeyMaterial error: %v", err)
	}
	m2, err := NewRandomKeyMaterial()
	if err != nil {
		t.Fatalf("NewRandomKeyMaterial error: %v", err)
	}

	if len(m1) != keyMaterialLen {
		t.Fatalf("material length = %d, want %d", len(m1), keyMaterialLen)
	}
	if bytes.Equal(m1, m2) {
		t.Fatalf("expected key material to differ, but it is equal")
	}
}

func TestNewTokenCipher_RejectsWrongLength(t *testing.T) {
	if _, err := NewTokenCipher([]byte("too short")); err == nil {
		t.Fatalf("expected error for short key material, got nil")
	}
}

func TestTokenCipher_SealOpenRoundTrip(t *testing.T) {
	c := newTestCipher(t)

	token := "eyJhbGciOiJIUzI1NiJ9.payload.signature"
	blob, err := c.Seal(token)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if strings.Contains(blob, token) {
		t.Fatalf("sealed blob contains the plaintext token")
	}

	got, err := c.Open(blob)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if got != token {
		t.Fatalf("Open = %q, want %q", got, token)
	}
}

func TestTokenCipher_SealIsNonDeterministic(t *testing.T) {
	c := newTestCipher(t)

	b1, err := c.Seal("token")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := c.Seal("token")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected distinct blobs for the same plaintext")
	}
}

func TestTokenCipher_OpenFailsWithDifferentKey(t *testing.T) {
	blob, err := newTestCipher(t).Seal("token")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := newTestCipher(t).Open(blob); err == nil {
		t.Fatalf("expected error opening a blob sealed with a different key")
	}
}

func TestTokenCipher_OpenRejectsGarbage(t *testing.T) {
	c := newTestCipher(t)

	if _, err := c.Open("not base64 at all!!!"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
	if _, err := c.Open("c2hvcnQ="); err == nil {
		t.Fatalf("expected error for a blob shorter than the nonce")
	}
}

func TestLoadOrCreateKeyFile_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.key")

	first, err := LoadOrCreateKeyFile(path)
	if err != nil {
		t.Fatalf("LoadOrCreateKeyFile error: %v", err)
	}
	second, err := LoadOrCreateKeyFile(path)
	if err != nil {
		t.Fatalf("LoadOrCreateKeyFile error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("expected the same key material on reload")
	}
}
