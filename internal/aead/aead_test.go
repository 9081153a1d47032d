package aead_test

import (
	"bytes"
	"errors"
	"testing"

	"evolvex/internal/aead"
	"evolvex/internal/domain"
)

func testKey() domain.Key {
	var key domain.Key
	copy(key[:], "0123456789abcdef0123456789abcdef")
	return key
}

func backends() []aead.Cipher {
	return []aead.Cipher{aead.AESGCM, aead.ChaCha20Poly1305}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := testKey()
	plaintext := []byte("the quick brown fox")
	aad := []byte("context")

	for _, c := range backends() {
		ct, nonce, err := c.Seal(key, plaintext, aad)
		if err != nil {
			t.Fatalf("%s: Seal: %v", c.Tag(), err)
		}
		if len(nonce) != aead.NonceSize {
			t.Fatalf("%s: nonce length %d, want %d", c.Tag(), len(nonce), aead.NonceSize)
		}
		if len(ct) <= len(plaintext) {
			t.Fatalf("%s: ciphertext not longer than plaintext, tag missing?", c.Tag())
		}

		pt, err := c.Open(key, nonce, ct, aad)
		if err != nil {
			t.Fatalf("%s: Open: %v", c.Tag(), err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("%s: got %q, want %q", c.Tag(), pt, plaintext)
		}
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key := testKey()
	wrong := key
	wrong[0] ^= 1

	for _, c := range backends() {
		ct, nonce, err := c.Seal(key, []byte("secret"), nil)
		if err != nil {
			t.Fatalf("%s: Seal: %v", c.Tag(), err)
		}
		if _, err := c.Open(wrong, nonce, ct, nil); !errors.Is(err, domain.ErrAuthentication) {
			t.Fatalf("%s: got %v, want ErrAuthentication", c.Tag(), err)
		}
	}
}

func TestOpen_TamperedCiphertextFails(t *testing.T) {
	key := testKey()

	for _, c := range backends() {
		ct, nonce, err := c.Seal(key, []byte("secret"), []byte("aad"))
		if err != nil {
			t.Fatalf("%s: Seal: %v", c.Tag(), err)
		}
		ct[0] ^= 1
		if _, err := c.Open(key, nonce, ct, []byte("aad")); !errors.Is(err, domain.ErrAuthentication) {
			t.Fatalf("%s: got %v, want ErrAuthentication", c.Tag(), err)
		}
	}
}

func TestOpen_WrongAADFails(t *testing.T) {
	key := testKey()

	for _, c := range backends() {
		ct, nonce, err := c.Seal(key, []byte("secret"), []byte("aad"))
		if err != nil {
			t.Fatalf("%s: Seal: %v", c.Tag(), err)
		}
		if _, err := c.Open(key, nonce, ct, []byte("bad")); !errors.Is(err, domain.ErrAuthentication) {
			t.Fatalf("%s: got %v, want ErrAuthentication", c.Tag(), err)
		}
	}
}

func TestByTag(t *testing.T) {
	for _, c := range backends() {
		got, ok := aead.ByTag(c.Tag())
		if !ok || got.Tag() != c.Tag() {
			t.Fatalf("ByTag(%q) = %v, %v", c.Tag(), got, ok)
		}
	}
	if _, ok := aead.ByTag("rot13"); ok {
		t.Fatal("ByTag accepted an unknown tag")
	}
}
