package aead

import (
	"crypto/rand"

	"evolvex/internal/domain"
)

// NonceSize is the nonce length shared by both backends.
const NonceSize = 12

// Cipher is the capability set the orchestrator needs from a backend.
type Cipher interface {
	// Tag returns the op tag recorded for steps using this backend.
	Tag() string

	// Seal encrypts plaintext under key with aad bound but not
	// encrypted, using a fresh random nonce. The authentication tag
	// is embedded in the returned ciphertext.
	Seal(key domain.Key, plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Open reverses Seal. It returns domain.ErrAuthentication
	// (wrapped) if the embedded tag does not verify against key,
	// nonce, ciphertext and aad.
	Open(key domain.Key, nonce, ciphertext, aad []byte) ([]byte, error)
}

var registry = map[string]Cipher{
	domain.OpAESGCM: AESGCM,
	domain.OpChaCha: ChaCha20Poly1305,
}

// ByTag resolves a recorded op tag to its backend.
func ByTag(op string) (Cipher, bool) {
	c, ok := registry[op]
	return c, ok
}

// newNonce draws a fresh nonce from the process CSPRNG. Exhaustion of
// the source is unrecoverable and surfaces as the returned error.
func newNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}
