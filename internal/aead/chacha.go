package aead

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"evolvex/internal/domain"
)

// ChaCha20Poly1305 is the ChaCha20-Poly1305 backend.
var ChaCha20Poly1305 Cipher = chaCha{}

type chaCha struct{}

func (chaCha) Tag() string { return domain.OpChaCha }

func (chaCha) Seal(key domain.Key, plaintext, aad []byte) ([]byte, []byte, error) {
	c, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, nil, err
	}
	nonce, err := newNonce()
	if err != nil {
		return nil, nil, err
	}
	return c.Seal(nil, nonce, plaintext, aad), nonce, nil
}

func (chaCha) Open(key domain.Key, nonce, ciphertext, aad []byte) ([]byte, error) {
	c, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, err
	}
	plaintext, err := c.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: chacha20-poly1305: %v", domain.ErrAuthentication, err)
	}
	return plaintext, nil
}
