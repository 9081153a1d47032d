package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"evolvex/internal/domain"
)

// AESGCM is the AES-256-GCM backend.
var AESGCM Cipher = aesGCM{}

type aesGCM struct{}

func (aesGCM) Tag() string { return domain.OpAESGCM }

func (aesGCM) Seal(key domain.Key, plaintext, aad []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	nonce, err := newNonce()
	if err != nil {
		return nil, nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, aad), nonce, nil
}

func (aesGCM) Open(key domain.Key, nonce, ciphertext, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: aes-gcm: %v", domain.ErrAuthentication, err)
	}
	return plaintext, nil
}

func newGCM(key domain.Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.Slice())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
