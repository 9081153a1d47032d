// Package aead provides the two authenticated-encryption backends the
// pipeline dispatches to: AES-256-GCM and ChaCha20-Poly1305.
//
// Both take a 32-byte key, use a fresh random 12-byte nonce per Seal,
// and embed the authentication tag in the returned ciphertext. They
// are interchangeable behind the Cipher interface; which one runs at a
// given pipeline position is fixed by the step definition.
package aead
