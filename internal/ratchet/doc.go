// Package ratchet implements the one-way rolling-key derivation.
//
// Derive is a pure function: the decrypt walk reproduces the exact key
// sequence of the encrypt walk by replaying the same counter
// progression. Once advanced, the prior key is not recoverable from
// the new one.
package ratchet
