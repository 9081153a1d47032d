package ratchet

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"evolvex/internal/domain"
)

// Derive returns the next working key: the first 32 bytes of
// SHA3-512(cur || be8(counter) || extra).
func Derive(cur domain.Key, counter uint64, extra []byte) domain.Key {
	h := sha3.New512()
	h.Write(cur[:])

	var c [8]byte
	binary.BigEndian.PutUint64(c[:], counter)
	h.Write(c[:])
	h.Write(extra)

	var next domain.Key
	copy(next[:], h.Sum(nil)[:32])
	return next
}
