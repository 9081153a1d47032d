// Package seed turns a user-supplied seed literal into the fixed-size
// initial pipeline key.
package seed

import (
	"encoding/hex"
	"fmt"
	"strings"

	"evolvex/internal/domain"
)

// Normalize derives the 32-byte initial key from a seed literal. A
// literal prefixed 0x or 0X is hex-decoded first; otherwise the raw
// bytes are used. Seeds longer than 32 bytes are truncated, shorter
// ones zero-padded on the right.
func Normalize(literal string) (domain.Key, error) {
	raw := []byte(literal)
	if strings.HasPrefix(literal, "0x") || strings.HasPrefix(literal, "0X") {
		b, err := hex.DecodeString(literal[2:])
		if err != nil {
			return domain.Key{}, fmt.Errorf("%w: %v", domain.ErrSeedDecode, err)
		}
		raw = b
	}
	var key domain.Key
	copy(key[:], raw)
	return key, nil
}
