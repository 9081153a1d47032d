package bundle

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"evolvex/internal/domain"
)

const idLength = 16 // hex chars of a random uint64

type stepJSON struct {
	Op        string  `json:"op"`
	NonceB64  *string `json:"nonce_b64,omitempty"`
	AADB64    *string `json:"aad_b64,omitempty"`
	DigestHex *string `json:"digest_hex,omitempty"`
}

type bundleJSON struct {
	ID      string     `json:"id"`
	Steps   []stepJSON `json:"steps"`
	DataB64 string     `json:"data_b64"`
}

// NewID returns a fresh random bundle identifier.
func NewID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// Marshal encodes a bundle as indented JSON.
func Marshal(b domain.Bundle) ([]byte, error) {
	out := bundleJSON{
		ID:      b.ID,
		Steps:   make([]stepJSON, 0, len(b.Steps)),
		DataB64: base64.StdEncoding.EncodeToString(b.Data),
	}
	for _, rec := range b.Steps {
		s := stepJSON{Op: rec.Op}
		if rec.Nonce != nil {
			s.NonceB64 = b64ptr(rec.Nonce)
		}
		if rec.AAD != nil {
			s.AADB64 = b64ptr(rec.AAD)
		}
		if rec.Digest != "" {
			d := rec.Digest
			s.DigestHex = &d
		}
		out.Steps = append(out.Steps, s)
	}
	return json.MarshalIndent(out, "", "  ")
}

// Unmarshal parses and structurally validates a bundle. Absent
// optional fields decode to nil, never to zero-length data; whether
// the step sequence matches the pipeline is the orchestrator's check,
// not the codec's.
func Unmarshal(raw []byte) (domain.Bundle, error) {
	var in bundleJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return domain.Bundle{}, fmt.Errorf("%w: %v", domain.ErrMalformedBundle, err)
	}
	if len(in.ID) != idLength {
		return domain.Bundle{}, fmt.Errorf("%w: bad id %q", domain.ErrMalformedBundle, in.ID)
	}
	if _, err := hex.DecodeString(in.ID); err != nil {
		return domain.Bundle{}, fmt.Errorf("%w: bad id %q", domain.ErrMalformedBundle, in.ID)
	}
	if in.Steps == nil {
		return domain.Bundle{}, fmt.Errorf("%w: missing steps", domain.ErrMalformedBundle)
	}

	data, err := base64.StdEncoding.DecodeString(in.DataB64)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("%w: data_b64: %v", domain.ErrMalformedBundle, err)
	}

	b := domain.Bundle{ID: in.ID, Data: data}
	for i, s := range in.Steps {
		rec := domain.StepRecord{Op: s.Op}
		if rec.Nonce, err = b64field(s.NonceB64); err != nil {
			return domain.Bundle{}, fmt.Errorf("%w: step %d nonce_b64: %v", domain.ErrMalformedBundle, i, err)
		}
		if rec.AAD, err = b64field(s.AADB64); err != nil {
			return domain.Bundle{}, fmt.Errorf("%w: step %d aad_b64: %v", domain.ErrMalformedBundle, i, err)
		}
		if s.DigestHex != nil {
			rec.Digest = *s.DigestHex
		}
		b.Steps = append(b.Steps, rec)
	}
	return b, nil
}

func b64ptr(b []byte) *string {
	s := base64.StdEncoding.EncodeToString(b)
	return &s
}

// b64field decodes an optional base64 field. A nil pointer stays nil;
// an empty string decodes to an empty, non-nil slice.
func b64field(s *string) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(*s)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}
