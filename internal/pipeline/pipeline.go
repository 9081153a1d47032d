package pipeline

import (
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"evolvex/internal/aead"
	"evolvex/internal/bundle"
	"evolvex/internal/domain"
	"evolvex/internal/ratchet"
	"evolvex/internal/util/memzero"
)

// Default returns the pipeline baked in at build time: advance the
// key once, then layer AES-256-GCM under ChaCha20-Poly1305.
func Default() []domain.Step {
	return []domain.Step{
		domain.RatchetStep{},
		domain.AEADStep{Tag: domain.OpAESGCM, AAD: "adap"},
		domain.AEADStep{Tag: domain.OpChaCha, AAD: "evolve"},
	}
}

// Encrypt runs the forward walk over plaintext and returns the bundle
// holding the final ciphertext and the per-step records needed to
// invert it.
func Encrypt(initial domain.Key, plaintext []byte, steps []domain.Step) (domain.Bundle, error) {
	key := initial
	counter := uint64(1)
	data := plaintext
	records := make([]domain.StepRecord, 0, len(steps))
	defer memzero.Zero(key[:])

	for _, step := range steps {
		switch s := step.(type) {
		case domain.RatchetStep:
			key, counter = advance(key, counter)
			records = append(records, domain.StepRecord{Op: domain.OpRollingKey})

		case domain.AEADStep:
			c, ok := aead.ByTag(s.Tag)
			if !ok {
				return domain.Bundle{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedStep, s.Tag)
			}
			ct, nonce, err := c.Seal(key, data, []byte(s.AAD))
			if err != nil {
				return domain.Bundle{}, fmt.Errorf("%s seal: %w", s.Tag, err)
			}
			data = ct
			records = append(records, domain.StepRecord{Op: s.Tag, Nonce: nonce, AAD: []byte(s.AAD)})

		case domain.DigestStep:
			records = append(records, domain.StepRecord{Op: domain.OpWhirlpool, Digest: digest(data)})

		default:
			return domain.Bundle{}, fmt.Errorf("%w: %T", domain.ErrUnsupportedStep, step)
		}
	}

	id, err := bundle.NewID()
	if err != nil {
		return domain.Bundle{}, err
	}
	return domain.Bundle{ID: id, Steps: records, Data: data}, nil
}

// Decrypt replays a bundle against the pipeline it was recorded from
// and returns the original plaintext. It validates the step records
// before any cryptographic work and writes nothing on failure.
func Decrypt(initial domain.Key, b domain.Bundle, steps []domain.Step) ([]byte, error) {
	if err := validate(b, steps); err != nil {
		return nil, err
	}

	// Forward pass: reconstruct the key in effect at every position.
	keys := make([]domain.Key, len(steps))
	key := initial
	counter := uint64(1)
	for i, step := range steps {
		keys[i] = key
		if _, ok := step.(domain.RatchetStep); ok {
			key, counter = advance(key, counter)
		}
	}
	defer func() {
		memzero.Zero(key[:])
		for i := range keys {
			memzero.Zero(keys[i][:])
		}
	}()

	// Unwind: the last transformation applied is the first removed.
	data := b.Data
	for i := len(steps) - 1; i >= 0; i-- {
		rec := b.Steps[i]
		switch steps[i].(type) {
		case domain.RatchetStep:
			// Key evolution was replayed in the forward pass.

		case domain.AEADStep:
			c, _ := aead.ByTag(rec.Op)
			pt, err := c.Open(keys[i], rec.Nonce, data, rec.AAD)
			if err != nil {
				return nil, fmt.Errorf("step %d %s: %w", i, rec.Op, err)
			}
			data = pt

		case domain.DigestStep:
			if digest(data) != rec.Digest {
				return nil, fmt.Errorf("step %d: payload digest mismatch: %w", i, domain.ErrAuthentication)
			}
		}
	}
	return data, nil
}

// advance performs one ratchet step: the extra bytes are the
// big-endian counter, matching what the producer feeds the hash.
func advance(key domain.Key, counter uint64) (domain.Key, uint64) {
	var extra [8]byte
	binary.BigEndian.PutUint64(extra[:], counter)
	next := ratchet.Derive(key, counter, extra[:])
	memzero.Zero(key[:])
	return next, counter + 1
}

// validate checks the record list against the pipeline definition
// positionally. Any mismatch is fatal before an AEAD call is made.
func validate(b domain.Bundle, steps []domain.Step) error {
	if len(b.Steps) != len(steps) {
		return fmt.Errorf("%w: %d step records, pipeline has %d",
			domain.ErrMalformedBundle, len(b.Steps), len(steps))
	}
	for i, step := range steps {
		rec := b.Steps[i]
		if !knownOp(rec.Op) {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedStep, rec.Op)
		}
		if rec.Op != step.Op() {
			return fmt.Errorf("%w: step %d records %q, pipeline expects %q",
				domain.ErrMalformedBundle, i, rec.Op, step.Op())
		}
		switch step.(type) {
		case domain.RatchetStep:
		case domain.AEADStep:
			if len(rec.Nonce) != aead.NonceSize {
				return fmt.Errorf("%w: step %d: missing or malformed nonce", domain.ErrMalformedBundle, i)
			}
		case domain.DigestStep:
			if rec.Digest == "" {
				return fmt.Errorf("%w: step %d: missing digest", domain.ErrMalformedBundle, i)
			}
		default:
			return fmt.Errorf("%w: %T", domain.ErrUnsupportedStep, step)
		}
	}
	return nil
}

func knownOp(op string) bool {
	if _, ok := aead.ByTag(op); ok {
		return true
	}
	return op == domain.OpRollingKey || op == domain.OpWhirlpool
}

func digest(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}
