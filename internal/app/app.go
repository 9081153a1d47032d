package app

import (
	"os"

	"github.com/sirupsen/logrus"

	"evolvex/internal/bundle"
	"evolvex/internal/domain"
	"evolvex/internal/pipeline"
	"evolvex/internal/seed"
)

// App runs full encrypt/decrypt invocations over files using the
// build-time pipeline.
type App struct {
	log   *logrus.Logger
	steps []domain.Step
}

// New constructs the app around the default pipeline.
func New(cfg Config) *App {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}
	return &App{log: log, steps: pipeline.Default()}
}

// EncryptFile encrypts the contents of in under the seed literal and
// writes the bundle artifact to out.
func (a *App) EncryptFile(seedLiteral, in, out string) (domain.Bundle, error) {
	key, err := seed.Normalize(seedLiteral)
	if err != nil {
		return domain.Bundle{}, err
	}
	plaintext, err := os.ReadFile(in)
	if err != nil {
		return domain.Bundle{}, err
	}

	b, err := pipeline.Encrypt(key, plaintext, a.steps)
	if err != nil {
		return domain.Bundle{}, err
	}
	raw, err := bundle.Marshal(b)
	if err != nil {
		return domain.Bundle{}, err
	}
	if err := writeFile(out, raw, 0o644); err != nil {
		return domain.Bundle{}, err
	}

	a.log.WithFields(logrus.Fields{
		"bundle":     b.ID,
		"steps":      len(b.Steps),
		"plaintext":  len(plaintext),
		"ciphertext": len(b.Data),
	}).Info("encrypted")
	return b, nil
}

// DecryptFile replays the bundle artifact at in under the seed literal
// and writes the recovered plaintext to out. On any failure nothing is
// written.
func (a *App) DecryptFile(seedLiteral, in, out string) error {
	key, err := seed.Normalize(seedLiteral)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	b, err := bundle.Unmarshal(raw)
	if err != nil {
		return err
	}

	plaintext, err := pipeline.Decrypt(key, b, a.steps)
	if err != nil {
		return err
	}
	if err := writeFile(out, plaintext, 0o644); err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"bundle":    b.ID,
		"plaintext": len(plaintext),
	}).Info("decrypted")
	return nil
}

// InspectFile parses the bundle artifact at in without touching any
// key material.
func (a *App) InspectFile(in string) (domain.Bundle, error) {
	raw, err := os.ReadFile(in)
	if err != nil {
		return domain.Bundle{}, err
	}
	return bundle.Unmarshal(raw)
}

// writeFile writes via a temp file then rename so a failed invocation
// never leaves a partial artifact behind.
func writeFile(path string, b []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
