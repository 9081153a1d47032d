package domain

import "errors"

// Every failure is fatal to the whole invocation: intermediate buffers
// are not independently valid ciphertext or plaintext, so there is no
// partial-success mode. Callers match with errors.Is.
var (
	// ErrSeedDecode reports a 0x-prefixed seed literal that is not
	// valid hex.
	ErrSeedDecode = errors.New("seed literal is not valid hex")

	// ErrAuthentication reports an AEAD tag or digest verification
	// failure: wrong key, tampered ciphertext, wrong nonce or AAD.
	ErrAuthentication = errors.New("authentication failed")

	// ErrMalformedBundle reports a structurally invalid artifact:
	// unparsable text, a missing field for a step tag, or a step
	// sequence that does not match the pipeline.
	ErrMalformedBundle = errors.New("malformed bundle")

	// ErrUnsupportedStep reports a step tag this build does not
	// recognise. The pipeline is fixed at build time, so this points
	// at a producer/consumer build mismatch rather than user input.
	ErrUnsupportedStep = errors.New("unsupported step")
)
