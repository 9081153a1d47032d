package domain

// Key is a 256-bit symmetric working key.
type Key [32]byte

func (k Key) Slice() []byte { return k[:] }

// Op tags identify step kinds on the wire. They are part of the bundle
// format and must not change between producer and consumer builds.
const (
	OpRollingKey = "rolling_key"
	OpAESGCM     = "aesgcm_enc"
	OpChaCha     = "chacha20poly1305_enc"
	OpWhirlpool  = "whirlpool"
)

// Step is one entry of a pipeline definition. The pipeline is fixed at
// build time; the orchestrator walks an ordered []Step and dispatches
// on the concrete type.
type Step interface {
	// Op returns the wire tag recorded for this step.
	Op() string
}

// RatchetStep advances the working key. It does not touch the payload.
type RatchetStep struct{}

func (RatchetStep) Op() string { return OpRollingKey }

// AEADStep authenticated-encrypts the payload with the backend named
// by Tag, binding AAD without encrypting it. The key in effect is
// whatever the preceding ratchet steps left behind.
type AEADStep struct {
	Tag string // OpAESGCM or OpChaCha
	AAD string
}

func (s AEADStep) Op() string { return s.Tag }

// DigestStep records an integrity digest of the payload as it stands
// at this point in the walk. It changes neither key nor payload.
type DigestStep struct{}

func (DigestStep) Op() string { return OpWhirlpool }

// StepRecord is the persisted trace of one executed step. Nonce and
// AAD are set for AEAD steps only, Digest for digest steps only; the
// rolling-key step records nothing but its tag.
type StepRecord struct {
	Op     string
	Nonce  []byte
	AAD    []byte
	Digest string // lowercase hex
}

// Bundle is the replayable artifact produced by an encrypt walk. Steps
// mirrors the pipeline definition positionally; it is a recording of
// what happened, not a plan the consumer may reorder.
type Bundle struct {
	ID    string // 16 lowercase hex chars
	Steps []StepRecord
	Data  []byte
}
