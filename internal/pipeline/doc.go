// Package pipeline walks the fixed, ordered step list over a payload.
//
// The forward walk carries a (key, data, counter) state: ratchet steps
// advance the key, AEAD steps transform the data and capture the
// nonce and associated data needed to invert them, digest steps record
// an integrity checkpoint. The reverse walk first replays the ratchet
// progression to reconstruct the key in effect at every position, then
// unwinds the recorded steps in reverse composition order.
//
// State is local to a single walk; walks are not safe to share across
// goroutines but independent walks may run concurrently.
package pipeline
