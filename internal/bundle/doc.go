// Package bundle serializes the replayable artifact to and from its
// JSON container format.
//
// The wire shape is fixed: "id" (16 lowercase hex chars), "steps" (an
// ordered list of {op, nonce_b64?, aad_b64?, digest_hex?} objects with
// optional fields omitted when not applicable) and "data_b64". Unknown
// fields, such as the legacy tag_b64, are ignored on decode.
package bundle
