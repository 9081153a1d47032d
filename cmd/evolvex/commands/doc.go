// Package commands defines the evolvex CLI.
//
// Commands
//
//   - enc      Encrypt a file through the fixed pipeline
//   - dec      Replay a bundle and recover the plaintext
//   - inspect  Print a bundle's ID and step tags
//
// The pipeline itself is baked in at build time; the CLI only supplies
// the seed and the input/output paths. Any failure aborts the whole
// invocation with a non-zero exit and no partial output.
package commands
