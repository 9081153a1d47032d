// Package app wires the pipeline to the filesystem. It is the only
// package that reads or writes files; the core consumes and produces
// byte buffers.
package app
