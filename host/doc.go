// Package host provides a reference runtime for executing autosplitter WASM modules.
//
// It abstracts the underlying WASM engine (wazero), manages the autosplitter
// lifecycle (_initialize, construct, update) and binds the "env" host module
// to any ports.Host, typically a simulated hostfuncs.Host. It is meant for
// local testing and debugging; it never attaches to real processes.
package host
