// Package hostfuncs provides a pure Go reference host for autosplitters.
// These implementations have NO WASM runtime dependencies: Host satisfies
// ports.Host directly, so it can back the wazero adapter or be handed to the
// SDK in-process from unit tests.
//
// The reference host simulates processes in memory. It never attaches to
// real operating system processes.
package hostfuncs
