// Package entities provides the core value types shared by the guest SDK and
// the reference host: addresses in an attached process, opaque process
// handles and the timer state reported by the host.
package entities
