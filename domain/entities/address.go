package entities

import "fmt"

// Address is a location in the address space of an attached process.
//
// It carries no validity guarantee: an Address only becomes meaningful once
// a read at it succeeds. Autosplitters may attach to 32-bit processes and
// simply get a failed read when addressing outside their space.
type Address uint64

// NullAddress is the zero address. Hosts use it to signal "not found".
const NullAddress Address = 0

// Add returns the address offset by n bytes. Negative offsets move
// backwards; arithmetic wraps like the underlying uint64.
func (a Address) Add(n int64) Address {
	return Address(uint64(a) + uint64(n)) //nolint:gosec // G115: wrapping is intended
}

// IsNull reports whether a is the zero address.
func (a Address) IsNull() bool {
	return a == NullAddress
}

// String formats the address as 0x-prefixed hex.
func (a Address) String() string {
	return fmt.Sprintf("%#x", uint64(a))
}

// ProcessHandle is the host's opaque reference to an attached process.
// The zero value never names a process.
type ProcessHandle uint64

// InvalidProcessHandle is returned by hosts when attaching fails.
const InvalidProcessHandle ProcessHandle = 0

// Valid reports whether the handle refers to a process.
func (h ProcessHandle) Valid() bool {
	return h != InvalidProcessHandle
}
