package autosplit

import (
	"github.com/autosplit-dev/autosplit-sdk/application/splitter"
	"github.com/autosplit-dev/autosplit-sdk/process"
	"github.com/autosplit-dev/autosplit-sdk/timer"
)

// Compile-time interface compliance check
var _ HostFunctions = (*timer.Timer)(nil)

// Register installs the autosplitter's constructor. Call it from init.
// The constructor runs once, when the host first calls construct or update.
func Register[S Splitter](construct func(host HostFunctions) S) {
	splitter.Register(func(host HostFunctions) Splitter {
		return construct(host)
	})
}

// Read reads a T at addr in little-endian byte order.
func Read[T Scalar](p *Process, addr Address) (T, error) {
	return process.Read[T](p, addr)
}

// ReadInto fills data, a pointer to a fixed-size value such as a struct of
// scalars or an array, from memory at addr.
func ReadInto(p *Process, addr Address, data any) error {
	return process.ReadInto(p, addr, data)
}

// ReadPointer reads a pointer of the given width (4 or 8 bytes) at addr.
func ReadPointer(p *Process, addr Address, width int) (Address, error) {
	return process.ReadAddress(p, addr, width)
}

// ReadPointerPath follows a chain of pointers. For every offset but the
// last it reads a pointer at the current address plus that offset. It
// returns the final address plus the last offset, undereferenced.
func ReadPointerPath(p *Process, base Address, width int, offsets ...int64) (Address, error) {
	if len(offsets) == 0 {
		return base, nil
	}
	addr := base
	for _, off := range offsets[:len(offsets)-1] {
		next, err := process.ReadAddress(p, addr.Add(off), width)
		if err != nil {
			return NullAddress, err
		}
		addr = next
	}
	return addr.Add(offsets[len(offsets)-1]), nil
}
