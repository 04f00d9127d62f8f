package process

import (
	"bytes"
	"encoding/binary"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/errors"
)

// Reader is anything that can fill a buffer from an address. *Process is
// the production implementation.
type Reader interface {
	ReadBytes(addr entities.Address, buf []byte) error
}

// Scalar lists the fixed-size numeric types Read decodes.
type Scalar interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Read reads one value of type T at addr.
//
//	level, err := process.Read[uint32](game, base.Add(0xD1))
func Read[T Scalar](r Reader, addr entities.Address) (T, error) {
	var v T
	err := ReadInto(r, addr, &v)
	return v, err
}

// ReadAddress reads a pointer of the given width (4 or 8 bytes) at addr.
func ReadAddress(r Reader, addr entities.Address, width int) (entities.Address, error) {
	switch width {
	case 4:
		v, err := Read[uint32](r, addr)
		return entities.Address(v), err
	case 8:
		v, err := Read[uint64](r, addr)
		return entities.Address(v), err
	default:
		return entities.NullAddress, &errors.MemoryReadError{Address: addr, Size: width, Reason: "unsupported pointer width"}
	}
}

// ReadInto decodes a fixed-size value (a pointer to a scalar, an array or a
// struct of those) from the bytes at addr. data is left untouched when the
// read fails.
func ReadInto(r Reader, addr entities.Address, data any) error {
	size := binary.Size(data)
	if size < 0 {
		return &errors.MemoryReadError{Address: addr, Reason: "value is not fixed-size"}
	}
	buf := make([]byte, size)
	if err := r.ReadBytes(addr, buf); err != nil {
		return err
	}
	if err := binary.Read(bytes.NewReader(buf), ByteOrder(), data); err != nil {
		return &errors.MemoryReadError{Address: addr, Size: size, Reason: err.Error()}
	}
	return nil
}
