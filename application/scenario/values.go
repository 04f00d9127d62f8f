package scenario

import (
	"fmt"
	"math"
	"strconv"

	"github.com/autosplit-dev/autosplit-sdk/process"
)

// EncodeValue parses value as the named scalar type and returns its bytes
// in the host byte order. Integers accept Go literal prefixes (0x, 0o, 0b).
func EncodeValue(typ, value string) ([]byte, error) {
	switch typ {
	case "u8", "u16", "u32", "u64":
		bits := scalarBits(typ)
		n, err := strconv.ParseUint(value, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", typ, value, err)
		}
		return putUint(n, bits/8), nil
	case "i8", "i16", "i32", "i64":
		bits := scalarBits(typ)
		n, err := strconv.ParseInt(value, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", typ, value, err)
		}
		return putUint(uint64(n), bits/8), nil //nolint:gosec // two's complement reinterpretation
	case "f32":
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", typ, value, err)
		}
		return putUint(uint64(math.Float32bits(float32(f))), 4), nil
	case "f64":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", typ, value, err)
		}
		return putUint(math.Float64bits(f), 8), nil
	default:
		return nil, fmt.Errorf("unknown value type %q", typ)
	}
}

func scalarBits(typ string) int {
	switch typ[1:] {
	case "8":
		return 8
	case "16":
		return 16
	case "32":
		return 32
	default:
		return 64
	}
}

func putUint(v uint64, size int) []byte {
	buf := make([]byte, size)
	order := process.ByteOrder()
	switch size {
	case 1:
		buf[0] = byte(v)
	case 2:
		order.PutUint16(buf, uint16(v)) //nolint:gosec // G115: range checked by ParseUint/ParseInt
	case 4:
		order.PutUint32(buf, uint32(v)) //nolint:gosec // G115: range checked by ParseUint/ParseInt
	default:
		order.PutUint64(buf, v)
	}
	return buf
}
