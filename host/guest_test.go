package host_test

// guestExport is an exported guest function that calls one parameterless
// env import, or traps when calls is empty.
type guestExport struct {
	name  string
	calls string
}

// buildGuest assembles a minimal wasm module importing the named env
// functions (all of type () -> ()) and exporting one function per export.
func buildGuest(imports []string, exports ...guestExport) []byte {
	index := make(map[string]int, len(imports))
	for i, name := range imports {
		index[name] = i
	}

	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	// type section: one () -> () signature
	out = append(out, section(1, vec(1, []byte{0x60, 0x00, 0x00}))...)

	var imp []byte
	for _, name := range imports {
		imp = append(imp, wasmName("env")...)
		imp = append(imp, wasmName(name)...)
		imp = append(imp, 0x00, 0x00) // func, type 0
	}
	out = append(out, section(2, vec(len(imports), imp))...)

	funcs := make([]byte, len(exports))
	out = append(out, section(3, vec(len(exports), funcs))...)

	var exp []byte
	for i, e := range exports {
		exp = append(exp, wasmName(e.name)...)
		exp = append(exp, 0x00)
		exp = append(exp, uleb(len(imports)+i)...)
	}
	out = append(out, section(7, vec(len(exports), exp))...)

	var code []byte
	for _, e := range exports {
		body := []byte{0x00} // no locals
		if e.calls == "" {
			body = append(body, 0x00) // unreachable
		} else {
			body = append(body, 0x10)
			body = append(body, uleb(index[e.calls])...)
		}
		body = append(body, 0x0b)
		code = append(code, uleb(len(body))...)
		code = append(code, body...)
	}
	out = append(out, section(10, vec(len(exports), code))...)
	return out
}

func section(id byte, payload []byte) []byte {
	return append(append([]byte{id}, uleb(len(payload))...), payload...)
}

func vec(n int, items []byte) []byte {
	return append(uleb(n), items...)
}

func wasmName(s string) []byte {
	return append(uleb(len(s)), s...)
}

func uleb(v int) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}
