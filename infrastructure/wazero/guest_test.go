package wazero

import "github.com/tetratelabs/wazero/api"

// forwardingGuest assembles a wasm module that imports every function in
// fns from module and exports a function of the same name and signature
// that passes its parameters straight through. Instantiating it makes the
// runtime check each import against the declared signature. The module
// defines and exports one page of memory for string and buffer arguments.
func forwardingGuest(module string, fns []hostFunction) []byte {
	var types, imports, funcs, exports, code []byte
	n := len(fns)
	for i, hf := range fns {
		types = append(types, 0x60)
		types = append(types, valueTypes(hf.params)...)
		types = append(types, valueTypes(hf.results)...)

		imports = append(imports, wasmName(module)...)
		imports = append(imports, wasmName(hf.name)...)
		imports = append(imports, 0x00)
		imports = append(imports, uleb(i)...)

		funcs = append(funcs, uleb(i)...)

		exports = append(exports, wasmName(hf.name)...)
		exports = append(exports, 0x00)
		exports = append(exports, uleb(n+i)...)

		body := []byte{0x00} // no locals
		for p := range hf.params {
			body = append(body, 0x20) // local.get
			body = append(body, uleb(p)...)
		}
		body = append(body, 0x10) // call
		body = append(body, uleb(i)...)
		body = append(body, 0x0b)
		code = append(code, uleb(len(body))...)
		code = append(code, body...)
	}
	exports = append(exports, wasmName("memory")...)
	exports = append(exports, 0x02, 0x00)

	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	out = append(out, section(1, vec(n, types))...)
	out = append(out, section(2, vec(n, imports))...)
	out = append(out, section(3, vec(n, funcs))...)
	out = append(out, section(5, vec(1, []byte{0x00, 0x01}))...)
	out = append(out, section(7, vec(n+1, exports))...)
	out = append(out, section(10, vec(n, code))...)
	return out
}

func valueTypes(vts []api.ValueType) []byte {
	out := make([]byte, len(vts))
	for i, vt := range vts {
		out[i] = vt
	}
	return vec(len(vts), out)
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
