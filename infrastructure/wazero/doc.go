// Package wazero provides adapters for registering SDK host functions with the wazero runtime.
//
// This package bridges any ports.Host implementation (for example the pure Go
// hostfuncs.Host) with the wazero WebAssembly runtime. It handles:
//
//   - Decoding the wasm value stack of each host function
//   - Copying strings and read buffers between guest memory and the host
//   - Registering the "env" module that autosplitters import
//
// # Basic Usage
//
//	host := hostfuncs.NewHost(
//	    hostfuncs.WithProcessProvider(provider),
//	)
//
//	runtime := wazero.NewRuntime(ctx)
//	err := wazero.RegisterWithRuntime(ctx, runtime, host)
//
// Guest strings longer than MaxStringLen and reads larger than MaxReadSize
// are rejected: strings are dropped, attach and module lookups return 0,
// and process_read reports failure.
package wazero
