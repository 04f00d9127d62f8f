//go:build wasip1

// Package wasm provides infrastructure adapters that interface with the WASM host environment.
package wasm

// Host imports live in the "env" module. Pointers are offsets into this
// module's linear memory; strings are passed as pointer and length.
//
//nolint:revive // intentional snake_case to match WASM import convention

//go:wasmimport env runtime_print_message
func runtime_print_message(ptr uint32, length uint32)

//go:wasmimport env runtime_set_tick_rate
func runtime_set_tick_rate(hz float64)

//go:wasmimport env process_attach
func process_attach(namePtr uint32, nameLen uint32) uint64

//go:wasmimport env process_detach
func process_detach(handle uint64)

//go:wasmimport env process_get_module_address
func process_get_module_address(handle uint64, namePtr uint32, nameLen uint32) uint64

//go:wasmimport env process_read
func process_read(handle uint64, address uint64, bufPtr uint32, bufLen uint32) uint32

//go:wasmimport env timer_start
func timer_start()

//go:wasmimport env timer_split
func timer_split()

//go:wasmimport env timer_skip_split
func timer_skip_split()

//go:wasmimport env timer_undo_split
func timer_undo_split()

//go:wasmimport env timer_reset
func timer_reset()

//go:wasmimport env timer_pause_game_time
func timer_pause_game_time()

//go:wasmimport env timer_resume_game_time
func timer_resume_game_time()

//go:wasmimport env timer_set_variable
func timer_set_variable(keyPtr uint32, keyLen uint32, valuePtr uint32, valueLen uint32)

//go:wasmimport env timer_set_game_time
func timer_set_game_time(seconds int64, nanos int32)

//go:wasmimport env timer_get_state
func timer_get_state() uint32
