//go:build wasip1

package wasm

import (
	"runtime"
	"unsafe"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
)

// Compile-time interface compliance check
var _ ports.Host = (*HostAdapter)(nil)

// HostAdapter implements ports.Host with the host's wasm imports.
type HostAdapter struct{}

// NewHostAdapter creates a new HostAdapter.
func NewHostAdapter() *HostAdapter {
	return &HostAdapter{}
}

// stringArg returns the linear memory offset and length of s.
func stringArg(s string) (ptr, length uint32) {
	if len(s) == 0 {
		return 0, 0
	}
	// WASM linear memory: pointer -> uint32 offset conversion is safe and necessary
	//nolint:gosec // G103/G115: Valid unsafe.Pointer use for WASM linear memory access
	return uint32(uintptr(unsafe.Pointer(unsafe.StringData(s)))), uint32(len(s))
}

// bufferArg returns the linear memory offset and length of buf.
func bufferArg(buf []byte) (ptr, length uint32) {
	if len(buf) == 0 {
		return 0, 0
	}
	//nolint:gosec // G103/G115: Valid unsafe.Pointer use for WASM linear memory access
	return uint32(uintptr(unsafe.Pointer(unsafe.SliceData(buf)))), uint32(len(buf))
}

// AttachProcess implements ports.ProcessHost.
func (a *HostAdapter) AttachProcess(name string) entities.ProcessHandle {
	ptr, n := stringArg(name)
	handle := process_attach(ptr, n)
	runtime.KeepAlive(name)
	return entities.ProcessHandle(handle)
}

// DetachProcess implements ports.ProcessHost.
func (a *HostAdapter) DetachProcess(handle entities.ProcessHandle) {
	process_detach(uint64(handle))
}

// ModuleAddress implements ports.ProcessHost.
func (a *HostAdapter) ModuleAddress(handle entities.ProcessHandle, module string) entities.Address {
	ptr, n := stringArg(module)
	addr := process_get_module_address(uint64(handle), ptr, n)
	runtime.KeepAlive(module)
	return entities.Address(addr)
}

// ReadMemory implements ports.ProcessHost.
func (a *HostAdapter) ReadMemory(handle entities.ProcessHandle, addr entities.Address, buf []byte) bool {
	ptr, n := bufferArg(buf)
	ok := process_read(uint64(handle), uint64(addr), ptr, n) != 0
	runtime.KeepAlive(buf)
	return ok
}

// TimerState implements ports.TimerHost.
func (a *HostAdapter) TimerState() uint32 {
	return timer_get_state()
}

// StartTimer implements ports.TimerHost.
func (a *HostAdapter) StartTimer() { timer_start() }

// SplitTimer implements ports.TimerHost.
func (a *HostAdapter) SplitTimer() { timer_split() }

// SkipSplit implements ports.TimerHost.
func (a *HostAdapter) SkipSplit() { timer_skip_split() }

// UndoSplit implements ports.TimerHost.
func (a *HostAdapter) UndoSplit() { timer_undo_split() }

// ResetTimer implements ports.TimerHost.
func (a *HostAdapter) ResetTimer() { timer_reset() }

// PauseGameTime implements ports.TimerHost.
func (a *HostAdapter) PauseGameTime() { timer_pause_game_time() }

// ResumeGameTime implements ports.TimerHost.
func (a *HostAdapter) ResumeGameTime() { timer_resume_game_time() }

// SetGameTime implements ports.TimerHost.
func (a *HostAdapter) SetGameTime(seconds int64, nanos int32) {
	timer_set_game_time(seconds, nanos)
}

// SetVariable implements ports.TimerHost.
func (a *HostAdapter) SetVariable(key, value string) {
	kp, kn := stringArg(key)
	vp, vn := stringArg(value)
	timer_set_variable(kp, kn, vp, vn)
	runtime.KeepAlive(key)
	runtime.KeepAlive(value)
}

// SetTickRate implements ports.RuntimeHost.
func (a *HostAdapter) SetTickRate(hz float64) {
	runtime_set_tick_rate(hz)
}

// PrintMessage implements ports.RuntimeHost.
func (a *HostAdapter) PrintMessage(message string) {
	ptr, n := stringArg(message)
	runtime_print_message(ptr, n)
	runtime.KeepAlive(message)
}
