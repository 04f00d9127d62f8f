//go:build !wasip1

// Package wasm provides infrastructure adapters that interface with the WASM host environment.
package wasm

import (
	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
)

// Compile-time interface compliance check
var _ ports.Host = (*HostAdapter)(nil)

// HostAdapter stub for native builds.
type HostAdapter struct{}

// NewHostAdapter creates a new HostAdapter stub.
func NewHostAdapter() *HostAdapter {
	return &HostAdapter{}
}

const stubPanic = "WASM host adapter not available in native build. Use hostfuncs.NewHost() to test in-process."

// AttachProcess panics because WASM host imports are not available natively.
func (a *HostAdapter) AttachProcess(string) entities.ProcessHandle { panic(stubPanic) }

// DetachProcess panics because WASM host imports are not available natively.
func (a *HostAdapter) DetachProcess(entities.ProcessHandle) { panic(stubPanic) }

// ModuleAddress panics because WASM host imports are not available natively.
func (a *HostAdapter) ModuleAddress(entities.ProcessHandle, string) entities.Address {
	panic(stubPanic)
}

// ReadMemory panics because WASM host imports are not available natively.
func (a *HostAdapter) ReadMemory(entities.ProcessHandle, entities.Address, []byte) bool {
	panic(stubPanic)
}

// TimerState panics because WASM host imports are not available natively.
func (a *HostAdapter) TimerState() uint32 { panic(stubPanic) }

// StartTimer panics because WASM host imports are not available natively.
func (a *HostAdapter) StartTimer() { panic(stubPanic) }

// SplitTimer panics because WASM host imports are not available natively.
func (a *HostAdapter) SplitTimer() { panic(stubPanic) }

// SkipSplit panics because WASM host imports are not available natively.
func (a *HostAdapter) SkipSplit() { panic(stubPanic) }

// UndoSplit panics because WASM host imports are not available natively.
func (a *HostAdapter) UndoSplit() { panic(stubPanic) }

// ResetTimer panics because WASM host imports are not available natively.
func (a *HostAdapter) ResetTimer() { panic(stubPanic) }

// PauseGameTime panics because WASM host imports are not available natively.
func (a *HostAdapter) PauseGameTime() { panic(stubPanic) }

// ResumeGameTime panics because WASM host imports are not available natively.
func (a *HostAdapter) ResumeGameTime() { panic(stubPanic) }

// SetGameTime panics because WASM host imports are not available natively.
func (a *HostAdapter) SetGameTime(int64, int32) { panic(stubPanic) }

// SetVariable panics because WASM host imports are not available natively.
func (a *HostAdapter) SetVariable(string, string) { panic(stubPanic) }

// SetTickRate panics because WASM host imports are not available natively.
func (a *HostAdapter) SetTickRate(float64) { panic(stubPanic) }

// PrintMessage panics because WASM host imports are not available natively.
func (a *HostAdapter) PrintMessage(string) { panic(stubPanic) }
