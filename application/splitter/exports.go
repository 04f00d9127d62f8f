//go:build wasip1

package splitter

import (
	"log/slog"

	"github.com/autosplit-dev/autosplit-sdk/infrastructure/wasm"
	_ "github.com/autosplit-dev/autosplit-sdk/log" // Route slog through the host
	"github.com/autosplit-dev/autosplit-sdk/timer"
)

// These functions are the module's fixed entry points. The host calls
// construct once after instantiation and update on every tick.

//go:wasmexport construct
func construct() {
	d := defaultDispatcher()
	if d == nil {
		slog.Error("sdk: construct called but no splitter is registered")
		return
	}
	_ = d.Construct() // failures are logged by the dispatcher
}

//go:wasmexport update
func update() {
	d := defaultDispatcher()
	if d == nil {
		return
	}
	_ = d.Update() // failures are logged by the dispatcher
}

func defaultDispatcher() *Dispatcher {
	registration.Lock()
	defer registration.Unlock()

	if registration.dispatcher != nil || registration.construct == nil {
		return registration.dispatcher
	}
	d, err := NewDispatcher(registration.construct, timer.New(wasm.NewHostAdapter()))
	if err != nil {
		slog.Error("sdk: failed to create dispatcher", "error", err.Error())
		return nil
	}
	registration.dispatcher = d
	return d
}
