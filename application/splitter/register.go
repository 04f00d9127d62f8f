package splitter

import (
	"log/slog"
	"sync"
)

// registration is the one slot the wasm entry points read from. It is
// written once by Register, normally from an init function.
var registration struct {
	construct  Constructor
	dispatcher *Dispatcher
	sync.Mutex
}

// Register installs the autosplitter's constructor. Autosplitter modules
// call it from init; the host then drives the exported construct and
// update entry points. A second call is ignored.
func Register(construct Constructor) {
	registration.Lock()
	defer registration.Unlock()

	if registration.construct != nil {
		slog.Warn("sdk: splitter already registered, ignoring second call")
		return
	}
	registration.construct = construct
}

// Registered returns the installed constructor.
func Registered() (Constructor, bool) {
	registration.Lock()
	defer registration.Unlock()
	return registration.construct, registration.construct != nil
}

// resetRegistration clears the slot. Tests only.
func resetRegistration() {
	registration.Lock()
	defer registration.Unlock()
	registration.construct = nil
	registration.dispatcher = nil
}
