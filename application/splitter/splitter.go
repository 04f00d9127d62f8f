// Package splitter provides the Splitter contract autosplitters implement
// and the dispatcher that binds it to the host's entry points.
package splitter

import (
	"time"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/process"
)

// HostFunctions is what an autosplitter may ask of the host.
//
// Action requests are fire-and-forget: they return nothing and the host
// silently drops requests that are illegal in the current state.
type HostFunctions interface {
	// State returns the current timer state. It always succeeds.
	State() entities.TimerState

	Start()
	Pause()
	Unpause()
	Split()
	SkipSplit()
	UndoSplit()
	Reset()

	// SetGameTime sets the game time counter.
	SetGameTime(d time.Duration)

	// SetVariable sets a display variable. Last write wins.
	SetVariable(name, value string)

	// SetTickRate advises the host how often to call Update, in Hz.
	SetTickRate(hz float64)

	// Attach binds to the single running process with the given name.
	// It returns false for no match and for an ambiguous match alike.
	Attach(name string) (*process.Process, bool)
}

// Splitter is the contract every autosplitter implements.
type Splitter interface {
	// Update is called once per host tick. It reads memory, compares it
	// against split conditions and issues the requests this tick needs.
	// Calls never overlap.
	Update(host HostFunctions)
}

// Constructor creates the single Splitter instance. It runs once, before
// the first Update, and is the place to attach to the game, set initial
// variables or change the tick rate. It is not called again on reset.
type Constructor func(host HostFunctions) Splitter
