// Package timer implements the HostFunctions capability on top of the raw
// host boundary: it decodes the host's timer state and forwards action and
// configuration requests unchanged.
package timer

import (
	"time"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
	"github.com/autosplit-dev/autosplit-sdk/process"
)

// Timer is the autosplitter's view of the host timer.
//
// Action requests are one-way. Timer never checks the current state before
// forwarding; the host decides whether a request is legal and silently
// ignores it otherwise. Callers that must avoid illegal requests consult
// State first.
type Timer struct {
	host ports.Host
}

// New binds a Timer to the host.
func New(host ports.Host) *Timer {
	return &Timer{host: host}
}

// State returns the current timer state. It always succeeds.
func (t *Timer) State() entities.TimerState {
	return entities.TimerStateFromRaw(t.host.TimerState())
}

// Start starts the timer. It does nothing once a run is in progress; call
// Reset and then Start for a new run.
func (t *Timer) Start() {
	t.host.StartTimer()
}

// Pause pauses the game time counter, typically on loading screens. It may
// be useful to call SetGameTime right after so the host shows the exact
// in-game time.
func (t *Timer) Pause() {
	t.host.PauseGameTime()
}

// Unpause resumes the game time counter.
func (t *Timer) Unpause() {
	t.host.ResumeGameTime()
}

// Split finishes the current segment and moves to the next one.
func (t *Timer) Split() {
	t.host.SplitTimer()
}

// SkipSplit moves to the next segment without a time for the current one.
func (t *Timer) SkipSplit() {
	t.host.SkipSplit()
}

// UndoSplit goes back to the previous segment.
func (t *Timer) UndoSplit() {
	t.host.UndoSplit()
}

// Reset resets the run. Be conservative: only reset on an unambiguous
// signal that the player abandoned the run, never just because it ended.
func (t *Timer) Reset() {
	t.host.ResetTimer()
}

// SetGameTime sets the game time. Unless the timer is paused it keeps
// counting from the new value.
func (t *Timer) SetGameTime(d time.Duration) {
	t.host.SetGameTime(int64(d/time.Second), int32(d%time.Second)) //nolint:gosec // G115: remainder fits in int32
}

// SetVariable sets a variable the host can display, such as a death
// counter. The last write wins.
func (t *Timer) SetVariable(name, value string) {
	t.host.SetVariable(name, value)
}

// SetTickRate asks the host to call update hz times per second. The host
// may clamp or ignore the request.
func (t *Timer) SetTickRate(hz float64) {
	t.host.SetTickRate(hz)
}

// Attach attaches to the single running process with the given name.
func (t *Timer) Attach(name string) (*process.Process, bool) {
	return process.Attach(t.host, name)
}
