package hostfuncs

import (
	"maps"
	"time"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
)

// Action names a request an autosplitter sent to the timer.
type Action string

// Timer actions as named on the wire.
const (
	ActionStart       Action = "start"
	ActionSplit       Action = "split"
	ActionSkipSplit   Action = "skip_split"
	ActionUndoSplit   Action = "undo_split"
	ActionReset       Action = "reset"
	ActionPause       Action = "pause"
	ActionUnpause     Action = "unpause"
	ActionSetVariable Action = "set_variable"
	ActionSetGameTime Action = "set_game_time"
)

// IsTransition reports whether the action asks for a state change, as
// opposed to configuring variables or game time. Unknown names are not
// transitions.
func (a Action) IsTransition() bool {
	switch a {
	case ActionStart, ActionSplit, ActionSkipSplit, ActionUndoSplit,
		ActionReset, ActionPause, ActionUnpause:
		return true
	default:
		return false
	}
}

// Event records one request and its outcome.
type Event struct {
	Action   Action
	Key      string
	Value    string
	GameTime time.Duration
	From     entities.TimerState
	To       entities.TimerState
	Applied  bool
}

// TimerMachine is the reference timer state machine. Requests that are
// illegal in the current state are recorded and otherwise ignored.
//
// It is not safe for concurrent use; a host drives it from one goroutine.
type TimerMachine struct {
	variables map[string]string
	events    []Event
	gameTime  time.Duration
	segments  int
	current   int
	state     entities.TimerState
}

type timerConfig struct {
	segments int
	state    entities.TimerState
}

// TimerOption configures a TimerMachine.
type TimerOption func(*timerConfig)

// WithSegments sets the number of splits in the run. The split that
// completes the last segment ends the run. Zero means unbounded.
func WithSegments(n int) TimerOption {
	return func(c *timerConfig) {
		c.segments = max(n, 0)
	}
}

// WithInitialState starts the machine in the given state.
func WithInitialState(s entities.TimerState) TimerOption {
	return func(c *timerConfig) {
		c.state = s
	}
}

// NewTimerMachine creates a machine in NotRunning unless configured
// otherwise.
func NewTimerMachine(opts ...TimerOption) *TimerMachine {
	cfg := timerConfig{state: entities.NotRunning}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TimerMachine{
		state:     cfg.state,
		segments:  cfg.segments,
		variables: make(map[string]string),
	}
}

// State returns the current phase.
func (m *TimerMachine) State() entities.TimerState {
	return m.state
}

// CurrentSplit returns the zero-based index of the running segment.
func (m *TimerMachine) CurrentSplit() int {
	return m.current
}

// Segments returns the configured segment count.
func (m *TimerMachine) Segments() int {
	return m.segments
}

// GameTime returns the last game time set.
func (m *TimerMachine) GameTime() time.Duration {
	return m.gameTime
}

// Variable returns a display variable.
func (m *TimerMachine) Variable(key string) (string, bool) {
	v, ok := m.variables[key]
	return v, ok
}

// Variables returns a copy of all display variables.
func (m *TimerMachine) Variables() map[string]string {
	return maps.Clone(m.variables)
}

// Events returns a copy of the request log.
func (m *TimerMachine) Events() []Event {
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Actions returns the transition requests received, in order, whether or
// not they applied.
func (m *TimerMachine) Actions() []Action {
	var out []Action
	for _, e := range m.events {
		if e.Action.IsTransition() {
			out = append(out, e.Action)
		}
	}
	return out
}

// ClearEvents empties the request log.
func (m *TimerMachine) ClearEvents() {
	m.events = nil
}

// Force puts the machine into a state without recording a request, the
// way a user clicking in the host UI would.
func (m *TimerMachine) Force(s entities.TimerState) {
	m.state = s
	if s == entities.NotRunning {
		m.current = 0
	}
}

// Start begins a run.
func (m *TimerMachine) Start() bool {
	return m.transition(ActionStart, m.state == entities.NotRunning, func() {
		m.state = entities.Running
		m.current = 0
	})
}

// Pause pauses a running timer.
func (m *TimerMachine) Pause() bool {
	return m.transition(ActionPause, m.state == entities.Running, func() {
		m.state = entities.Paused
	})
}

// Unpause resumes a paused timer.
func (m *TimerMachine) Unpause() bool {
	return m.transition(ActionUnpause, m.state == entities.Paused, func() {
		m.state = entities.Running
	})
}

// Split finishes the current segment. Splitting the last segment ends the
// run.
func (m *TimerMachine) Split() bool {
	return m.transition(ActionSplit, m.state == entities.Running, func() {
		m.current++
		if m.segments > 0 && m.current >= m.segments {
			m.current = m.segments
			m.state = entities.Ended
		}
	})
}

// SkipSplit moves to the next segment without finishing the current one.
// The last segment cannot be skipped.
func (m *TimerMachine) SkipSplit() bool {
	legal := (m.state == entities.Running || m.state == entities.Paused) &&
		(m.segments == 0 || m.current+1 < m.segments)
	return m.transition(ActionSkipSplit, legal, func() {
		m.current++
	})
}

// UndoSplit returns to the previous segment. Undoing from Ended resumes
// the run on the last segment.
func (m *TimerMachine) UndoSplit() bool {
	legal := m.current > 0 &&
		(m.state == entities.Running || m.state == entities.Paused || m.state == entities.Ended)
	return m.transition(ActionUndoSplit, legal, func() {
		m.current--
		if m.state == entities.Ended {
			m.state = entities.Running
		}
	})
}

// Reset returns to NotRunning from any other state.
func (m *TimerMachine) Reset() bool {
	return m.transition(ActionReset, m.state != entities.NotRunning, func() {
		m.state = entities.NotRunning
		m.current = 0
		m.gameTime = 0
	})
}

// SetVariable stores a display variable. Last write wins.
func (m *TimerMachine) SetVariable(key, value string) {
	m.variables[key] = value
	m.events = append(m.events, Event{
		Action: ActionSetVariable, Key: key, Value: value,
		From: m.state, To: m.state, Applied: true,
	})
}

// SetGameTime stores the game time counter.
func (m *TimerMachine) SetGameTime(d time.Duration) {
	m.gameTime = d
	m.events = append(m.events, Event{
		Action: ActionSetGameTime, GameTime: d,
		From: m.state, To: m.state, Applied: true,
	})
}

func (m *TimerMachine) transition(action Action, legal bool, apply func()) bool {
	from := m.state
	if legal {
		apply()
	}
	m.events = append(m.events, Event{Action: action, From: from, To: m.state, Applied: legal})
	return legal
}
