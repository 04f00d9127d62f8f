package entities

import "fmt"

// TimerState mirrors the host's timer phase. The host owns the ground truth;
// the guest only observes it and requests transitions.
type TimerState uint8

const (
	// NotRunning means the timer has yet to be started.
	NotRunning TimerState = 0
	// Running means the timer is currently running.
	Running TimerState = 1
	// Paused means the timer is paused.
	Paused TimerState = 2
	// Ended means the run was completed. Only a reset leaves this state.
	Ended TimerState = 3
)

var timerStateNames = [...]string{
	NotRunning: "NotRunning",
	Running:    "Running",
	Paused:     "Paused",
	Ended:      "Ended",
}

// TimerStateFromRaw decodes the value returned by the host's timer_get_state
// import. Values outside the known range decode as NotRunning so the query
// always yields one of the four states.
func TimerStateFromRaw(raw uint32) TimerState {
	if raw > uint32(Ended) {
		return NotRunning
	}
	return TimerState(raw)
}

// Raw returns the host wire representation of the state.
func (s TimerState) Raw() uint32 {
	return uint32(s)
}

// Valid reports whether s is one of the four known states.
func (s TimerState) Valid() bool {
	return s <= Ended
}

func (s TimerState) String() string {
	if !s.Valid() {
		return fmt.Sprintf("TimerState(%d)", uint8(s))
	}
	return timerStateNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s TimerState) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid timer state %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TimerState) UnmarshalText(text []byte) error {
	parsed, err := ParseTimerState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseTimerState parses a state name as produced by String.
func ParseTimerState(name string) (TimerState, error) {
	for i, n := range timerStateNames {
		if n == name {
			return TimerState(i), nil //nolint:gosec // G115: index bounded by array length
		}
	}
	return NotRunning, fmt.Errorf("unknown timer state %q", name)
}
