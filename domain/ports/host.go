package ports

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

import "github.com/autosplit-dev/autosplit-sdk/domain/entities"

// ProcessHost is the raw process access the host exposes.
// Failures are reported the way the host reports them: zero handles, zero
// addresses and false reads.
type ProcessHost interface {
	// AttachProcess binds to the single running process with the given name.
	// Returns InvalidProcessHandle on no match or an ambiguous match.
	AttachProcess(name string) entities.ProcessHandle

	// DetachProcess releases a handle. Unknown handles are ignored.
	DetachProcess(handle entities.ProcessHandle)

	// ModuleAddress returns the base address of a module loaded by the
	// process, or NullAddress when it is not loaded.
	ModuleAddress(handle entities.ProcessHandle, module string) entities.Address

	// ReadMemory fills buf with the bytes at addr. It returns false unless
	// every byte could be read.
	ReadMemory(handle entities.ProcessHandle, addr entities.Address, buf []byte) bool
}

// TimerHost is the raw timer control the host exposes. Every action is a
// one-way request; the host decides whether it applies.
type TimerHost interface {
	// TimerState returns the raw timer phase.
	TimerState() uint32

	StartTimer()
	SplitTimer()
	SkipSplit()
	UndoSplit()
	ResetTimer()
	PauseGameTime()
	ResumeGameTime()

	// SetGameTime sets the game time counter.
	SetGameTime(seconds int64, nanos int32)

	// SetVariable sets a display variable. Last write wins.
	SetVariable(key, value string)
}

// RuntimeHost covers the host's runtime configuration and diagnostics.
type RuntimeHost interface {
	// SetTickRate advises how often update is called, in Hz.
	SetTickRate(hz float64)

	// PrintMessage emits a log line through the host.
	PrintMessage(message string)
}

// Host is the complete raw boundary.
type Host interface {
	ProcessHost
	TimerHost
	RuntimeHost
}
