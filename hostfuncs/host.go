package hostfuncs

import (
	"log/slog"
	"math"
	"time"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
)

// Compile-time interface compliance check
var _ ports.Host = (*Host)(nil)

const (
	// DefaultTickRate is the update frequency before the autosplitter asks
	// for another one.
	DefaultTickRate = 120.0

	// DefaultMaxTickRate caps requested tick rates.
	DefaultMaxTickRate = 1000.0
)

// Host implements ports.Host on top of a TimerMachine and a ProcessTable.
// Like the real host it never reports failures of action or configuration
// requests.
//
// Host is not safe for concurrent use. Runtimes call it from the goroutine
// that drives the autosplitter.
type Host struct {
	timer       *TimerMachine
	processes   *ProcessTable
	logger      *slog.Logger
	messages    []string
	tickRate    float64
	maxTickRate float64
}

type hostConfig struct {
	logger      *slog.Logger
	timer       *TimerMachine
	provider    ProcessProvider
	tickRate    float64
	maxTickRate float64
}

// HostOption configures a Host.
type HostOption func(*hostConfig)

func defaultHostConfig() hostConfig {
	return hostConfig{
		logger:      slog.Default(),
		tickRate:    DefaultTickRate,
		maxTickRate: DefaultMaxTickRate,
	}
}

// WithLogger sets the logger autosplitter messages are written to.
func WithLogger(logger *slog.Logger) HostOption {
	return func(c *hostConfig) {
		c.logger = logger
	}
}

// WithTimer uses an existing timer machine.
func WithTimer(m *TimerMachine) HostOption {
	return func(c *hostConfig) {
		c.timer = m
	}
}

// WithProcessProvider sets where attach looks for processes.
func WithProcessProvider(p ProcessProvider) HostOption {
	return func(c *hostConfig) {
		c.provider = p
	}
}

// WithMaxTickRate caps the tick rate autosplitters may request.
// Non-finite and non-positive caps are ignored.
func WithMaxTickRate(hz float64) HostOption {
	return func(c *hostConfig) {
		if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
			return
		}
		c.maxTickRate = hz
	}
}

// NewHost creates a Host with the given options.
func NewHost(opts ...HostOption) *Host {
	cfg := defaultHostConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.timer == nil {
		cfg.timer = NewTimerMachine()
	}
	return &Host{
		timer:       cfg.timer,
		processes:   NewProcessTable(cfg.provider),
		logger:      cfg.logger,
		tickRate:    min(cfg.tickRate, cfg.maxTickRate),
		maxTickRate: cfg.maxTickRate,
	}
}

// Timer returns the underlying state machine.
func (h *Host) Timer() *TimerMachine {
	return h.timer
}

// Processes returns the handle table.
func (h *Host) Processes() *ProcessTable {
	return h.processes
}

// TickRate returns the current update frequency in Hz.
func (h *Host) TickRate() float64 {
	return h.tickRate
}

// TickInterval returns the time between updates at the current tick rate.
func (h *Host) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / h.tickRate)
}

// Messages returns every line the autosplitter printed.
func (h *Host) Messages() []string {
	out := make([]string, len(h.messages))
	copy(out, h.messages)
	return out
}

// AttachProcess implements ports.ProcessHost.
func (h *Host) AttachProcess(name string) entities.ProcessHandle {
	handle := h.processes.Attach(name)
	h.logger.Debug("hostfuncs: attach", "process", name, "handle", uint64(handle))
	return handle
}

// DetachProcess implements ports.ProcessHost.
func (h *Host) DetachProcess(handle entities.ProcessHandle) {
	h.processes.Detach(handle)
}

// ModuleAddress implements ports.ProcessHost.
func (h *Host) ModuleAddress(handle entities.ProcessHandle, module string) entities.Address {
	return h.processes.ModuleAddress(handle, module)
}

// ReadMemory implements ports.ProcessHost.
func (h *Host) ReadMemory(handle entities.ProcessHandle, addr entities.Address, buf []byte) bool {
	return h.processes.Read(handle, addr, buf)
}

// TimerState implements ports.TimerHost.
func (h *Host) TimerState() uint32 {
	return h.timer.State().Raw()
}

// StartTimer implements ports.TimerHost.
func (h *Host) StartTimer() { h.timer.Start() }

// SplitTimer implements ports.TimerHost.
func (h *Host) SplitTimer() { h.timer.Split() }

// SkipSplit implements ports.TimerHost.
func (h *Host) SkipSplit() { h.timer.SkipSplit() }

// UndoSplit implements ports.TimerHost.
func (h *Host) UndoSplit() { h.timer.UndoSplit() }

// ResetTimer implements ports.TimerHost.
func (h *Host) ResetTimer() { h.timer.Reset() }

// PauseGameTime implements ports.TimerHost.
func (h *Host) PauseGameTime() { h.timer.Pause() }

// ResumeGameTime implements ports.TimerHost.
func (h *Host) ResumeGameTime() { h.timer.Unpause() }

// SetGameTime implements ports.TimerHost.
func (h *Host) SetGameTime(seconds int64, nanos int32) {
	h.timer.SetGameTime(time.Duration(seconds)*time.Second + time.Duration(nanos))
}

// SetVariable implements ports.TimerHost.
func (h *Host) SetVariable(key, value string) {
	h.timer.SetVariable(key, value)
}

// SetTickRate implements ports.RuntimeHost. Non-finite and non-positive
// rates are ignored; rates above the maximum are clamped.
func (h *Host) SetTickRate(hz float64) {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		h.logger.Debug("hostfuncs: ignoring tick rate", "hz", hz)
		return
	}
	h.tickRate = min(hz, h.maxTickRate)
}

// PrintMessage implements ports.RuntimeHost.
func (h *Host) PrintMessage(message string) {
	h.messages = append(h.messages, message)
	h.logger.Info("autosplitter", "message", message)
}
