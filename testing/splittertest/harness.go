// Package splittertest drives autosplitters in-process against a simulated
// host, so their logic can be unit tested without compiling to wasm.
package splittertest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/autosplit-dev/autosplit-sdk/application/scenario"
	"github.com/autosplit-dev/autosplit-sdk/application/splitter"
	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/hostfuncs"
	"github.com/autosplit-dev/autosplit-sdk/timer"
)

// Harness owns a simulated host and a dispatcher running one autosplitter.
type Harness struct {
	t          testing.TB
	host       *hostfuncs.Host
	provider   *hostfuncs.SimulatedProvider
	dispatcher *splitter.Dispatcher
}

type harnessConfig struct {
	logger    *slog.Logger
	timer     *hostfuncs.TimerMachine
	processes []*hostfuncs.SimulatedProcess
}

// Option configures a Harness.
type Option func(*harnessConfig)

// WithProcess makes a simulated process visible to Attach.
func WithProcess(p *hostfuncs.SimulatedProcess) Option {
	return func(c *harnessConfig) {
		c.processes = append(c.processes, p)
	}
}

// WithTimer replaces the default timer (NotRunning, unbounded segments).
func WithTimer(m *hostfuncs.TimerMachine) Option {
	return func(c *harnessConfig) {
		c.timer = m
	}
}

// WithLogger sets the logger for autosplitter messages and dispatcher
// failures. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *harnessConfig) {
		c.logger = logger
	}
}

// New creates a harness and runs the constructor. A constructor failure
// fails the test.
func New(t testing.TB, construct splitter.Constructor, opts ...Option) *Harness {
	t.Helper()

	cfg := harnessConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.timer == nil {
		cfg.timer = hostfuncs.NewTimerMachine()
	}

	provider := hostfuncs.NewSimulatedProvider(cfg.processes...)
	host := hostfuncs.NewHost(
		hostfuncs.WithLogger(cfg.logger),
		hostfuncs.WithTimer(cfg.timer),
		hostfuncs.WithProcessProvider(provider),
	)
	return start(t, construct, host, provider, cfg.logger)
}

func start(t testing.TB, construct splitter.Constructor, host *hostfuncs.Host, provider *hostfuncs.SimulatedProvider, logger *slog.Logger) *Harness {
	t.Helper()

	d, err := splitter.NewDispatcher(construct, timer.New(host), splitter.WithLogger(logger))
	if err != nil {
		t.Fatalf("splittertest: %v", err)
	}
	if err := d.Construct(); err != nil {
		t.Fatalf("splittertest: construct: %v", err)
	}
	return &Harness{t: t, host: host, provider: provider, dispatcher: d}
}

// Host returns the simulated host.
func (h *Harness) Host() *hostfuncs.Host {
	return h.host
}

// Timer returns the host's timer state machine.
func (h *Harness) Timer() *hostfuncs.TimerMachine {
	return h.host.Timer()
}

// Process returns the first simulated process with the given name, or
// fails the test.
func (h *Harness) Process(name string) *hostfuncs.SimulatedProcess {
	h.t.Helper()
	p, ok := h.provider.Lookup(name)
	if !ok {
		h.t.Fatalf("splittertest: no process %q", name)
	}
	return p
}

// AddProcess starts a new simulated process after construction.
func (h *Harness) AddProcess(name string) *hostfuncs.SimulatedProcess {
	p := hostfuncs.NewSimulatedProcess(name)
	h.provider.Add(p)
	return p
}

// TryTick runs one update and returns its error, including recovered
// panics as *errors.PanicError.
func (h *Harness) TryTick() error {
	return h.dispatcher.Update()
}

// Tick runs n updates (one if n is omitted), failing the test on error.
func (h *Harness) Tick(n ...int) {
	h.t.Helper()
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	for range count {
		if err := h.dispatcher.Update(); err != nil {
			h.t.Fatalf("splittertest: tick %d: %v", h.dispatcher.Ticks()+1, err)
		}
	}
}

// Ticks returns the number of completed updates.
func (h *Harness) Ticks() uint64 {
	return h.dispatcher.Ticks()
}

// Actions returns the timer transitions requested so far.
func (h *Harness) Actions() []hostfuncs.Action {
	return h.host.Timer().Actions()
}

// State returns the host's timer state.
func (h *Harness) State() entities.TimerState {
	return h.host.Timer().State()
}

// RunScenario builds the scenario's environment, runs ticks updates
// applying its steps, and fails the test if the requested actions differ
// from the scenario's expectations.
func RunScenario(t testing.TB, construct splitter.Constructor, s *entities.Scenario, ticks uint64, opts ...Option) *Harness {
	t.Helper()

	cfg := harnessConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := scenario.NewValidator().Validate(s); err != nil {
		t.Fatalf("splittertest: %v", err)
	}
	env, err := scenario.Build(s, hostfuncs.WithLogger(cfg.logger))
	if err != nil {
		t.Fatalf("splittertest: %v", err)
	}
	if ticks == 0 {
		ticks = env.LastTick()
	}

	h := start(t, construct, env.Host(), env.Provider(), cfg.logger)
	for tick := uint64(1); tick <= ticks; tick++ {
		if err := env.BeforeTick(t.Context(), tick); err != nil {
			t.Fatalf("splittertest: %v", err)
		}
		h.Tick()
	}
	if err := env.Check(); err != nil {
		t.Fatalf("splittertest: %v", err)
	}
	return h
}
