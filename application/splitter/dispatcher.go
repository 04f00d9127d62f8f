package splitter

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/autosplit-dev/autosplit-sdk/domain/errors"
)

// Dispatcher owns the one live Splitter and forwards host entry points to
// it. Calls are serialized: an Update never starts before the previous one
// returned.
type Dispatcher struct {
	construct   Constructor
	host        HostFunctions
	instance    Splitter
	err         error
	config      dispatcherConfig
	ticks       uint64
	mu          sync.Mutex
	constructed bool
}

type dispatcherConfig struct {
	logger        *slog.Logger
	recoverPanics bool
}

// Option configures a Dispatcher.
type Option func(*dispatcherConfig)

func defaultDispatcherConfig() dispatcherConfig {
	return dispatcherConfig{
		recoverPanics: true,
	}
}

// WithLogger sets the logger splitter failures are reported to. Defaults to
// slog.Default() at the time of the panic.
func WithLogger(logger *slog.Logger) Option {
	return func(c *dispatcherConfig) {
		c.logger = logger
	}
}

// WithPanicRecovery controls whether panics in the splitter are recovered
// and returned as *errors.PanicError (the default) or propagated.
func WithPanicRecovery(enabled bool) Option {
	return func(c *dispatcherConfig) {
		c.recoverPanics = enabled
	}
}

// NewDispatcher creates a dispatcher for the given constructor. The
// constructor is not called until Construct or the first Update.
func NewDispatcher(construct Constructor, host HostFunctions, opts ...Option) (*Dispatcher, error) {
	if construct == nil {
		return nil, fmt.Errorf("splitter constructor is nil")
	}
	if host == nil {
		return nil, fmt.Errorf("host functions are nil")
	}
	cfg := defaultDispatcherConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dispatcher{construct: construct, host: host, config: cfg}, nil
}

// Construct calls the constructor exactly once. Later calls return the
// outcome of the first.
func (d *Dispatcher) Construct() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.constructLocked()
	return d.err
}

// Update runs one tick. If the host never called Construct, the splitter
// is constructed first. A panic in the splitter is logged, returned as an
// error and leaves the instance in place for the next tick.
func (d *Dispatcher) Update() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.constructLocked()
	if d.err != nil {
		return d.err
	}

	if err := d.callUpdate(); err != nil {
		d.logger().Error("sdk: splitter update failed", "tick", d.ticks, "error", err.Error())
		return err
	}
	d.ticks++
	return nil
}

// Ticks returns the number of updates that completed without panicking.
func (d *Dispatcher) Ticks() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

// Instance returns the live splitter, or nil before construction.
func (d *Dispatcher) Instance() Splitter {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.instance
}

func (d *Dispatcher) constructLocked() {
	if d.constructed {
		return
	}
	d.constructed = true
	d.err = d.callConstructor()
	if d.err != nil {
		d.logger().Error("sdk: splitter construction failed", "error", d.err.Error())
	}
}

func (d *Dispatcher) callConstructor() (err error) {
	defer d.recoverPanic("construct", &err)
	instance := d.construct(d.host)
	if instance == nil {
		return fmt.Errorf("constructor returned nil: %w", errors.ErrNotConstructed)
	}
	d.instance = instance
	return nil
}

func (d *Dispatcher) callUpdate() (err error) {
	defer d.recoverPanic("update", &err)
	d.instance.Update(d.host)
	return nil
}

// recoverPanic must be deferred directly so recover sees the panic.
func (d *Dispatcher) recoverPanic(phase string, err *error) {
	if !d.config.recoverPanics {
		return
	}
	r := recover()
	if r == nil {
		return
	}
	*err = &errors.PanicError{Phase: phase, Value: r, Stack: debug.Stack()}
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.config.logger != nil {
		return d.config.logger
	}
	return slog.Default()
}
