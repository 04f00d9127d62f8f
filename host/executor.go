package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
	"github.com/autosplit-dev/autosplit-sdk/hostfuncs"
	wz "github.com/autosplit-dev/autosplit-sdk/infrastructure/wazero"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// Executor manages the wasm runtime autosplitters are loaded into.
// Every instance it loads shares the same host.
type Executor struct {
	runtime     wazero.Runtime
	host        ports.Host
	logger      *slog.Logger
	stdout      io.Writer
	stderr      io.Writer
	adapterOpts []wz.AdapterOption
	maxOutput   int
}

// NewExecutor creates a new executor backed by host.
func NewExecutor(ctx context.Context, host ports.Host, opts ...Option) (*Executor, error) {
	if host == nil {
		return nil, fmt.Errorf("host is nil")
	}
	e := &Executor{
		host:   host,
		logger: slog.Default(),
		stdout: io.Discard,
		stderr: io.Discard,

		maxOutput: hostfuncs.DefaultMaxOutputSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := wz.RegisterWithRuntime(ctx, rt, host, e.adapterOpts...); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Host returns the host backing the executor.
func (e *Executor) Host() ports.Host {
	return e.host
}

// Close releases resources held by the executor and every loaded instance.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// LoadAutosplitter compiles and instantiates a wasm autosplitter, runs its
// reactor initializer and calls construct once.
// The module must be built as a reactor (GOOS=wasip1 -buildmode=c-shared)
// and export update.
func (e *Executor) LoadAutosplitter(ctx context.Context, name string, wasmBytes []byte) (*Instance, error) {
	ctx = wz.WithSplitterName(ctx, name)

	compiled, err := e.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to compile module: %w", err)
	}

	stderr := hostfuncs.NewBoundedBuffer(e.maxOutput)
	cfg := wazero.NewModuleConfig().
		WithName(name).
		WithStartFunctions().
		WithStdout(e.stdout).
		WithStderr(io.MultiWriter(e.stderr, stderr))

	mod, err := e.runtime.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	inst, err := newInstance(name, mod, stderr)
	if err != nil {
		_ = mod.Close(ctx)
		return nil, err
	}

	if init := mod.ExportedFunction(exportInitialize); init != nil {
		if _, err := init.Call(ctx); err != nil {
			e.logGuestOutput(ctx, inst)
			_ = mod.Close(ctx)
			return nil, fmt.Errorf("failed to call %s: %w", exportInitialize, err)
		}
	}

	if err := inst.construct(ctx); err != nil {
		e.logGuestOutput(ctx, inst)
		_ = mod.Close(ctx)
		return nil, err
	}

	e.logger.InfoContext(ctx, "host: autosplitter loaded",
		"name", name, "construct", inst.hasConstruct)
	return inst, nil
}

func (e *Executor) logGuestOutput(ctx context.Context, inst *Instance) {
	if out := inst.Stderr(); out != "" {
		e.logger.ErrorContext(ctx, "host: autosplitter stderr", "name", inst.name, "output", out)
	}
}
