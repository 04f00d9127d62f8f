// Package wazero provides adapters for registering SDK host functions with the wazero runtime.
package wazero

import (
	"context"
	"log/slog"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

const (
	// DefaultModuleName is the import module autosplitters link against.
	DefaultModuleName = "env"

	// DefaultMaxStringLen bounds names, variables and messages read from guest memory.
	DefaultMaxStringLen = 64 * 1024

	// DefaultMaxReadSize bounds a single process_read request.
	DefaultMaxReadSize = 16 * 1024 * 1024
)

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// ModuleName is the host module name (default: "env").
	ModuleName string

	// MaxStringLen limits strings read from guest memory.
	MaxStringLen uint32

	// MaxReadSize limits the buffer length of a single process_read.
	MaxReadSize uint32
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "env").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.ModuleName = name
	}
}

// WithMaxStringLen sets the maximum string length accepted from guest memory.
func WithMaxStringLen(n uint32) AdapterOption {
	return func(c *AdapterConfig) {
		c.MaxStringLen = n
	}
}

// WithMaxReadSize sets the maximum buffer length of a single process_read.
func WithMaxReadSize(n uint32) AdapterOption {
	return func(c *AdapterConfig) {
		c.MaxReadSize = n
	}
}

// defaultAdapterConfig returns the default adapter configuration.
func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		ModuleName:   DefaultModuleName,
		MaxStringLen: DefaultMaxStringLen,
		MaxReadSize:  DefaultMaxReadSize,
	}
}

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
	f64 = api.ValueTypeF64
)

// hostFunction is one export of the host module.
type hostFunction struct {
	name    string
	params  []api.ValueType
	results []api.ValueType
	fn      func(b *bridge, ctx context.Context, mod api.Module, stack []uint64)
}

// hostFunctions lists the ABI exported to autosplitters.
var hostFunctions = []hostFunction{
	{"runtime_print_message", []api.ValueType{i32, i32}, nil, (*bridge).printMessage},
	{"runtime_set_tick_rate", []api.ValueType{f64}, nil, (*bridge).setTickRate},
	{"process_attach", []api.ValueType{i32, i32}, []api.ValueType{i64}, (*bridge).attach},
	{"process_detach", []api.ValueType{i64}, nil, (*bridge).detach},
	{"process_get_module_address", []api.ValueType{i64, i32, i32}, []api.ValueType{i64}, (*bridge).moduleAddress},
	{"process_read", []api.ValueType{i64, i64, i32, i32}, []api.ValueType{i32}, (*bridge).read},
	{"timer_start", nil, nil, action(ports.TimerHost.StartTimer)},
	{"timer_split", nil, nil, action(ports.TimerHost.SplitTimer)},
	{"timer_skip_split", nil, nil, action(ports.TimerHost.SkipSplit)},
	{"timer_undo_split", nil, nil, action(ports.TimerHost.UndoSplit)},
	{"timer_reset", nil, nil, action(ports.TimerHost.ResetTimer)},
	{"timer_pause_game_time", nil, nil, action(ports.TimerHost.PauseGameTime)},
	{"timer_resume_game_time", nil, nil, action(ports.TimerHost.ResumeGameTime)},
	{"timer_set_variable", []api.ValueType{i32, i32, i32, i32}, nil, (*bridge).setVariable},
	{"timer_set_game_time", []api.ValueType{i64, i32}, nil, (*bridge).setGameTime},
	{"timer_get_state", nil, []api.ValueType{i32}, (*bridge).timerState},
}

// RegisterWithRuntime registers the autosplitter host ABI with a wazero runtime.
// This creates a host module with the configured name (default: "env") whose
// functions forward to host.
//
// Example:
//
//	h := hostfuncs.NewHost(hostfuncs.WithProcessProvider(provider))
//	err := wazero.RegisterWithRuntime(ctx, runtime, h)
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, host ports.Host, opts ...AdapterOption) error {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &bridge{host: host, cfg: cfg}
	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)
	for _, hf := range hostFunctions {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
				hf.fn(b, ctx, mod, stack)
			}), hf.params, hf.results).
			WithName(hf.name).
			Export(hf.name)
	}

	// Instantiate the host module
	_, err := builder.Instantiate(ctx)
	return err
}

// ExportNames returns the names of every function the host module exports.
func ExportNames() []string {
	names := make([]string, len(hostFunctions))
	for i, hf := range hostFunctions {
		names[i] = hf.name
	}
	return names
}

// bridge decodes wasm stacks and guest memory into ports.Host calls.
type bridge struct {
	host ports.Host
	cfg  AdapterConfig
}

// action adapts a parameterless timer request.
func action(call func(ports.TimerHost)) func(*bridge, context.Context, api.Module, []uint64) {
	return func(b *bridge, _ context.Context, _ api.Module, _ []uint64) {
		call(b.host)
	}
}

// readString copies a string out of guest memory.
func (b *bridge) readString(ctx context.Context, mod api.Module, ptr, length uint32, function string) (string, bool) {
	if length > b.cfg.MaxStringLen {
		slog.ErrorContext(ctx, "wazero: string exceeds maximum length",
			"function", function, "splitter", SplitterName(ctx, mod),
			"length", length, "max", b.cfg.MaxStringLen)
		return "", false
	}
	data, ok := mod.Memory().Read(ptr, length)
	if !ok {
		slog.ErrorContext(ctx, "wazero: string out of guest memory bounds",
			"function", function, "splitter", SplitterName(ctx, mod),
			"ptr", ptr, "length", length)
		return "", false
	}
	return string(data), true
}

func (b *bridge) printMessage(ctx context.Context, mod api.Module, stack []uint64) {
	msg, ok := b.readString(ctx, mod, api.DecodeU32(stack[0]), api.DecodeU32(stack[1]), "runtime_print_message")
	if !ok {
		return
	}
	b.host.PrintMessage(msg)
}

func (b *bridge) setTickRate(_ context.Context, _ api.Module, stack []uint64) {
	b.host.SetTickRate(api.DecodeF64(stack[0]))
}

func (b *bridge) attach(ctx context.Context, mod api.Module, stack []uint64) {
	name, ok := b.readString(ctx, mod, api.DecodeU32(stack[0]), api.DecodeU32(stack[1]), "process_attach")
	if !ok {
		stack[0] = uint64(entities.InvalidProcessHandle)
		return
	}
	stack[0] = uint64(b.host.AttachProcess(name))
}

func (b *bridge) detach(_ context.Context, _ api.Module, stack []uint64) {
	b.host.DetachProcess(entities.ProcessHandle(stack[0]))
}

func (b *bridge) moduleAddress(ctx context.Context, mod api.Module, stack []uint64) {
	handle := entities.ProcessHandle(stack[0])
	name, ok := b.readString(ctx, mod, api.DecodeU32(stack[1]), api.DecodeU32(stack[2]), "process_get_module_address")
	if !ok {
		stack[0] = uint64(entities.NullAddress)
		return
	}
	stack[0] = uint64(b.host.ModuleAddress(handle, name))
}

func (b *bridge) read(ctx context.Context, mod api.Module, stack []uint64) {
	handle := entities.ProcessHandle(stack[0])
	addr := entities.Address(stack[1])
	ptr, length := api.DecodeU32(stack[2]), api.DecodeU32(stack[3])

	if length > b.cfg.MaxReadSize {
		slog.ErrorContext(ctx, "wazero: read exceeds maximum size",
			"splitter", SplitterName(ctx, mod), "length", length, "max", b.cfg.MaxReadSize)
		stack[0] = 0
		return
	}
	// The view aliases guest memory; the host fills a private buffer so a
	// failed read never leaves partial data behind.
	view, ok := mod.Memory().Read(ptr, length)
	if !ok {
		slog.ErrorContext(ctx, "wazero: read buffer out of guest memory bounds",
			"splitter", SplitterName(ctx, mod), "ptr", ptr, "length", length)
		stack[0] = 0
		return
	}
	buf := make([]byte, length)
	if !b.host.ReadMemory(handle, addr, buf) {
		stack[0] = 0
		return
	}
	copy(view, buf)
	stack[0] = 1
}

func (b *bridge) setVariable(ctx context.Context, mod api.Module, stack []uint64) {
	key, ok := b.readString(ctx, mod, api.DecodeU32(stack[0]), api.DecodeU32(stack[1]), "timer_set_variable")
	if !ok {
		return
	}
	value, ok := b.readString(ctx, mod, api.DecodeU32(stack[2]), api.DecodeU32(stack[3]), "timer_set_variable")
	if !ok {
		return
	}
	b.host.SetVariable(key, value)
}

func (b *bridge) setGameTime(_ context.Context, _ api.Module, stack []uint64) {
	b.host.SetGameTime(int64(stack[0]), api.DecodeI32(stack[1])) //nolint:gosec // G115: i64 reinterpretation
}

func (b *bridge) timerState(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeU32(b.host.TimerState())
}
