package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/autosplit-dev/autosplit-sdk/hostfuncs"
	wz "github.com/autosplit-dev/autosplit-sdk/infrastructure/wazero"
	"github.com/tetratelabs/wazero/api"
)

const (
	exportInitialize = "_initialize"
	exportConstruct  = "construct"
	exportUpdate     = "update"
)

// Instance is one instantiated autosplitter.
// Update calls are serialized; a tick never overlaps another.
type Instance struct {
	module       api.Module
	update       api.Function
	constructFn  api.Function
	stderr       *hostfuncs.BoundedBuffer
	name         string
	mu           sync.Mutex
	ticks        uint64
	hasConstruct bool
}

func newInstance(name string, mod api.Module, stderr *hostfuncs.BoundedBuffer) (*Instance, error) {
	update := mod.ExportedFunction(exportUpdate)
	if update == nil {
		return nil, fmt.Errorf("autosplitter %q does not export %q", name, exportUpdate)
	}
	construct := mod.ExportedFunction(exportConstruct)
	return &Instance{
		module:       mod,
		name:         name,
		update:       update,
		constructFn:  construct,
		stderr:       stderr,
		hasConstruct: construct != nil,
	}, nil
}

// construct calls the construct export if present.
// Without it the guest constructs lazily on its first update.
func (i *Instance) construct(ctx context.Context) error {
	if i.constructFn == nil {
		return nil
	}
	if _, err := i.constructFn.Call(ctx); err != nil {
		return fmt.Errorf("failed to call %s: %w", exportConstruct, err)
	}
	return nil
}

// Name returns the name the instance was loaded with.
func (i *Instance) Name() string {
	return i.name
}

// Update runs one tick of the autosplitter.
func (i *Instance) Update(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	ctx = wz.WithSplitterName(ctx, i.name)
	if _, err := i.update.Call(ctx); err != nil {
		return fmt.Errorf("tick %d: %w", i.ticks+1, err)
	}
	i.ticks++
	return nil
}

// Ticks returns the number of completed updates.
func (i *Instance) Ticks() uint64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.ticks
}

// Stderr returns the head of what the guest wrote to its WASI stderr,
// typically a runtime panic message preceding a trap.
func (i *Instance) Stderr() string {
	return i.stderr.String()
}

// Close releases the module.
func (i *Instance) Close(ctx context.Context) error {
	return i.module.Close(ctx)
}
