package hostfuncs

import (
	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
)

// ProcessMemory is the host's view of one running process.
type ProcessMemory interface {
	// Read fills buf from addr, returning false unless every byte was read.
	Read(addr entities.Address, buf []byte) bool

	// ModuleAddress returns the base address of a loaded module.
	ModuleAddress(name string) (entities.Address, bool)
}

// ProcessProvider lists running processes by name.
type ProcessProvider interface {
	FindProcesses(name string) []ProcessMemory
}

// ProcessTable hands out process handles. Handles start at 1 and are never
// reused, so a stale handle can never alias a newer attachment.
type ProcessTable struct {
	provider ProcessProvider
	handles  map[entities.ProcessHandle]ProcessMemory
	next     entities.ProcessHandle
}

// NewProcessTable creates an empty table backed by provider.
func NewProcessTable(provider ProcessProvider) *ProcessTable {
	return &ProcessTable{
		provider: provider,
		handles:  make(map[entities.ProcessHandle]ProcessMemory),
	}
}

// Attach returns a handle for the single process named name. No match and
// several matches both return InvalidProcessHandle.
func (t *ProcessTable) Attach(name string) entities.ProcessHandle {
	if t.provider == nil {
		return entities.InvalidProcessHandle
	}
	matches := t.provider.FindProcesses(name)
	if len(matches) != 1 {
		return entities.InvalidProcessHandle
	}
	t.next++
	t.handles[t.next] = matches[0]
	return t.next
}

// Detach forgets a handle.
func (t *ProcessTable) Detach(handle entities.ProcessHandle) {
	delete(t.handles, handle)
}

// Read reads through a handle. Unknown handles fail.
func (t *ProcessTable) Read(handle entities.ProcessHandle, addr entities.Address, buf []byte) bool {
	mem, ok := t.handles[handle]
	if !ok {
		return false
	}
	return mem.Read(addr, buf)
}

// ModuleAddress resolves a module through a handle.
func (t *ProcessTable) ModuleAddress(handle entities.ProcessHandle, module string) entities.Address {
	mem, ok := t.handles[handle]
	if !ok {
		return entities.NullAddress
	}
	addr, ok := mem.ModuleAddress(module)
	if !ok {
		return entities.NullAddress
	}
	return addr
}

// Len returns the number of live handles.
func (t *ProcessTable) Len() int {
	return len(t.handles)
}
