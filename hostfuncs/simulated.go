package hostfuncs

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
)

// Region is a mapped range of a simulated process.
type Region struct {
	Data      []byte
	Base      entities.Address
	Protected bool
}

// contains reports whether addr lies inside the region.
func (r *Region) contains(addr entities.Address) bool {
	return addr >= r.Base && uint64(addr-r.Base) < uint64(len(r.Data))
}

// SimulatedProcess is an in-memory stand-in for an external process.
// It is safe for concurrent use, so tests may mutate memory while a
// runtime reads it.
type SimulatedProcess struct {
	modules map[string]entities.Address
	name    string
	regions []*Region // sorted by Base, non-overlapping
	mu      sync.RWMutex
	exited  bool
}

// NewSimulatedProcess creates a process with no mapped memory.
func NewSimulatedProcess(name string) *SimulatedProcess {
	return &SimulatedProcess{
		name:    name,
		modules: make(map[string]entities.Address),
	}
}

// Name returns the process name used for attach lookups.
func (p *SimulatedProcess) Name() string {
	return p.name
}

// MapRegion maps size zeroed bytes at base.
func (p *SimulatedProcess) MapRegion(base entities.Address, size int, protected bool) error {
	if size <= 0 {
		return fmt.Errorf("region size must be positive, got %d", size)
	}
	if uint64(size-1) > math.MaxUint64-uint64(base) {
		return fmt.Errorf("region at %s with size %d overflows the address space", base, size)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	last := base.Add(int64(size - 1))
	for _, r := range p.regions {
		rLast := r.Base.Add(int64(len(r.Data) - 1))
		if base <= rLast && r.Base <= last {
			return fmt.Errorf("region at %s overlaps region at %s", base, r.Base)
		}
	}

	p.regions = append(p.regions, &Region{Base: base, Data: make([]byte, size), Protected: protected})
	sort.Slice(p.regions, func(i, j int) bool { return p.regions[i].Base < p.regions[j].Base })
	return nil
}

// Write stores data at addr. The whole range must be mapped; protection is
// ignored since this is the simulation's own access.
func (p *SimulatedProcess) Write(addr entities.Address, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.walk(addr, len(data), true, func(r *Region, off, n, done int) {
		copy(r.Data[off:off+n], data[done:done+n])
	}) {
		return fmt.Errorf("range %s+%d is not mapped", addr, len(data))
	}
	return nil
}

// WriteValue encodes a fixed-size value little-endian and writes it at addr.
func (p *SimulatedProcess) WriteValue(addr entities.Address, value any) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, value); err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	return p.Write(addr, buf.Bytes())
}

// Read implements ProcessMemory. It succeeds only if every byte of the
// range is mapped and readable and the process has not exited.
func (p *SimulatedProcess) Read(addr entities.Address, buf []byte) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.exited {
		return false
	}
	return p.walk(addr, len(buf), false, func(r *Region, off, n, done int) {
		copy(buf[done:done+n], r.Data[off:off+n])
	})
}

// walk visits the regions covering [addr, addr+length) in order. It returns
// false without visiting anything if the range is not fully covered, or
// covers a protected region while ignoreProtection is false.
func (p *SimulatedProcess) walk(addr entities.Address, length int, ignoreProtection bool, visit func(r *Region, off, n, done int)) bool {
	if length == 0 {
		return true
	}
	if uint64(length-1) > math.MaxUint64-uint64(addr) {
		return false
	}

	type span struct {
		r         *Region
		off, n, d int
	}
	var spans []span
	cursor, done := addr, 0
	for done < length {
		r := p.regionAt(cursor)
		if r == nil || (r.Protected && !ignoreProtection) {
			return false
		}
		off := int(cursor - r.Base) //nolint:gosec // G115: bounded by region length
		n := min(len(r.Data)-off, length-done)
		spans = append(spans, span{r: r, off: off, n: n, d: done})
		done += n
		cursor = cursor.Add(int64(n))
	}

	for _, s := range spans {
		visit(s.r, s.off, s.n, s.d)
	}
	return true
}

func (p *SimulatedProcess) regionAt(addr entities.Address) *Region {
	i := sort.Search(len(p.regions), func(i int) bool {
		return p.regions[i].Base > addr
	})
	if i == 0 {
		return nil
	}
	if r := p.regions[i-1]; r.contains(addr) {
		return r
	}
	return nil
}

// SetModule records a loaded module's base address.
func (p *SimulatedProcess) SetModule(name string, base entities.Address) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modules[name] = base
}

// ModuleAddress implements ProcessMemory.
func (p *SimulatedProcess) ModuleAddress(name string) (entities.Address, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.exited {
		return entities.NullAddress, false
	}
	addr, ok := p.modules[name]
	return addr, ok
}

// Exit marks the process as terminated.
func (p *SimulatedProcess) Exit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.exited = true
}

// Exited reports whether Exit was called.
func (p *SimulatedProcess) Exited() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exited
}

// SimulatedProvider is a ProcessProvider over a fixed set of simulated
// processes.
type SimulatedProvider struct {
	processes []*SimulatedProcess
	mu        sync.RWMutex
}

// NewSimulatedProvider creates a provider listing the given processes.
func NewSimulatedProvider(processes ...*SimulatedProcess) *SimulatedProvider {
	return &SimulatedProvider{processes: processes}
}

// Add makes another process visible to attach lookups.
func (s *SimulatedProvider) Add(p *SimulatedProcess) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processes = append(s.processes, p)
}

// Lookup returns the first process with the given name, exited or not.
func (s *SimulatedProvider) Lookup(name string) (*SimulatedProcess, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.processes {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// FindProcesses implements ProcessProvider. Exited processes are not listed.
func (s *SimulatedProvider) FindProcesses(name string) []ProcessMemory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []ProcessMemory
	for _, p := range s.processes {
		if p.Name() == name && !p.Exited() {
			matches = append(matches, p)
		}
	}
	return matches
}
