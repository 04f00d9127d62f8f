// Package process provides typed, fallible reads of an attached process's
// memory on top of the host's raw read primitive.
package process

import (
	"bytes"
	"encoding/binary"
	"runtime"
	"strings"
	"sync"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/errors"
	"github.com/autosplit-dev/autosplit-sdk/domain/ports"
)

// MaxCStringLen bounds ReadCString, terminator included.
const MaxCStringLen = 256

// ByteOrder returns the byte order values are decoded with. Hosts run the
// autosplitter in little-endian wasm linear memory.
func ByteOrder() binary.ByteOrder {
	return binary.LittleEndian
}

// Process is a handle on one attached process. It is created by Attach and
// stays usable until Close, although any individual read may fail.
type Process struct {
	host    ports.ProcessHost
	name    string
	cleanup runtime.Cleanup
	handle  entities.ProcessHandle
	closed  bool
}

// abandonedHandle is a handle whose Process was garbage collected without
// Close.
type abandonedHandle struct {
	host   ports.ProcessHost
	handle entities.ProcessHandle
}

// abandoned queues handles released by cleanups. Cleanups run on their own
// goroutine and hosts are driven from one, so the queue is drained by the
// next Attach or Close on the same host.
var abandoned struct {
	handles []abandonedHandle
	sync.Mutex
}

func abandon(a abandonedHandle) {
	abandoned.Lock()
	defer abandoned.Unlock()
	abandoned.handles = append(abandoned.handles, a)
}

// releaseAbandoned detaches the queued handles that belong to host.
func releaseAbandoned(host ports.ProcessHost) {
	abandoned.Lock()
	var mine []entities.ProcessHandle
	kept := abandoned.handles[:0]
	for _, a := range abandoned.handles {
		if a.host == host {
			mine = append(mine, a.handle)
			continue
		}
		kept = append(kept, a)
	}
	abandoned.handles = kept
	abandoned.Unlock()

	for _, h := range mine {
		host.DetachProcess(h)
	}
}

// Attach binds to the running process with the given name. It returns false
// when no process matches or when the name is ambiguous; the host does not
// tell these cases apart.
//
// A Process that becomes unreachable without Close is detached after it is
// garbage collected, on the next Attach or Close against the same host.
func Attach(host ports.ProcessHost, name string) (*Process, bool) {
	releaseAbandoned(host)
	handle := host.AttachProcess(name)
	if !handle.Valid() {
		return nil, false
	}
	p := &Process{host: host, name: name, handle: handle}
	p.cleanup = runtime.AddCleanup(p, abandon, abandonedHandle{host: host, handle: handle})
	return p, true
}

// Name returns the name the process was attached by.
func (p *Process) Name() string {
	return p.name
}

// Handle returns the host handle, or InvalidProcessHandle once closed.
func (p *Process) Handle() entities.ProcessHandle {
	if p.closed {
		return entities.InvalidProcessHandle
	}
	return p.handle
}

// Closed reports whether Close was called.
func (p *Process) Closed() bool {
	return p.closed
}

// ReadBytes fills buf with the bytes starting at addr. Either the whole
// buffer is filled or an error is returned and buf is zeroed.
func (p *Process) ReadBytes(addr entities.Address, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if p.closed {
		return &errors.MemoryReadError{Address: addr, Size: len(buf), Reason: "process detached"}
	}
	if !p.host.ReadMemory(p.handle, addr, buf) {
		clear(buf)
		return errors.NewMemoryReadError(addr, len(buf))
	}
	return nil
}

// Module returns the base address of a module (dynamic library or the main
// executable) loaded by the process.
func (p *Process) Module(name string) (entities.Address, bool) {
	if p.closed {
		return entities.NullAddress, false
	}
	addr := p.host.ModuleAddress(p.handle, name)
	return addr, !addr.IsNull()
}

// ReadCString reads a NUL-terminated string at addr. It reads
// MaxCStringLen-1 bytes in one request, so the string and its terminator
// must fit in that window. Invalid UTF-8 is replaced.
func (p *Process) ReadCString(addr entities.Address) (string, error) {
	buf := make([]byte, MaxCStringLen-1)
	if err := p.ReadBytes(addr, buf); err != nil {
		return "", err
	}
	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		return "", &errors.MemoryReadError{Address: addr, Size: len(buf), Reason: "string not terminated"}
	}
	return strings.ToValidUTF8(string(buf[:end]), "�"), nil
}

// Close detaches from the process. Later reads fail without reaching the
// host. Closing twice is a no-op.
func (p *Process) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.cleanup.Stop()
	p.host.DetachProcess(p.handle)
	releaseAbandoned(p.host)
	return nil
}
