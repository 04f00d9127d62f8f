// Package autosplit is the entry point for writing autosplitters in Go.
//
// An autosplitter implements Splitter and registers a constructor from
// init. Built with GOOS=wasip1 and -buildmode=c-shared, the module exports
// the construct and update entry points the host calls:
//
//	func init() {
//	    autosplit.Register(func(host autosplit.HostFunctions) *LoadRemover {
//	        host.SetTickRate(60)
//	        return &LoadRemover{}
//	    })
//	}
//
//	func (l *LoadRemover) Update(host autosplit.HostFunctions) {
//	    if l.game == nil {
//	        l.game, _ = host.Attach("Game.exe")
//	        return
//	    }
//	    loading, err := autosplit.Read[uint8](l.game, 0xD1)
//	    ...
//	}
package autosplit

import (
	"github.com/autosplit-dev/autosplit-sdk/application/splitter"
	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/domain/errors"
	"github.com/autosplit-dev/autosplit-sdk/process"
)

// Version is the SDK version.
const Version = "0.1.0"

// Address is a location in the attached process's address space.
type Address = entities.Address

// NullAddress is the zero address.
const NullAddress = entities.NullAddress

// TimerState is the host timer's state.
type TimerState = entities.TimerState

// Timer states.
const (
	NotRunning = entities.NotRunning
	Running    = entities.Running
	Paused     = entities.Paused
	Ended      = entities.Ended
)

// Process is an attached process whose memory can be read.
type Process = process.Process

// Scalar lists the types Read decodes.
type Scalar = process.Scalar

// HostFunctions is everything an autosplitter may ask of the host.
type HostFunctions = splitter.HostFunctions

// Splitter is implemented by autosplitters.
type Splitter = splitter.Splitter

// MemoryReadError is returned by every failed memory read.
type MemoryReadError = errors.MemoryReadError

// ErrFailedRead matches any MemoryReadError with errors.Is.
var ErrFailedRead = errors.ErrFailedRead
