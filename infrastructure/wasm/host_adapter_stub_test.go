//go:build !wasip1

package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostAdapterStub_Panics(t *testing.T) {
	a := NewHostAdapter()

	assert.PanicsWithValue(t, stubPanic, func() { a.TimerState() })
	assert.PanicsWithValue(t, stubPanic, func() { a.AttachProcess("Game.exe") })
	assert.PanicsWithValue(t, stubPanic, func() { a.PrintMessage("hello") })
}
