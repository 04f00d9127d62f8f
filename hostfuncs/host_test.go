package hostfuncs

import (
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHost_Defaults(t *testing.T) {
	h := NewHost(WithLogger(quietLogger()))

	assert.Equal(t, entities.NotRunning.Raw(), h.TimerState())
	assert.Equal(t, DefaultTickRate, h.TickRate())
	assert.False(t, h.AttachProcess("Game.exe").Valid())
}

func TestHost_SetTickRate(t *testing.T) {
	h := NewHost(WithLogger(quietLogger()), WithMaxTickRate(240))

	h.SetTickRate(60)
	assert.Equal(t, 60.0, h.TickRate())
	assert.Equal(t, time.Second/60, h.TickInterval())

	h.SetTickRate(10_000)
	assert.Equal(t, 240.0, h.TickRate(), "clamped to maximum")

	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		h.SetTickRate(bad)
		assert.Equal(t, 240.0, h.TickRate(), "ignored %v", bad)
	}
}

func TestHost_WithMaxTickRateIgnoresInvalidCaps(t *testing.T) {
	for _, bad := range []float64{0, -30, math.NaN(), math.Inf(1)} {
		h := NewHost(WithLogger(quietLogger()), WithMaxTickRate(bad))

		h.SetTickRate(60)
		assert.Equal(t, 60.0, h.TickRate(), "cap %v", bad)
		assert.Equal(t, time.Second/60, h.TickInterval(), "cap %v", bad)

		h.SetTickRate(5_000)
		assert.Equal(t, DefaultMaxTickRate, h.TickRate(), "cap %v", bad)
	}
}

func TestHost_InitialTickRateRespectsCap(t *testing.T) {
	h := NewHost(WithLogger(quietLogger()), WithMaxTickRate(30))

	assert.Equal(t, 30.0, h.TickRate())
	assert.Equal(t, time.Second/30, h.TickInterval())
}

func TestHost_SetVariableLastWriteWins(t *testing.T) {
	h := NewHost(WithLogger(quietLogger()))

	h.SetVariable("x", "1")
	h.SetVariable("x", "2")

	v, ok := h.Timer().Variable("x")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestHost_SetGameTime(t *testing.T) {
	h := NewHost(WithLogger(quietLogger()))

	h.SetGameTime(90, 500_000_000)
	assert.Equal(t, 90*time.Second+500*time.Millisecond, h.Timer().GameTime())
}

func TestHost_TimerActionsMapToMachine(t *testing.T) {
	h := NewHost(WithLogger(quietLogger()), WithTimer(NewTimerMachine(WithSegments(3))))

	h.StartTimer()
	h.PauseGameTime()
	h.ResumeGameTime()
	h.SplitTimer()
	h.SkipSplit()
	h.UndoSplit()
	h.ResetTimer()

	assert.Equal(t, []Action{
		ActionStart, ActionPause, ActionUnpause, ActionSplit,
		ActionSkipSplit, ActionUndoSplit, ActionReset,
	}, h.Timer().Actions())
	assert.Equal(t, entities.NotRunning.Raw(), h.TimerState())
}

func TestHost_ProcessAccess(t *testing.T) {
	game := NewSimulatedProcess("Game.exe")
	require.NoError(t, game.MapRegion(0xD0, 0x10, false))
	require.NoError(t, game.WriteValue(0xD1, uint32(314)))
	game.SetModule("Game.exe", 0xD0)

	h := NewHost(WithLogger(quietLogger()), WithProcessProvider(NewSimulatedProvider(game)))
	handle := h.AttachProcess("Game.exe")
	require.True(t, handle.Valid())

	buf := make([]byte, 4)
	require.True(t, h.ReadMemory(handle, 0xD1, buf))
	assert.Equal(t, []byte{0x3A, 0x01, 0, 0}, buf)
	assert.Equal(t, entities.Address(0xD0), h.ModuleAddress(handle, "Game.exe"))

	h.DetachProcess(handle)
	assert.False(t, h.ReadMemory(handle, 0xD1, buf))
}

func TestHost_PrintMessage(t *testing.T) {
	h := NewHost(WithLogger(quietLogger()))

	h.PrintMessage("attached")
	h.PrintMessage("⚠️ level not found")

	assert.Equal(t, []string{"attached", "⚠️ level not found"}, h.Messages())
}
