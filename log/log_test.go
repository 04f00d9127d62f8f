package log

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	lines []string
}

func (c *capture) print(line string) {
	c.lines = append(c.lines, line)
}

func newCaptured(opts ...HandlerOption) (*slog.Logger, *capture) {
	c := &capture{}
	opts = append(opts, WithPrinter(c.print))
	return slog.New(NewHandler(opts...)), c
}

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler()
	assert.NotNil(t, h)
	assert.True(t, h.Enabled(context.TODO(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.TODO(), slog.LevelDebug))
}

func TestNewHandler_Options(t *testing.T) {
	h := NewHandler(
		WithLevel(slog.LevelDebug),
		WithSource(true),
	)
	assert.True(t, h.Enabled(context.TODO(), slog.LevelDebug))
	assert.True(t, h.opts.addSource)
}

func TestHandle_LevelPrefixes(t *testing.T) {
	logger, c := newCaptured()

	logger.Debug("hidden")
	logger.Info("loading")
	logger.Warn("pointer chain broken")
	logger.Error("read failed")

	require.Len(t, c.lines, 3)
	assert.Equal(t, "loading", c.lines[0])
	assert.Equal(t, "⚠️ pointer chain broken", c.lines[1])
	assert.Equal(t, "⛔ read failed", c.lines[2])
}

func TestHandle_Attrs(t *testing.T) {
	logger, c := newCaptured()

	logger.Info("split",
		slog.String("segment", "Chapter 1"),
		slog.Int("index", 3),
		slog.Uint64("address", 0xD1),
		slog.Bool("igt", true),
		slog.Float64("ratio", 1.5),
		slog.Duration("elapsed", 90*time.Second),
		slog.Any("err", errors.New("boom")),
		slog.Any("none", nil),
	)

	require.Len(t, c.lines, 1)
	assert.Equal(t,
		`split segment="Chapter 1" index=3 address=209 igt=true ratio=1.5 elapsed=1m30s err=boom none=<nil>`,
		c.lines[0])
}

func TestHandle_WithAttrsAndGroups(t *testing.T) {
	logger, c := newCaptured()

	logger.With("game", "Game.exe").
		WithGroup("mem").
		With("base", 4096).
		Info("attached", "handle", 1, slog.Group("module", "name", "game.dll"))

	require.Len(t, c.lines, 1)
	assert.Equal(t, "attached game=Game.exe mem.base=4096 mem.handle=1 mem.module.name=game.dll", c.lines[0])
}

func TestHandle_WithAttrsDoesNotLeak(t *testing.T) {
	logger, c := newCaptured()

	_ = logger.With("a", 1)
	logger.Info("plain")

	require.Len(t, c.lines, 1)
	assert.Equal(t, "plain", c.lines[0])
}

func TestHandle_LogValuer(t *testing.T) {
	logger, c := newCaptured()

	logger.Info("resolved", "key", logValuer{val: "value"})

	require.Len(t, c.lines, 1)
	assert.Equal(t, "resolved key=value", c.lines[0])
}

type logValuer struct {
	val string
}

func (l logValuer) LogValue() slog.Value {
	return slog.StringValue(l.val)
}

func TestHandle_Source(t *testing.T) {
	logger, c := newCaptured(WithSource(true))

	logger.Info("here")

	require.Len(t, c.lines, 1)
	assert.True(t, strings.HasPrefix(c.lines[0], "here source="))
	assert.Contains(t, c.lines[0], "log_test.go:")
}

func TestWithPrinter_NilKeepsDefault(t *testing.T) {
	h := NewHandler(WithPrinter(nil))
	assert.NotNil(t, h.opts.printer)
}
