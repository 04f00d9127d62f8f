package scenario

import (
	"testing"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/hostfuncs"
	"github.com/autosplit-dev/autosplit-sdk/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		typ, value string
		want       []byte
	}{
		{"u8", "255", []byte{0xff}},
		{"u16", "0x1234", []byte{0x34, 0x12}},
		{"u32", "314", []byte{0x3a, 0x01, 0x00, 0x00}},
		{"u64", "1", []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{"i8", "-1", []byte{0xff}},
		{"i16", "-2", []byte{0xfe, 0xff}},
		{"i32", "-1", []byte{0xff, 0xff, 0xff, 0xff}},
		{"f32", "1", []byte{0x00, 0x00, 0x80, 0x3f}},
		{"f64", "1", []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"="+tt.value, func(t *testing.T) {
			got, err := EncodeValue(tt.typ, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeValue_Errors(t *testing.T) {
	for _, tc := range [][2]string{
		{"u8", "256"},
		{"i8", "128"},
		{"u32", "-1"},
		{"f32", "fast"},
		{"u256", "1"},
	} {
		_, err := EncodeValue(tc[0], tc[1])
		assert.Error(t, err, "%s=%s", tc[0], tc[1])
	}
}

func TestEncodeValue_ReadsBackThroughProcess(t *testing.T) {
	game := hostfuncs.NewSimulatedProcess("Game.exe")
	require.NoError(t, game.MapRegion(0x1000, 0x10, false))
	host := hostfuncs.NewHost(hostfuncs.WithProcessProvider(hostfuncs.NewSimulatedProvider(game)))
	p, ok := process.Attach(host, "Game.exe")
	require.True(t, ok)

	write := func(addr entities.Address, typ, value string) {
		t.Helper()
		data, err := EncodeValue(typ, value)
		require.NoError(t, err)
		require.NoError(t, game.Write(addr, data))
	}
	write(0x1000, "u64", "0xffffffffffffffff")
	write(0x1000, "u16", "0xBEEF")
	write(0x1004, "i32", "-314")
	write(0x1008, "f32", "2.5")

	u16, err := process.Read[uint16](p, 0x1000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)
	rest, err := process.Read[uint16](p, 0x1002)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xffff), rest, "u16 write stays within two bytes")

	i32, err := process.Read[int32](p, 0x1004)
	require.NoError(t, err)
	assert.Equal(t, int32(-314), i32)

	f32, err := process.Read[float32](p, 0x1008)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f32)
}
