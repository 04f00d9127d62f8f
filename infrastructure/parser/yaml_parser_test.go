package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYamlScenarioParser_Parse(t *testing.T) {
	raw := `
name: load remover
timer:
  state: Paused
  segments: 3
processes:
  - name: Game.exe
    regions:
      - base: 0xD0
        size: 16
      - base: 0x2000
        size: 8
        protected: true
    modules:
      game.dll: 0x140000000
steps:
  - tick: 2
    process: Game.exe
    address: 0xD1
    type: u32
    value: 42
  - tick: 3
    timer_state: Running
expect:
  actions: [unpause, pause]
`
	s, err := NewYamlScenarioParser().Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "load remover", s.Name)
	assert.Equal(t, "Paused", s.Timer.State)
	assert.Equal(t, 3, s.Timer.Segments)

	require.Len(t, s.Processes, 1)
	p := s.Processes[0]
	assert.Equal(t, "Game.exe", p.Name)
	require.Len(t, p.Regions, 2)
	assert.Equal(t, uint64(0xD0), p.Regions[0].Base)
	assert.True(t, p.Regions[1].Protected)
	assert.Equal(t, uint64(0x140000000), p.Modules["game.dll"])

	require.Len(t, s.Steps, 2)
	assert.Equal(t, uint64(0xD1), s.Steps[0].Address)
	assert.Equal(t, "42", s.Steps[0].Value)
	assert.Equal(t, "Running", s.Steps[1].TimerState)

	require.NotNil(t, s.Expect)
	assert.Equal(t, []string{"unpause", "pause"}, s.Expect.Actions)
}

func TestYamlScenarioParser_UnknownField(t *testing.T) {
	_, err := NewYamlScenarioParser().Parse([]byte("name: x\nproceses: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proceses")
}

func TestYamlScenarioParser_Empty(t *testing.T) {
	_, err := NewYamlScenarioParser().Parse(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestYamlScenarioParser_Malformed(t *testing.T) {
	_, err := NewYamlScenarioParser().Parse([]byte("name: [unclosed"))
	require.Error(t, err)
}
