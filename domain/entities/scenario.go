package entities

// Scenario describes a simulated environment for the reference host:
// the processes an autosplitter can attach to, the initial timer setup and a
// script of memory changes applied before given ticks.
type Scenario struct {
	Name      string          `yaml:"name" json:"name" validate:"required" jsonschema:"minLength=1"`
	Timer     TimerSetup      `yaml:"timer,omitempty" json:"timer,omitempty"`
	Processes []ProcessSetup  `yaml:"processes,omitempty" json:"processes,omitempty" validate:"dive"`
	Steps     []ScenarioStep  `yaml:"steps,omitempty" json:"steps,omitempty" validate:"dive"`
	Expect    *ScenarioExpect `yaml:"expect,omitempty" json:"expect,omitempty"`
	// TickRate overrides the initial tick rate in Hz.
	TickRate float64 `yaml:"tick_rate,omitempty" json:"tick_rate,omitempty" validate:"gte=0"`
}

// TimerSetup configures the reference timer.
type TimerSetup struct {
	// State is the initial timer state name. Empty means NotRunning.
	State string `yaml:"state,omitempty" json:"state,omitempty" validate:"omitempty,oneof=NotRunning Running Paused Ended" jsonschema:"enum=NotRunning,enum=Running,enum=Paused,enum=Ended"`
	// Segments is the number of splits in the run. Zero means unbounded.
	Segments int `yaml:"segments,omitempty" json:"segments,omitempty" validate:"gte=0" jsonschema:"minimum=0"`
}

// ProcessSetup describes one simulated process.
type ProcessSetup struct {
	Name    string            `yaml:"name" json:"name" validate:"required" jsonschema:"minLength=1"`
	Regions []RegionSetup     `yaml:"regions,omitempty" json:"regions,omitempty" validate:"dive"`
	Modules map[string]uint64 `yaml:"modules,omitempty" json:"modules,omitempty"`
}

// RegionSetup is a mapped range of a simulated process.
type RegionSetup struct {
	Base uint64 `yaml:"base" json:"base"`
	Size int    `yaml:"size" json:"size" validate:"gt=0,lte=67108864" jsonschema:"minimum=1,maximum=67108864"`
	// Protected regions are mapped but unreadable.
	Protected bool `yaml:"protected,omitempty" json:"protected,omitempty"`
}

// ScenarioStep mutates the environment right before the given tick runs.
// Ticks are numbered from 1.
type ScenarioStep struct {
	Tick    uint64 `yaml:"tick" json:"tick" validate:"gte=1" jsonschema:"minimum=1"`
	Process string `yaml:"process,omitempty" json:"process,omitempty" validate:"required_with=Type Exit"`
	Address uint64 `yaml:"address,omitempty" json:"address,omitempty"`
	// Type is the scalar encoding of Value.
	Type  string `yaml:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=u8 u16 u32 u64 i8 i16 i32 i64 f32 f64" jsonschema:"enum=u8,enum=u16,enum=u32,enum=u64,enum=i8,enum=i16,enum=i32,enum=i64,enum=f32,enum=f64"`
	Value string `yaml:"value,omitempty" json:"value,omitempty" validate:"required_with=Type"`
	// Exit terminates the process; later reads through it fail.
	Exit bool `yaml:"exit,omitempty" json:"exit,omitempty"`
	// TimerState forces the timer into a state, as a user would by hand.
	TimerState string `yaml:"timer_state,omitempty" json:"timer_state,omitempty" validate:"omitempty,oneof=NotRunning Running Paused Ended" jsonschema:"enum=NotRunning,enum=Running,enum=Paused,enum=Ended"`
}

// ScenarioExpect lists the action requests a run must produce, in order.
type ScenarioExpect struct {
	Actions []string `yaml:"actions" json:"actions"`
}
