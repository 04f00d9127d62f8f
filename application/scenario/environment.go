package scenario

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
	"github.com/autosplit-dev/autosplit-sdk/hostfuncs"
)

// Environment is a reference host built from a Scenario together with the
// script that mutates it between ticks.
type Environment struct {
	host     *hostfuncs.Host
	provider *hostfuncs.SimulatedProvider
	expect   *entities.ScenarioExpect
	steps    []entities.ScenarioStep // sorted by Tick
	next     int
}

// Build creates the simulated processes and timer a scenario describes.
// opts are applied to the host before the scenario's own timer and process
// provider, so they cannot replace those.
func Build(s *entities.Scenario, opts ...hostfuncs.HostOption) (*Environment, error) {
	provider := hostfuncs.NewSimulatedProvider()
	for i, ps := range s.Processes {
		p := hostfuncs.NewSimulatedProcess(ps.Name)
		for j, r := range ps.Regions {
			if err := p.MapRegion(entities.Address(r.Base), r.Size, r.Protected); err != nil {
				return nil, fmt.Errorf("processes[%d].regions[%d]: %w", i, j, err)
			}
		}
		for module, base := range ps.Modules {
			p.SetModule(module, entities.Address(base))
		}
		provider.Add(p)
	}

	var timerOpts []hostfuncs.TimerOption
	if s.Timer.State != "" {
		state, err := entities.ParseTimerState(s.Timer.State)
		if err != nil {
			return nil, fmt.Errorf("timer.state: %w", err)
		}
		timerOpts = append(timerOpts, hostfuncs.WithInitialState(state))
	}
	if s.Timer.Segments > 0 {
		timerOpts = append(timerOpts, hostfuncs.WithSegments(s.Timer.Segments))
	}

	opts = append(slices.Clone(opts),
		hostfuncs.WithTimer(hostfuncs.NewTimerMachine(timerOpts...)),
		hostfuncs.WithProcessProvider(provider),
	)
	host := hostfuncs.NewHost(opts...)
	if s.TickRate > 0 {
		host.SetTickRate(s.TickRate)
	}

	steps := slices.Clone(s.Steps)
	sort.SliceStable(steps, func(a, b int) bool { return steps[a].Tick < steps[b].Tick })

	return &Environment{
		host:     host,
		provider: provider,
		expect:   s.Expect,
		steps:    steps,
	}, nil
}

// Host returns the simulated host.
func (e *Environment) Host() *hostfuncs.Host {
	return e.host
}

// Provider returns the provider listing the scenario's processes.
func (e *Environment) Provider() *hostfuncs.SimulatedProvider {
	return e.provider
}

// Process returns the first simulated process with the given name.
func (e *Environment) Process(name string) (*hostfuncs.SimulatedProcess, bool) {
	return e.provider.Lookup(name)
}

// LastTick returns the highest tick any step is scheduled for.
func (e *Environment) LastTick() uint64 {
	if len(e.steps) == 0 {
		return 0
	}
	return e.steps[len(e.steps)-1].Tick
}

// BeforeTick applies every step scheduled up to and including tick.
// Steps for ticks that were skipped are applied late, in order.
func (e *Environment) BeforeTick(_ context.Context, tick uint64) error {
	for e.next < len(e.steps) && e.steps[e.next].Tick <= tick {
		if err := e.apply(e.steps[e.next]); err != nil {
			return fmt.Errorf("step for tick %d: %w", e.steps[e.next].Tick, err)
		}
		e.next++
	}
	return nil
}

func (e *Environment) apply(step entities.ScenarioStep) error {
	if step.Process != "" {
		p, ok := e.provider.Lookup(step.Process)
		if !ok {
			return fmt.Errorf("unknown process %q", step.Process)
		}
		if step.Type != "" {
			data, err := EncodeValue(step.Type, step.Value)
			if err != nil {
				return err
			}
			if err := p.Write(entities.Address(step.Address), data); err != nil {
				return err
			}
		}
		if step.Exit {
			p.Exit()
		}
	}
	if step.TimerState != "" {
		state, err := entities.ParseTimerState(step.TimerState)
		if err != nil {
			return err
		}
		e.host.Timer().Force(state)
	}
	return nil
}

// Actions returns the timer transitions requested so far, by name.
func (e *Environment) Actions() []string {
	actions := e.host.Timer().Actions()
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

// Check compares the requested actions with the scenario's expectations.
// A scenario without expectations always passes.
func (e *Environment) Check() error {
	if e.expect == nil {
		return nil
	}
	got := e.Actions()
	if !slices.Equal(got, e.expect.Actions) {
		return &MismatchError{Want: slices.Clone(e.expect.Actions), Got: got}
	}
	return nil
}

// MismatchError reports a run whose actions differ from the expected ones.
type MismatchError struct {
	Want []string
	Got  []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected actions %v, got %v", e.Want, e.Got)
}
