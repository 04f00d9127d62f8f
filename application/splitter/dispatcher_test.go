package splitter

import (
	stderrors "errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/autosplit-dev/autosplit-sdk/domain/errors"
	"github.com/autosplit-dev/autosplit-sdk/hostfuncs"
	"github.com/autosplit-dev/autosplit-sdk/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// countingSplitter counts updates and tracks overlapping calls.
type countingSplitter struct {
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	updates     int // only touched inside Update
	panicOn     int
	sleep       time.Duration
}

func (s *countingSplitter) Update(host HostFunctions) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		m := s.maxInFlight.Load()
		if n <= m || s.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}

	s.updates++
	if s.panicOn == s.updates {
		panic("boom")
	}
	time.Sleep(s.sleep)
}

type DispatcherSuite struct {
	suite.Suite
	host   *hostfuncs.Host
	funcs  HostFunctions
	logger *slog.Logger
}

func (s *DispatcherSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.host = hostfuncs.NewHost(hostfuncs.WithLogger(s.logger))
	s.funcs = timer.New(s.host)
}

func (s *DispatcherSuite) newDispatcher(ctor Constructor, opts ...Option) *Dispatcher {
	d, err := NewDispatcher(ctor, s.funcs, append([]Option{WithLogger(s.logger)}, opts...)...)
	s.Require().NoError(err)
	return d
}

func (s *DispatcherSuite) TestConstructRunsOnce() {
	calls := 0
	sp := &countingSplitter{}
	d := s.newDispatcher(func(HostFunctions) Splitter {
		calls++
		return sp
	})

	s.Nil(d.Instance())
	s.Require().NoError(d.Construct())
	s.Require().NoError(d.Construct())
	s.Require().NoError(d.Update())

	s.Equal(1, calls)
	s.Same(sp, d.Instance())
}

func (s *DispatcherSuite) TestUpdateConstructsLazily() {
	calls := 0
	sp := &countingSplitter{}
	d := s.newDispatcher(func(HostFunctions) Splitter {
		calls++
		return sp
	})

	s.Require().NoError(d.Update())
	s.Require().NoError(d.Update())

	s.Equal(1, calls)
	s.Equal(2, sp.updates)
	s.Equal(uint64(2), d.Ticks())
}

func (s *DispatcherSuite) TestConstructorReceivesHost() {
	d := s.newDispatcher(func(h HostFunctions) Splitter {
		h.SetTickRate(30)
		h.SetVariable("status", "waiting")
		return &countingSplitter{}
	})

	s.Require().NoError(d.Construct())
	s.Equal(30.0, s.host.TickRate())
	v, _ := s.host.Timer().Variable("status")
	s.Equal("waiting", v)
}

func (s *DispatcherSuite) TestUpdatesNeverOverlap() {
	sp := &countingSplitter{sleep: time.Millisecond}
	d := s.newDispatcher(func(HostFunctions) Splitter { return sp })

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(d.Update())
		}()
	}
	wg.Wait()

	s.Equal(int32(1), sp.maxInFlight.Load())
	s.Equal(8, sp.updates)
	s.Equal(uint64(8), d.Ticks())
}

func (s *DispatcherSuite) TestUpdatePanicIsRecovered() {
	sp := &countingSplitter{panicOn: 2}
	d := s.newDispatcher(func(HostFunctions) Splitter { return sp })

	s.Require().NoError(d.Update())

	err := d.Update()
	var perr *errors.PanicError
	s.Require().True(stderrors.As(err, &perr))
	s.Equal("update", perr.Phase)
	s.Equal("boom", perr.Value)
	s.NotEmpty(perr.Stack)

	s.Require().NoError(d.Update(), "instance survives the panic")
	s.Equal(3, sp.updates)
	s.Equal(uint64(2), d.Ticks())
}

func (s *DispatcherSuite) TestConstructorPanic() {
	calls := 0
	d := s.newDispatcher(func(HostFunctions) Splitter {
		calls++
		panic("cannot start")
	})

	err := d.Construct()
	var perr *errors.PanicError
	s.Require().True(stderrors.As(err, &perr))
	s.Equal("construct", perr.Phase)

	s.ErrorIs(d.Update(), err)
	s.ErrorIs(d.Update(), err)
	s.Equal(1, calls, "construct is never retried")
	s.Zero(d.Ticks())
}

func (s *DispatcherSuite) TestConstructorReturningNil() {
	d := s.newDispatcher(func(HostFunctions) Splitter { return nil })

	s.ErrorIs(d.Update(), errors.ErrNotConstructed)
	s.Nil(d.Instance())
}

func (s *DispatcherSuite) TestPanicRecoveryDisabled() {
	d := s.newDispatcher(func(HostFunctions) Splitter {
		return &countingSplitter{panicOn: 1}
	}, WithPanicRecovery(false))

	s.Panics(func() { _ = d.Update() })
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func TestNewDispatcher_Validation(t *testing.T) {
	_, err := NewDispatcher(nil, timer.New(hostfuncs.NewHost()))
	assert.ErrorContains(t, err, "constructor is nil")

	_, err = NewDispatcher(func(HostFunctions) Splitter { return nil }, nil)
	assert.ErrorContains(t, err, "host functions are nil")
}

func TestRegister_KeepsFirst(t *testing.T) {
	resetRegistration()
	t.Cleanup(resetRegistration)

	_, ok := Registered()
	require.False(t, ok)

	first := &countingSplitter{}
	Register(func(HostFunctions) Splitter { return first })
	Register(func(HostFunctions) Splitter { return &countingSplitter{} })

	ctor, ok := Registered()
	require.True(t, ok)
	assert.Same(t, first, ctor(nil))
}
