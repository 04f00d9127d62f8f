package hostfuncs

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autosplit-dev/autosplit-sdk/domain/entities"
)

var _ = Describe("TimerMachine", func() {
	var m *TimerMachine

	BeforeEach(func() {
		m = NewTimerMachine(WithSegments(2))
	})

	It("starts in NotRunning", func() {
		Expect(m.State()).To(Equal(entities.NotRunning))
		Expect(m.Segments()).To(Equal(2))
	})

	Context("when not running", func() {
		It("ignores pause without failing", func() {
			Expect(m.Pause()).To(BeFalse())
			Expect(m.State()).To(Equal(entities.NotRunning))

			events := m.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Action).To(Equal(ActionPause))
			Expect(events[0].Applied).To(BeFalse())
		})

		It("ignores split, unpause, undo and reset", func() {
			Expect(m.Split()).To(BeFalse())
			Expect(m.Unpause()).To(BeFalse())
			Expect(m.UndoSplit()).To(BeFalse())
			Expect(m.Reset()).To(BeFalse())
			Expect(m.State()).To(Equal(entities.NotRunning))
		})

		It("starts a run", func() {
			Expect(m.Start()).To(BeTrue())
			Expect(m.State()).To(Equal(entities.Running))
			Expect(m.CurrentSplit()).To(Equal(0))
		})
	})

	Context("when running", func() {
		BeforeEach(func() {
			m.Start()
		})

		It("ignores a second start", func() {
			Expect(m.Start()).To(BeFalse())
		})

		It("pauses and unpauses", func() {
			Expect(m.Pause()).To(BeTrue())
			Expect(m.State()).To(Equal(entities.Paused))
			Expect(m.Unpause()).To(BeTrue())
			Expect(m.State()).To(Equal(entities.Running))
		})

		It("ends the run on the last split", func() {
			Expect(m.Split()).To(BeTrue())
			Expect(m.State()).To(Equal(entities.Running))
			Expect(m.Split()).To(BeTrue())
			Expect(m.State()).To(Equal(entities.Ended))
		})

		It("does not skip the last segment", func() {
			Expect(m.SkipSplit()).To(BeTrue())
			Expect(m.CurrentSplit()).To(Equal(1))
			Expect(m.SkipSplit()).To(BeFalse())
		})

		It("does not split while paused", func() {
			m.Pause()
			Expect(m.Split()).To(BeFalse())
			Expect(m.CurrentSplit()).To(Equal(0))
		})
	})

	Context("when ended", func() {
		BeforeEach(func() {
			m.Start()
			m.Split()
			m.Split()
		})

		It("stays ended until reset", func() {
			Expect(m.Start()).To(BeFalse())
			Expect(m.Pause()).To(BeFalse())
			Expect(m.Split()).To(BeFalse())
			Expect(m.State()).To(Equal(entities.Ended))

			Expect(m.Reset()).To(BeTrue())
			Expect(m.State()).To(Equal(entities.NotRunning))
			Expect(m.CurrentSplit()).To(Equal(0))
		})

		It("resumes on undo", func() {
			Expect(m.UndoSplit()).To(BeTrue())
			Expect(m.State()).To(Equal(entities.Running))
			Expect(m.CurrentSplit()).To(Equal(1))
		})
	})

	It("keeps the last variable write", func() {
		m.SetVariable("x", "1")
		m.SetVariable("x", "2")
		v, ok := m.Variable("x")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("2"))
		Expect(m.Variables()).To(Equal(map[string]string{"x": "2"}))
	})

	It("records game time without a transition", func() {
		m.SetGameTime(3 * time.Second)
		Expect(m.GameTime()).To(Equal(3 * time.Second))
		Expect(m.Actions()).To(BeEmpty())
		Expect(m.Events()).To(HaveLen(1))
	})

	It("allows unbounded runs", func() {
		unbounded := NewTimerMachine()
		unbounded.Start()
		for range 10 {
			Expect(unbounded.Split()).To(BeTrue())
		}
		Expect(unbounded.State()).To(Equal(entities.Running))
	})

	It("can be forced into a state", func() {
		m.Force(entities.Paused)
		Expect(m.State()).To(Equal(entities.Paused))
		Expect(m.Events()).To(BeEmpty())
	})

	It("can start from a configured state", func() {
		paused := NewTimerMachine(WithInitialState(entities.Paused))
		Expect(paused.State()).To(Equal(entities.Paused))
	})
})
