package sim

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("EventQueue", func() {
	var (
		mockCtrl *gomock.Controller
		queue    EventQueue
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		queue = NewEventQueue()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should pop events in time order", func() {
		events := make([]*MockEvent, 0, 100)
		for i := 0; i < 100; i++ {
			evt := NewMockEvent(mockCtrl)
			evt.EXPECT().Time().
				Return(VTimeInSec(rand.Float64())).
				AnyTimes()
			events = append(events, evt)
			queue.Push(evt)
		}

		Expect(queue.Len()).To(Equal(100))

		prevTime := VTimeInSec(0)
		for i := 0; i < 100; i++ {
			evt := queue.Pop()
			Expect(evt.Time()).To(BeNumerically(">=", prevTime))
			prevTime = evt.Time()
		}
	})

	It("should peek the earliest event without removing it", func() {
		evt1 := NewMockEvent(mockCtrl)
		evt1.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()
		evt2 := NewMockEvent(mockCtrl)
		evt2.EXPECT().Time().Return(VTimeInSec(1.0)).AnyTimes()

		queue.Push(evt1)
		queue.Push(evt2)

		Expect(queue.Peek()).To(BeIdenticalTo(evt2))
		Expect(queue.Len()).To(Equal(2))
	})
})
