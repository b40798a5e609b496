package sched

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("PeriodicEvent", func() {
	var (
		mockCtrl *gomock.Controller
		p        *Processor
		action   *MockAction
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		p = NewProcessor()
		action = NewMockAction(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should schedule one interval ahead on start", func() {
		evt := NewPeriodicEvent(action, p, 10)

		evt.Start()

		Expect(p.PendingCount()).To(Equal(1))
		Expect(evt.FireTime()).To(Equal(VTimeInMS(10)))
	})

	It("should run the action once per period while it makes progress", func() {
		evt := NewPeriodicEvent(action, p, 10)

		gomock.InOrder(
			action.EXPECT().Act(VTimeInMS(10)).Return(true),
			action.EXPECT().Act(VTimeInMS(20)).Return(true),
			action.EXPECT().Act(VTimeInMS(30)).Return(false),
		)

		evt.Start()
		for i := 0; i < 4; i++ {
			p.Update(10)
		}

		Expect(p.PendingCount()).To(Equal(0))
	})

	It("should stop when cancelled in bulk", func() {
		evt := NewPeriodicEvent(action, p, 10)

		evt.Start()
		p.KillAllEvents(true)
		p.Update(10)

		Expect(p.PendingCount()).To(Equal(0))
	})
})
