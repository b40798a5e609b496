package sched

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventLogger", func() {
	var (
		buf *bytes.Buffer
		p   *Processor
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		p = NewProcessor()
		p.AcceptHook(NewEventLogger(log.New(buf, "", 0)))
	})

	It("should log fired events", func() {
		p.AddEvent(newProbeEvent("evt", nil), 10)
		p.Update(10)

		Expect(buf.String()).To(ContainSubstring("10 ms, fire"))
		Expect(buf.String()).To(ContainSubstring("probeEvent"))
	})

	It("should log aborted events", func() {
		p.AddEvent(newProbeEvent("evt", nil), 10)
		p.KillAllEvents(true)

		Expect(buf.String()).To(ContainSubstring("10 ms, abort"))
	})
})
