package player_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/arrayviz/internal/demo"
	"github.com/san-kum/arrayviz/internal/player"
)

var _ = Describe("Stepper", func() {
	It("clamps at both ends", func() {
		s := player.NewStepper(4)
		Expect(s.Previous()).To(BeFalse())
		Expect(s.Index()).To(Equal(0))

		for i := 0; i < 3; i++ {
			Expect(s.Next()).To(BeTrue())
		}
		Expect(s.Index()).To(Equal(3))
		Expect(s.AtEnd()).To(BeTrue())
		Expect(s.Next()).To(BeFalse())
		Expect(s.Step()).To(Equal(4))

		s.Seek(99)
		Expect(s.Index()).To(Equal(3))
		s.Seek(-5)
		Expect(s.Index()).To(Equal(0))
	})
})

var _ = Describe("Autoplay", func() {
	It("invalidates tokens on stop", func() {
		a := player.NewAutoplay(0)
		Expect(a.Interval()).To(Equal(player.DefaultInterval))

		t1, started := a.Start()
		Expect(started).To(BeTrue())
		Expect(a.Valid(t1)).To(BeTrue())

		again, started := a.Start()
		Expect(started).To(BeFalse())
		Expect(again).To(Equal(t1))

		a.Stop()
		Expect(a.Running()).To(BeFalse())
		Expect(a.Valid(t1)).To(BeFalse())

		t2, _ := a.Start()
		Expect(t2).NotTo(Equal(t1))
		Expect(a.Valid(t1)).To(BeFalse())
		Expect(a.Valid(t2)).To(BeTrue())
	})
})

var _ = Describe("Session", func() {
	var (
		s      *player.Session
		frames []player.Frame
		n      int
	)

	BeforeEach(func() {
		var err error
		s, err = player.NewSession(demo.Default(), time.Second)
		Expect(err).NotTo(HaveOccurred())
		n = s.Total()
		frames = nil
		s.AddObserver(player.ObserverFunc(func(f player.Frame) { frames = append(frames, f) }))
	})

	It("rejects an empty catalog", func() {
		_, err := player.NewSession(demo.New(), time.Second)
		Expect(errors.Is(err, player.ErrEmptyCatalog)).To(BeTrue())
		_, err = player.NewSession(nil, time.Second)
		Expect(errors.Is(err, player.ErrEmptyCatalog)).To(BeTrue())
	})

	It("reaches the last index after N-1 nexts and stays there", func() {
		for i := 0; i < n-1; i++ {
			Expect(s.Next()).To(BeTrue())
		}
		Expect(s.Index()).To(Equal(n - 1))
		Expect(s.Next()).To(BeFalse())
		Expect(s.Index()).To(Equal(n - 1))
		Expect(frames).To(HaveLen(n - 1))
		Expect(frames[len(frames)-1].Step).To(Equal(n))
	})

	It("keeps index 0 on previous from the start", func() {
		Expect(s.Previous()).To(BeFalse())
		Expect(s.Index()).To(Equal(0))
		Expect(frames).To(BeEmpty())
	})

	It("resets to 0 and idles the controller", func() {
		s.Next()
		s.Next()
		_, started := s.Toggle()
		Expect(started).To(BeTrue())

		s.Reset()
		Expect(s.Index()).To(Equal(0))
		Expect(s.AutoPlaying()).To(BeFalse())
		last := frames[len(frames)-1]
		Expect(last.Step).To(Equal(1))
		Expect(last.AutoPlaying).To(BeFalse())
	})

	It("advances once from N-2 and then stops and resets", func() {
		Expect(s.Seek(n - 1)).To(Succeed())
		token, started := s.Toggle()
		Expect(started).To(BeTrue())

		Expect(s.Tick(token)).To(Equal(player.TickAdvanced))
		Expect(s.Index()).To(Equal(n - 1))
		Expect(s.AutoPlaying()).To(BeTrue())

		Expect(s.Tick(token)).To(Equal(player.TickFinished))
		Expect(s.Index()).To(Equal(0))
		Expect(s.AutoPlaying()).To(BeFalse())
	})

	It("ignores ticks scheduled before a stop", func() {
		token, _ := s.Toggle()
		s.Toggle()
		Expect(s.Tick(token)).To(Equal(player.TickIgnored))
		Expect(s.Index()).To(Equal(0))

		fresh, _ := s.Toggle()
		Expect(s.Tick(token)).To(Equal(player.TickIgnored))
		Expect(s.Tick(fresh)).To(Equal(player.TickAdvanced))
		Expect(s.Index()).To(Equal(1))
	})

	It("validates seek targets", func() {
		err := s.Seek(0)
		Expect(errors.Is(err, player.ErrStepOutOfRange)).To(BeTrue())
		err = s.Seek(n + 1)
		Expect(errors.Is(err, player.ErrStepOutOfRange)).To(BeTrue())
		Expect(s.Seek(5)).To(Succeed())
		Expect(s.Step()).To(Equal(5))
	})

	It("builds frames for the current step", func() {
		s.Next()
		f := s.Frame()
		Expect(f.Total).To(Equal(n))
		Expect(f.Step).To(Equal(2))
		Expect(f.Entry.Name).To(Equal("push()"))

		arr, ok := f.Snapshot.Lookup("length")
		Expect(ok).To(BeTrue())
		Expect(arr.Equal(demo.Int(5))).To(BeTrue())

		header, ok := f.Tree.Find("header")
		Expect(ok).To(BeTrue())
		Expect(header.Children[0].Text).To(Equal("push()"))
	})
})
