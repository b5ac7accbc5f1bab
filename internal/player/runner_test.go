package player_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/arrayviz/internal/demo"
	"github.com/san-kum/arrayviz/internal/player"
)

var _ = Describe("Runner", func() {
	var (
		s      *player.Session
		r      *player.Runner
		ctx    context.Context
		cancel context.CancelFunc
		exited chan error
	)

	start := func(interval time.Duration) {
		var err error
		s, err = player.NewSession(demo.Default(), interval)
		Expect(err).NotTo(HaveOccurred())
		r = player.NewRunner(s, zerolog.Nop())
		ctx, cancel = context.WithCancel(context.Background())
		exited = make(chan error, 1)
		go func() { exited <- r.Run(ctx) }()
	}

	AfterEach(func() {
		cancel()
		Eventually(exited).Should(Receive())
	})

	step := func() int {
		f, err := r.Frame(ctx)
		Expect(err).NotTo(HaveOccurred())
		return f.Step
	}

	It("applies manual navigation in order", func() {
		start(time.Hour)
		Expect(r.Next(ctx)).To(Succeed())
		Expect(r.Next(ctx)).To(Succeed())
		Expect(r.Previous(ctx)).To(Succeed())
		Expect(step()).To(Equal(2))
		Expect(r.Reset(ctx)).To(Succeed())
		Expect(step()).To(Equal(1))
	})

	It("auto-advances from the second-to-last step, then wraps and stops", func() {
		start(5 * time.Millisecond)
		n := s.Total()
		Expect(r.Seek(ctx, n-1)).To(Succeed())

		running, err := r.Toggle(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(running).To(BeTrue())

		Eventually(r.Finished(), time.Second).Should(BeClosed())
		f, err := r.Frame(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Step).To(Equal(1))
		Expect(f.AutoPlaying).To(BeFalse())
	})

	It("does not tick after auto-advance is toggled off", func() {
		start(20 * time.Millisecond)
		_, err := r.Toggle(ctx)
		Expect(err).NotTo(HaveOccurred())
		running, err := r.Toggle(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(running).To(BeFalse())

		Consistently(step, 100*time.Millisecond, 10*time.Millisecond).Should(Equal(1))
	})

	It("rejects out of range seeks", func() {
		start(time.Hour)
		err := r.Seek(ctx, 0)
		Expect(errors.Is(err, player.ErrStepOutOfRange)).To(BeTrue())
	})

	It("reports a stopped runner", func() {
		start(time.Hour)
		cancel()
		Eventually(exited).Should(Receive(MatchError(context.Canceled)))
		exited <- nil

		err := r.Next(context.Background())
		Expect(errors.Is(err, player.ErrRunnerStopped)).To(BeTrue())
	})
})
