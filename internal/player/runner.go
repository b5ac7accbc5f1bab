package player

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type command struct {
	apply func(*Session)
	reply chan struct{}
}

// Runner drives a Session from a single goroutine. Commands and timer ticks
// are applied one at a time; a command returns only after it has been
// applied, so once Toggle has stopped auto-advance no further tick acts.
type Runner struct {
	session *Session
	log     zerolog.Logger

	cmds     chan command
	done     chan struct{}
	finished chan struct{}
	once     sync.Once

	timer *time.Timer
	token Token
}

func NewRunner(s *Session, log zerolog.Logger) *Runner {
	return &Runner{
		session:  s,
		log:      log,
		cmds:     make(chan command),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Finished is closed the first time auto-advance reaches the last step and
// wraps back to the start.
func (r *Runner) Finished() <-chan struct{} { return r.finished }

// Run processes commands and ticks until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)
	defer r.cancelTimer()

	r.log.Debug().Int("total", r.session.Total()).Msg("runner started")
	for {
		var tick <-chan time.Time
		if r.timer != nil {
			tick = r.timer.C
		}

		select {
		case <-ctx.Done():
			r.log.Debug().Msg("runner stopped")
			return ctx.Err()
		case c := <-r.cmds:
			c.apply(r.session)
			r.sync()
			close(c.reply)
		case <-tick:
			r.timer = nil
			r.onTick()
		}
	}
}

func (r *Runner) onTick() {
	res := r.session.Tick(r.token)
	r.log.Debug().
		Stringer("result", res).
		Int("step", r.session.Step()).
		Msg("auto-advance tick")

	switch res {
	case TickAdvanced:
		r.schedule()
	case TickFinished:
		r.log.Info().Msg("auto-advance reached the last step; reset to start")
		r.once.Do(func() { close(r.finished) })
	}
}

// sync brings the timer in line with the controller state after a command.
func (r *Runner) sync() {
	if !r.session.AutoPlaying() {
		r.cancelTimer()
		return
	}
	if r.timer == nil || r.token != r.session.Token() {
		r.cancelTimer()
		r.schedule()
	}
}

func (r *Runner) schedule() {
	r.token = r.session.Token()
	r.timer = time.NewTimer(r.session.Interval())
}

func (r *Runner) cancelTimer() {
	if r.timer == nil {
		return
	}
	r.timer.Stop()
	r.timer = nil
}

func (r *Runner) do(ctx context.Context, fn func(*Session)) error {
	c := command{apply: fn, reply: make(chan struct{})}
	select {
	case r.cmds <- c:
	case <-r.done:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-c.reply:
		return nil
	case <-r.done:
		return ErrRunnerStopped
	}
}

func (r *Runner) Next(ctx context.Context) error {
	return r.do(ctx, func(s *Session) { s.Next() })
}

func (r *Runner) Previous(ctx context.Context) error {
	return r.do(ctx, func(s *Session) { s.Previous() })
}

func (r *Runner) Reset(ctx context.Context) error {
	return r.do(ctx, func(s *Session) { s.Reset() })
}

// Toggle starts or stops auto-advance and reports whether it is now running.
func (r *Runner) Toggle(ctx context.Context) (bool, error) {
	var started bool
	err := r.do(ctx, func(s *Session) {
		_, started = s.Toggle()
		r.log.Debug().Bool("running", started).Msg("auto-advance toggled")
	})
	return started, err
}

func (r *Runner) Seek(ctx context.Context, step int) error {
	var seekErr error
	if err := r.do(ctx, func(s *Session) { seekErr = s.Seek(step) }); err != nil {
		return err
	}
	return seekErr
}

// Frame returns the current frame as seen from the runner goroutine.
func (r *Runner) Frame(ctx context.Context) (Frame, error) {
	var f Frame
	err := r.do(ctx, func(s *Session) { f = s.Frame() })
	return f, err
}
