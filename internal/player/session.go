package player

import (
	"fmt"
	"time"

	"github.com/san-kum/arrayviz/internal/demo"
	"github.com/san-kum/arrayviz/internal/render"
)

// Frame is everything the view layer needs after a state change.
type Frame struct {
	Total       int
	Step        int
	AutoPlaying bool
	Entry       demo.Entry
	Snapshot    demo.Snapshot
	Tree        render.Tree
}

// Observer is notified with a fresh frame after every state change.
type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

// TickResult describes what an auto-advance tick did.
type TickResult uint8

const (
	// TickIgnored means the tick's token was stale.
	TickIgnored TickResult = iota
	// TickAdvanced means the session moved forward; schedule another tick.
	TickAdvanced
	// TickFinished means the last step was reached; auto-advance stopped and
	// the session was reset.
	TickFinished
)

func (r TickResult) String() string {
	switch r {
	case TickAdvanced:
		return "advanced"
	case TickFinished:
		return "finished"
	}
	return "ignored"
}

// Session owns the catalog, the stepper and the auto-advance controller.
// It is not safe for concurrent use; drive it from one goroutine.
type Session struct {
	catalog   *demo.Catalog
	stepper   *Stepper
	auto      *Autoplay
	observers []Observer
}

func NewSession(c *demo.Catalog, interval time.Duration) (*Session, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Session{
		catalog: c,
		stepper: NewStepper(c.Len()),
		auto:    NewAutoplay(interval),
	}, nil
}

func (s *Session) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Session) Catalog() *demo.Catalog { return s.catalog }
func (s *Session) Total() int { return s.stepper.Len() }
func (s *Session) Index() int { return s.stepper.Index() }
func (s *Session) Step() int { return s.stepper.Step() }
func (s *Session) AutoPlaying() bool { return s.auto.Running() }
func (s *Session) Interval() time.Duration { return s.auto.Interval() }

// Token returns the token a newly scheduled tick should carry.
func (s *Session) Token() Token { return s.auto.gen }

func (s *Session) Next() bool {
	if !s.stepper.Next() {
		return false
	}
	s.emit()
	return true
}

func (s *Session) Previous() bool {
	if !s.stepper.Previous() {
		return false
	}
	s.emit()
	return true
}

// Reset cancels auto-advance and returns to the first step.
func (s *Session) Reset() {
	s.auto.Stop()
	s.stepper.Reset()
	s.emit()
}

// Seek jumps to a 1-based step number.
func (s *Session) Seek(step int) error {
	if step < 1 || step > s.stepper.Len() {
		return fmt.Errorf("%w: %d (1-%d)", ErrStepOutOfRange, step, s.stepper.Len())
	}
	if step-1 == s.stepper.Index() {
		return nil
	}
	s.stepper.Seek(step - 1)
	s.emit()
	return nil
}

// Toggle starts auto-advance when idle and stops it when running. started
// reports the new state; when true the caller schedules a tick carrying t.
func (s *Session) Toggle() (t Token, started bool) {
	if s.auto.Running() {
		s.auto.Stop()
		s.emit()
		return 0, false
	}
	t, _ = s.auto.Start()
	s.emit()
	return t, true
}

// Tick performs one auto-advance step for a tick scheduled with t.
func (s *Session) Tick(t Token) TickResult {
	if !s.auto.Valid(t) {
		return TickIgnored
	}
	if s.stepper.AtEnd() {
		s.Reset()
		return TickFinished
	}
	s.Next()
	return TickAdvanced
}

// Frame builds the view data for the current step.
func (s *Session) Frame() Frame {
	e, _ := s.catalog.Entry(s.stepper.Index())
	snap := e.Generate()
	return Frame{
		Total:       s.stepper.Len(),
		Step:        s.stepper.Step(),
		AutoPlaying: s.auto.Running(),
		Entry:       e,
		Snapshot:    snap,
		Tree:        render.Card(e, snap),
	}
}

func (s *Session) emit() {
	if len(s.observers) == 0 {
		return
	}
	f := s.Frame()
	for _, o := range s.observers {
		o.OnFrame(f)
	}
}
