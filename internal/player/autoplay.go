package player

import "time"

// DefaultInterval is the auto-advance period.
const DefaultInterval = 3 * time.Second

// Token identifies one scheduled tick. Tokens issued before the most recent
// Stop are no longer valid.
type Token uint64

// Autoplay is the auto-advance controller: idle or running.
type Autoplay struct {
	interval time.Duration
	running  bool
	gen      Token
}

func NewAutoplay(interval time.Duration) *Autoplay {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autoplay{interval: interval}
}

// Start moves to running and returns the token for the first tick. Calling
// Start while running returns the current token without rescheduling.
func (a *Autoplay) Start() (Token, bool) {
	if a.running {
		return a.gen, false
	}
	a.running = true
	a.gen++
	return a.gen, true
}

// Stop moves to idle and invalidates every outstanding token.
func (a *Autoplay) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.gen++
}

func (a *Autoplay) Running() bool { return a.running }

func (a *Autoplay) Interval() time.Duration { return a.interval }

// Valid reports whether a tick carrying t may still act.
func (a *Autoplay) Valid(t Token) bool {
	return a.running && t == a.gen
}
