package player

// Stepper tracks the current position in a catalog of n entries.
// Requests past either end are ignored.
type Stepper struct {
	n, index int
}

func NewStepper(n int) *Stepper {
	return &Stepper{n: n}
}

// Next advances one position and reports whether it moved.
func (s *Stepper) Next() bool {
	if s.index >= s.n-1 {
		return false
	}
	s.index++
	return true
}

// Previous moves back one position and reports whether it moved.
func (s *Stepper) Previous() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

func (s *Stepper) Reset() { s.index = 0 }

// Seek jumps to index i, clamped to the valid range.
func (s *Stepper) Seek(i int) {
	s.index = max(0, min(i, s.n-1))
}

func (s *Stepper) Index() int { return s.index }
func (s *Stepper) Step() int { return s.index + 1 }
func (s *Stepper) Len() int { return s.n }
func (s *Stepper) AtEnd() bool { return s.index >= s.n-1 }
