package random

// Sequence replays a fixed list of values, wrapping around at the end.
// It lets tests pin every draw a generator makes.
type Sequence struct {
	values []float64
	pos    int
	draws  int
}

// NewSequence creates a Sequence over values. With no values it always yields 0.5.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value in the sequence
func (s *Sequence) Float64() float64 {
	s.draws++
	if len(s.values) == 0 {
		return 0.5
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Draws returns how many values have been taken so far
func (s *Sequence) Draws() int {
	return s.draws
}

// Reset rewinds the sequence to its first value
func (s *Sequence) Reset() {
	s.pos = 0
	s.draws = 0
}
