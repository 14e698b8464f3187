package randsrc

// Scripted replays a fixed list of draws. Each scripted value is reduced
// modulo n so it always lands in range; once the script runs out every
// draw returns 0.
type Scripted struct {
	values []int
	pos    int
}

// Script returns a Source that replays values in order.
func Script(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) IntN(n int) int {
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Remaining reports how many scripted draws have not been consumed.
func (s *Scripted) Remaining() int {
	return len(s.values) - s.pos
}
