package ic

import "fmt"

// stackIndex validates the current sp and returns it truncated to an int.
// All three stack primitives share this validity test: 0.0 <= sp < capacity.
func (s *ICState) stackIndex() (int, error) {
	sp := s.SP()
	if sp < 0 || int(sp) >= len(s.stack) {
		return 0, fmt.Errorf("stack pointer %v out of range: %w", sp, ErrRange)
	}
	return int(sp), nil
}

// Peek returns stack[sp] without moving sp.
func (s *ICState) Peek() (float32, error) {
	i, err := s.stackIndex()
	if err != nil {
		return 0, err
	}
	return s.stack[i], nil
}

// Pop returns stack[sp], then decrements sp.
func (s *ICState) Pop() (float32, error) {
	i, err := s.stackIndex()
	if err != nil {
		return 0, err
	}
	v := s.stack[i]
	s.SetSP(s.SP() - 1)
	return v, nil
}

// Push increments sp, then writes stack[sp] = v. Matched push/pop pairs leave
// sp balanced (spec §4.3/§8, correcting the source's decrement-then-write bug).
func (s *ICState) Push(v float32) error {
	s.SetSP(s.SP() + 1)
	i, err := s.stackIndex()
	if err != nil {
		return err
	}
	s.stack[i] = v
	return nil
}
