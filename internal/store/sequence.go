package store

// Sequence hands out todo identifiers for one session.
// The zero value is ready to use and starts at 1.
type Sequence struct {
	last int
}

// Next returns the next identifier. Values are never reused, even after
// the todo that held them is deleted.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}
