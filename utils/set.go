package utils

import "sort"

// Set tracks distinct strings and remembers first-seen order. It is not
// safe for concurrent use; each query builds its own.
type Set struct {
	seen  map[string]struct{}
	order []string
}

// NewSet creates a Set holding the given values.
func NewSet(values ...string) *Set {
	s := &Set{seen: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add returns true if v was newly added, false if already present.
func (s *Set) Add(v string) bool {
	if _, exists := s.seen[v]; exists {
		return false
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Contains returns true if v has been added.
func (s *Set) Contains(v string) bool {
	_, exists := s.seen[v]
	return exists
}

// Size returns the number of distinct values.
func (s *Set) Size() int {
	return len(s.order)
}

// Values returns the values in first-seen order.
func (s *Set) Values() []string {
	return append([]string(nil), s.order...)
}

// Sorted returns the values in ascending byte order.
func (s *Set) Sorted() []string {
	out := s.Values()
	sort.Strings(out)
	return out
}
