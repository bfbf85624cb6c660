package utils

// OrderedSet is a set that remembers the order in which values were first added.
// The zero value is not usable; create sets with NewOrderedSet.
type OrderedSet[T comparable] struct {
	index  map[T]int
	values []T
}

// NewOrderedSet creates an empty set, optionally seeded with values.
func NewOrderedSet[T comparable](values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: make(map[T]int, len(values))}
	for _, v := range values {
		s.Add(v)
	}

	return s
}

// Add inserts v if it is not already present and reports whether it was added.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}

	s.index[v] = len(s.values)
	s.values = append(s.values, v)
	return true
}

// Contains reports whether v is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Index returns the insertion position of v, or -1 if v is not present.
func (s *OrderedSet[T]) Index(v T) int {
	if i, ok := s.index[v]; ok {
		return i
	}

	return -1
}

// Len returns the number of values in the set.
func (s *OrderedSet[T]) Len() int {
	return len(s.values)
}

// Values returns a copy of the values in insertion order.
func (s *OrderedSet[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}
