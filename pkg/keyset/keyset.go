// Package keyset provides an insertion-ordered set of values identified by a
// string key. Two values with the same key are the same member.
package keyset

// Keyed is satisfied by any value that exposes a natural key.
type Keyed interface {
	NaturalKey() string
}

// Set holds at most one value per natural key. The zero value is ready to use.
type Set[T Keyed] struct {
	index map[string]int
	items []T
}

// Of builds a set from values. Later duplicates are dropped.
func Of[T Keyed](values ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	k := v.NaturalKey()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Contains reports whether a member with v's key is present.
func (s *Set[T]) Contains(v T) bool {
	return s.ContainsKey(v.NaturalKey())
}

// ContainsKey reports whether a member with key k is present.
func (s *Set[T]) ContainsKey(k string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[k]
	return ok
}

// Get returns the member stored under key k.
func (s *Set[T]) Get(k string) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	i, ok := s.index[k]
	if !ok {
		return zero, false
	}
	return s.items[i], true
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Values returns the members in insertion order. The slice is a copy.
func (s *Set[T]) Values() []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Minus returns the members of s whose keys are absent from o.
func (s *Set[T]) Minus(o *Set[T]) []T {
	out := make([]T, 0)
	if s == nil {
		return out
	}
	for _, v := range s.items {
		if !o.ContainsKey(v.NaturalKey()) {
			out = append(out, v)
		}
	}
	return out
}

// Equal reports whether s and o hold the same keys.
func (s *Set[T]) Equal(o *Set[T]) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, v := range s.Values() {
		if !o.ContainsKey(v.NaturalKey()) {
			return false
		}
	}
	return true
}
