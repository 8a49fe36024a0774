// Package sparse provides a sparse set for tracking visited graph nodes.
//
// The set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of members in insertion order. It is used by graph
// traversals that must visit each node of a cyclic graph exactly once.
package sparse

import "github.com/coregx/tokenpat/internal/conv"

// Set is a set of small unsigned identifiers drawn from [0, capacity).
// Members are kept in insertion order.
type Set[T ~uint32] struct {
	sparse []uint32
	dense  []T
}

// New creates a set able to hold identifiers below capacity.
func New[T ~uint32](capacity int) *Set[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Set[T]{
		sparse: make([]uint32, capacity),
		dense:  make([]T, 0, capacity),
	}
}

// Insert adds v and reports whether it was newly added.
// Values outside the capacity are rejected.
func (s *Set[T]) Insert(v T) bool {
	if int(v) >= len(s.sparse) || s.Contains(v) {
		return false
	}
	s.sparse[v] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	if int(v) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[v]
	return int(idx) < len(s.dense) && s.dense[idx] == v
}

// Clear empties the set in O(1).
func (s *Set[T]) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.dense)
}

// Capacity returns the exclusive upper bound on storable identifiers.
func (s *Set[T]) Capacity() int {
	return len(s.sparse)
}

// Values returns the members in insertion order.
// The slice is valid until the next mutation.
func (s *Set[T]) Values() []T {
	return s.dense
}
