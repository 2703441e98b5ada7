package testutil

import (
	"fmt"
	"sync"
)

// SequenceSource replays predetermined draws in place of a random source.
//
// Tests use it to force a particular shuffle or fact kind. Each call to Intn
// consumes the next value; the value must lie in [0, n) for that call.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	idx    int
}

// NewSequenceSource creates a source that returns values in order.
//
// Example:
//
//	src := NewSequenceSource(5, 0, 3)
//	src.Intn(6) // 5
//	src.Intn(6) // 0
//	src.Intn(4) // 3
//	src.Intn(6) // panic: all values consumed
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// Intn returns the next predetermined value.
//
// Panics if the values are exhausted or the next value is outside [0, n).
// Both indicate a misconfigured test, not a runtime condition.
func (s *SequenceSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx >= len(s.values) {
		panic("SequenceSource: all values consumed")
	}
	v := s.values[s.idx]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("SequenceSource: value %d at position %d out of range [0,%d)", v, s.idx, n))
	}
	s.idx++
	return v
}

// Consumed returns how many values have been drawn.
func (s *SequenceSource) Consumed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}

// Reset rewinds the source to its first value.
func (s *SequenceSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = 0
}

// IdentityShuffle returns the draws that make a Fisher-Yates shuffle of n
// elements keep the original order (j == i at every step, i from n-1 down to 1).
func IdentityShuffle(n int) []int {
	if n < 2 {
		return nil
	}
	draws := make([]int, 0, n-1)
	for i := n - 1; i > 0; i-- {
		draws = append(draws, i)
	}
	return draws
}
