// Package ops provides small sequence utilities shared across peasy:
// cyclic (index-wrapping) sequences and stable group-by-index routines.
package ops

import (
	"cmp"
	"errors"
	"sort"
)

// ErrEmptySequence is returned when constructing a Cycle from an empty slice.
var ErrEmptySequence = errors.New("ops: empty sequence")

// ErrEmptyInput is returned when grouping an empty key slice.
var ErrEmptyInput = errors.New("ops: empty input")

// Cycle is a read-only view over a non-empty slice whose indexing wraps
// around modulo its length, so any integer is a valid index.
type Cycle[T any] struct {
	data []T
}

// NewCycle returns a Cycle over data. The slice is copied; the Cycle is
// immutable afterward. Fails with ErrEmptySequence if data is empty.
func NewCycle[T any](data []T) (*Cycle[T], error) {
	if len(data) == 0 {
		return nil, ErrEmptySequence
	}
	cp := make([]T, len(data))
	copy(cp, data)
	return &Cycle[T]{data: cp}, nil
}

// MustCycle is NewCycle for trusted literals. It panics on empty input.
func MustCycle[T any](data []T) *Cycle[T] {
	c, err := NewCycle(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of distinct elements in one period.
func (c *Cycle[T]) Len() int { return len(c.data) }

// Values returns a copy of the backing slice.
func (c *Cycle[T]) Values() []T {
	cp := make([]T, len(c.data))
	copy(cp, c.data)
	return cp
}

// At returns the element at index i modulo the cycle length. Negative and
// out-of-range indices wrap around.
func (c *Cycle[T]) At(i int) T {
	n := len(c.data)
	return c.data[((i%n)+n)%n]
}

// Slice resolves the absolute index range [start, stop) with the given step
// into a concrete, non-cyclic slice. stop may exceed the cycle length; the
// result wraps as many times as needed. A step of 0 is treated as 1 and a
// negative step walks the range downward.
func (c *Cycle[T]) Slice(start, stop, step int) []T {
	if step == 0 {
		step = 1
	}
	var out []T
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, c.At(i))
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, c.At(i))
		}
	}
	return out
}

// GroupIndices returns the unique keys in ascending order and, for each, the
// original positions holding that key, also ascending. The sort is stable so
// duplicate keys keep their original relative order, which is what makes the
// position lists deterministic.
//
// GroupIndices([]int{1, 4, 3, 2, 1, 2, 3, 3, 4}) yields
// unique [1 2 3 4] and groups [[0 4] [3 5] [2 6 7] [1 8]].
func GroupIndices[K cmp.Ordered](keys []K) ([]K, [][]int, error) {
	if len(keys) == 0 {
		return nil, nil, ErrEmptyInput
	}

	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]] < keys[idx[b]]
	})

	var unique []K
	var groups [][]int
	for i := 0; i < len(idx); i++ {
		k := keys[idx[i]]
		if i == 0 || k != keys[idx[i-1]] {
			unique = append(unique, k)
			groups = append(groups, nil)
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], idx[i])
	}
	return unique, groups, nil
}

// GroupMasks is GroupIndices with each group returned as a boolean mask over
// the original input length instead of a position list.
func GroupMasks[K cmp.Ordered](keys []K) ([]K, [][]bool, error) {
	unique, groups, err := GroupIndices(keys)
	if err != nil {
		return nil, nil, err
	}
	masks := make([][]bool, len(groups))
	for g, group := range groups {
		mask := make([]bool, len(keys))
		for _, p := range group {
			mask[p] = true
		}
		masks[g] = mask
	}
	return unique, masks, nil
}
