package gosorter

import (
	"sort"
)

// comparator performs a three-way comparison of two records by one sort key.
type comparator[T any] func(a, b T) int

// SliceSource adapts a finite in-memory sequence into query form.
//
// Ordering primitives only accumulate comparators and never touch the backing
// items; Slice materializes the accumulated ordering with a stable sort, so
// records equal on every key keep their original relative order. Derived
// views share the backing items but own their comparator chain: ordering a
// derived view never disturbs the view it came from.
type SliceSource[T any] struct {
	items       []T
	comparators []comparator[T]
}

// NewSliceSource wraps items in query form. The slice is not copied; the
// caller must not mutate it while the source is in use.
func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{
		items: items,
	}
}

// OrderBy - implements Source. Starts a fresh ascending primary ordering.
func (s *SliceSource[T]) OrderBy(key SortKey[T]) Source[T] {
	return s.derive(nil, keyComparator(key, false))
}

// OrderByDescending - implements Source. Starts a fresh descending primary ordering.
func (s *SliceSource[T]) OrderByDescending(key SortKey[T]) Source[T] {
	return s.derive(nil, keyComparator(key, true))
}

// ThenBy - implements Source. Adds a subordinate ascending ordering level.
func (s *SliceSource[T]) ThenBy(key SortKey[T]) Source[T] {
	return s.derive(s.comparators, keyComparator(key, false))
}

// ThenByDescending - implements Source. Adds a subordinate descending ordering level.
func (s *SliceSource[T]) ThenByDescending(key SortKey[T]) Source[T] {
	return s.derive(s.comparators, keyComparator(key, true))
}

func (s *SliceSource[T]) derive(base []comparator[T], next comparator[T]) *SliceSource[T] {
	chain := make([]comparator[T], 0, len(base)+1)
	chain = append(chain, base...)
	chain = append(chain, next)

	return &SliceSource[T]{
		items:       s.items,
		comparators: chain,
	}
}

// Slice materializes the view into a new slice ordered by the accumulated
// comparator chain. Without any ordering applied it returns a copy of the
// items in their original order.
func (s *SliceSource[T]) Slice() []T {
	ret := make([]T, len(s.items))
	copy(ret, s.items)

	if len(s.comparators) == 0 {
		return ret
	}

	sort.SliceStable(ret, func(i, j int) bool {
		return s.compare(ret[i], ret[j]) < 0
	})

	return ret
}

// Len returns the number of records in the source.
func (s *SliceSource[T]) Len() int {
	return len(s.items)
}

// compare runs the comparator chain in priority order. The first key whose
// selected values differ decides; full equality returns 0 and leaves the
// relative order to the stable sort.
func (s *SliceSource[T]) compare(a, b T) int {
	for _, cmpFn := range s.comparators {
		if c := cmpFn(a, b); c != 0 {
			return c
		}
	}

	return 0
}

func keyComparator[T any](key SortKey[T], desc bool) comparator[T] {
	return func(a, b T) int {
		c := compareValues(key.Selector(a), key.Selector(b))
		if desc {
			return -c
		}

		return c
	}
}

var _ Source[any] = (*SliceSource[any])(nil)
