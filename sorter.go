package gosorter

import (
	"errors"
	"fmt"
)

// ErrNoSource is reported by Build when no source has ever been bound to the
// sorter, neither at construction nor via BuildOnSource/BuildOnSlice.
var ErrNoSource = errors.New("no source bound")

// Sorter accumulates sort keys and applies them to a data source as a single
// multi-level ordering. Keys are applied in insertion order: the first
// accepted key establishes the primary ordering, every later key breaks ties
// left by the keys before it.
//
// A Sorter instance is not safe for concurrent use.
type Sorter[T any] struct {
	keys   []SortKey[T]
	source Source[T]
}

// NewSorter returns a sorter with no source bound. Bind one later via
// BuildOnSource or BuildOnSlice.
func NewSorter[T any]() *Sorter[T] {
	return new(Sorter[T])
}

// NewSorterFromSource returns a sorter over a lazy query source. The source
// is used as-is.
func NewSorterFromSource[T any](source Source[T]) *Sorter[T] {
	return &Sorter[T]{
		source: source,
	}
}

// NewSorterFromSlice returns a sorter over an in-memory sequence. The
// sequence is brought into query form so that all sources are treated
// uniformly downstream.
func NewSorterFromSlice[T any](items []T) *Sorter[T] {
	return NewSorterFromSource[T](NewSliceSource(items))
}

// Append adds one sort key with a priority below everything accepted so far.
// Keys without a definite direction (including the SortKey zero value) are
// skipped silently, which makes it safe to chain Append unconditionally for
// optional "do not sort by this" keys. Returns the receiver for chaining.
func (s *Sorter[T]) Append(key SortKey[T]) *Sorter[T] {
	if s == nil {
		s = new(Sorter[T])
	}

	if !key.Direction.Valid() {
		return s
	}

	s.keys = append(s.keys, key)

	return s
}

// AppendMany applies Append to each key, preserving their relative order as
// priority order.
func (s *Sorter[T]) AppendMany(keys ...SortKey[T]) *Sorter[T] {
	if s == nil {
		s = new(Sorter[T])
	}

	for _, key := range keys {
		s = s.Append(key)
	}

	return s
}

// GetKeys returns the accepted sort keys in priority order.
func (s *Sorter[T]) GetKeys() []SortKey[T] {
	if s == nil {
		return nil
	}

	return s.keys
}

// Build applies the accumulated keys, in priority order, to the current
// source and returns the resulting ordered source. The first key starts the
// primary ordering, each following key extends it with a subordinate level,
// so the result is a stable lexicographic multi-key ordering. With no
// accepted keys the source is returned untouched. Build does not mutate the
// sorter.
func (s *Sorter[T]) Build() (Source[T], error) {
	if s == nil || s.source == nil {
		return nil, fmt.Errorf("cannot build ordering: %w", ErrNoSource)
	}

	src := s.source
	for i, key := range s.keys {
		switch {
		case i == 0 && key.Direction == DirectionDESC:
			src = src.OrderByDescending(key)
		case i == 0:
			src = src.OrderBy(key)
		case key.Direction == DirectionDESC:
			src = src.ThenByDescending(key)
		default:
			src = src.ThenBy(key)
		}
	}

	return src, nil
}

// BuildOnSource rebinds the sorter to source, discarding any previously bound
// one, then behaves exactly as Build.
func (s *Sorter[T]) BuildOnSource(source Source[T]) (Source[T], error) {
	if s == nil {
		s = new(Sorter[T])
	}

	s.source = source

	return s.Build()
}

// BuildOnSlice rebinds the sorter to an in-memory sequence, discarding any
// previously bound source, then behaves exactly as Build.
func (s *Sorter[T]) BuildOnSlice(items []T) (Source[T], error) {
	return s.BuildOnSource(NewSliceSource(items))
}
