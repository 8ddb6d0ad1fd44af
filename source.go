package gosorter

// Source is an orderable view over a dataset of T. Implementations cover both
// finite in-memory sequences (SliceSource) and lazy queries (GormSource).
//
// The four primitives follow the usual multi-key ordering protocol:
// OrderBy/OrderByDescending start a fresh primary ordering, discarding any
// ordering the receiver already carries; ThenBy/ThenByDescending add a
// subordinate level that breaks ties left by the levels before it. Each call
// returns a derived view and leaves the receiver usable as-is.
//
// Only the key part of the passed SortKey is consulted; the primitive itself
// fixes the direction.
type Source[T any] interface {
	OrderBy(key SortKey[T]) Source[T]
	OrderByDescending(key SortKey[T]) Source[T]
	ThenBy(key SortKey[T]) Source[T]
	ThenByDescending(key SortKey[T]) Source[T]
}
