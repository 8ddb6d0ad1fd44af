package gosorter

// KeySelector extracts the sort key value from a record. The selected value
// must be of a naturally ordered comparable type (numbers, strings, bools,
// time.Time); each key may select a different type.
type KeySelector[T any] func(T) any

// SortKey describes one ordering level: a key plus a direction.
//
// The key has two renditions, one per source kind:
//   - Column is used by SQL-backed sources (GormSource).
//   - Selector is used by in-memory sources (SliceSource).
//
// A SortKey is a plain immutable value; construct it with a struct literal or
// via Asc/Desc. No validation happens at construction. A nil Selector handed
// to an in-memory source is a caller error surfaced at materialization time.
type SortKey[T any] struct {
	Column    string
	Selector  KeySelector[T]
	Direction Direction
}

// Asc returns an ascending SortKey for the given column and selector.
func Asc[T any](column string, selector KeySelector[T]) SortKey[T] {
	return SortKey[T]{Column: column, Selector: selector, Direction: DirectionASC}
}

// Desc returns a descending SortKey for the given column and selector.
func Desc[T any](column string, selector KeySelector[T]) SortKey[T] {
	return SortKey[T]{Column: column, Selector: selector, Direction: DirectionDESC}
}
