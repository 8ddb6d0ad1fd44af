package gosorter

import (
	"fmt"

	"gorm.io/gorm"
)

// GormSource adapts a lazy gorm query into an orderable Source. Ordering
// primitives only accumulate an ORDER BY description; nothing touches the
// database until the caller materializes the query obtained from DB.
//
// SQL orders by column name, so only SortKey.Column is consulted;
// SortKey.Selector is ignored.
type GormSource[T any] struct {
	db        *gorm.DB
	orderings Orderings
}

// NewGormSource wraps a gorm query. The query may already carry conditions;
// orderings accumulated here are appended on top of it at DB time.
func NewGormSource[T any](db *gorm.DB) *GormSource[T] {
	return &GormSource[T]{
		db: db,
	}
}

// OrderBy - implements Source. Starts a fresh ascending primary ordering.
func (s *GormSource[T]) OrderBy(key SortKey[T]) Source[T] {
	return s.derive(nil, OrderBy{Column: key.Column, Direction: DirectionASC})
}

// OrderByDescending - implements Source. Starts a fresh descending primary ordering.
func (s *GormSource[T]) OrderByDescending(key SortKey[T]) Source[T] {
	return s.derive(nil, OrderBy{Column: key.Column, Direction: DirectionDESC})
}

// ThenBy - implements Source. Adds a subordinate ascending ordering level.
func (s *GormSource[T]) ThenBy(key SortKey[T]) Source[T] {
	return s.derive(s.orderings, OrderBy{Column: key.Column, Direction: DirectionASC})
}

// ThenByDescending - implements Source. Adds a subordinate descending ordering level.
func (s *GormSource[T]) ThenByDescending(key SortKey[T]) Source[T] {
	return s.derive(s.orderings, OrderBy{Column: key.Column, Direction: DirectionDESC})
}

func (s *GormSource[T]) derive(base Orderings, next OrderBy) *GormSource[T] {
	orderings := make(Orderings, 0, len(base)+1)
	orderings = append(orderings, base...)
	orderings = append(orderings, next)

	return &GormSource[T]{
		db:        s.db,
		orderings: orderings,
	}
}

// GetSort returns the accumulated orderings that DB will apply to the query.
func (s *GormSource[T]) GetSort() Orderings {
	if s == nil {
		return nil
	}

	return s.orderings
}

// DB validates the accumulated orderings and returns the gorm query with them
// applied. With no orderings accumulated the query is returned untouched.
// Further operations (filtering, materialization, pagination) are up to the
// caller.
func (s *GormSource[T]) DB() (*gorm.DB, error) {
	if len(s.orderings) == 0 {
		return s.db, nil
	}

	err := s.orderings.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot apply orderings: %w", err)
	}

	return s.orderings.Apply(s.db), nil
}

var _ Source[any] = (*GormSource[any])(nil)
