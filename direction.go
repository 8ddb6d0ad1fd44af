package gosorter

// Direction defines the sort direction for a single ordering level.
//
// The zero value DirectionUnset means "no definite direction". Keys carrying
// it are silently skipped by the sorter, which makes it safe to build keys
// from optional request parameters and append them unconditionally.
type Direction string

const (
	DirectionUnset Direction = ""
	DirectionASC   Direction = "ASC"
	DirectionDESC  Direction = "DESC"
)

// Valid reports whether the direction is definite (ASC or DESC).
func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}
