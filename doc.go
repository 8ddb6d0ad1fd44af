package gosorter

// Package gosorter composes ordered, prioritized sort keys into a single
// multi-level ordering applied to in-memory slices or lazy GORM queries.
//
// Overview
//
// gosorter lets callers express "sort by A asc, then B desc, then C asc,
// skipping any key whose direction is unset" without hand-writing nested
// ordering calls, and lets sort specifications be assembled dynamically from
// optional request parameters rather than hard-coded.
//
// Key concepts
//   - SortKey: one ordering level, a key (column and/or selector) plus a
//     direction. Keys without a definite direction are skipped on append.
//   - Sorter: accumulates keys in priority order and applies them to a data
//     source, producing a stable lexicographic multi-key ordering.
//   - Source: the four-primitive ordering protocol implemented by SliceSource
//     (finite in-memory sequences) and GormSource (lazy GORM queries).
//
// See README for examples and usage details.
