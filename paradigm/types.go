// SPDX-License-Identifier: MIT

// Package paradigm: core types and sentinel errors for paradigm data.
package paradigm

import "errors"

// Sentinel errors for paradigm data construction and alignment.
// Algorithms and loaders MUST return these sentinels (wrapped with context
// where useful) and callers match them via errors.Is.
var (
	// ErrEmptyTable indicates the input has no cells or no lexeme rows.
	ErrEmptyTable = errors.New("paradigm: table must have at least one cell and one lexeme")

	// ErrRaggedRow indicates a row whose length differs from the cell count.
	ErrRaggedRow = errors.New("paradigm: row length does not match cell count")

	// ErrDuplicateCell indicates a repeated cell identifier.
	ErrDuplicateCell = errors.New("paradigm: duplicate cell identifier")

	// ErrDuplicateLexeme indicates a repeated lexeme identifier.
	ErrDuplicateLexeme = errors.New("paradigm: duplicate lexeme identifier")

	// ErrEmptyIdentifier indicates an empty cell or lexeme identifier.
	ErrEmptyIdentifier = errors.New("paradigm: cell and lexeme identifiers must be non-empty")

	// ErrInvalidValue indicates a weight that is negative, NaN or ±Inf.
	ErrInvalidValue = errors.New("paradigm: weight must be a finite non-negative number")

	// ErrDataConsistency indicates a weight table that does not cover every
	// attested (lexeme, cell) pair of the paradigm table it accompanies.
	ErrDataConsistency = errors.New("paradigm: weight table does not cover the paradigm table")
)

// Unattested is the agreed marker for a paradigm cell with no recorded form.
const Unattested = ""

// Table is an immutable paradigm table: ordered cells (columns), ordered
// lexemes (rows), and a surface form (or Unattested) per pair.
type Table struct {
	cells   []string
	lexemes []string
	forms   [][]string // forms[row][col]; Unattested marks a missing form
	cellIdx map[string]int
	lexIdx  map[string]int
}

// Weights is an immutable parallel weight table: a non-negative frequency or
// type count per (lexeme, cell) pair, aligned by identifier rather than by
// position, so row/column order may differ from the paradigm table's.
type Weights struct {
	cells   []string
	lexemes []string
	values  [][]float64 // values[row][col], meaningful where present[row][col]
	present [][]bool
	cellIdx map[string]int
	lexIdx  map[string]int
}
