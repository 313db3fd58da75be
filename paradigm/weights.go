// SPDX-License-Identifier: MIT

package paradigm

import (
	"fmt"
	"math"
)

// NewWeights constructs an immutable Weights table. values[row][col] is
// meaningful only where present[row][col] is true; absent entries let a
// weight file leave unattested cells blank.
//
// Every present value must be finite and non-negative (ErrInvalidValue
// otherwise, wrapped with lexeme/cell context). Shape and identifier rules
// match NewTable.
//
// Complexity: O(L×C) time and memory.
func NewWeights(cells, lexemes []string, values [][]float64, present [][]bool) (*Weights, error) {
	if len(cells) == 0 || len(lexemes) == 0 {
		return nil, ErrEmptyTable
	}
	if len(values) != len(lexemes) || len(present) != len(lexemes) {
		return nil, fmt.Errorf("paradigm: %d lexemes but %d/%d weight rows: %w",
			len(lexemes), len(values), len(present), ErrRaggedRow)
	}

	cellIdx, err := indexIdentifiers(cells, ErrDuplicateCell)
	if err != nil {
		return nil, err
	}
	lexIdx, err := indexIdentifiers(lexemes, ErrDuplicateLexeme)
	if err != nil {
		return nil, err
	}

	vals := make([][]float64, len(lexemes))
	mask := make([][]bool, len(lexemes))
	for r := range lexemes {
		if len(values[r]) != len(cells) || len(present[r]) != len(cells) {
			return nil, fmt.Errorf("paradigm: lexeme %q weight row length mismatch: %w",
				lexemes[r], ErrRaggedRow)
		}
		vals[r] = make([]float64, len(cells))
		mask[r] = make([]bool, len(cells))
		copy(vals[r], values[r])
		copy(mask[r], present[r])
		for c := range cells {
			if !mask[r][c] {
				continue
			}
			if v := vals[r][c]; v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("paradigm: lexeme %q, cell %q: weight %v: %w",
					lexemes[r], cells[c], v, ErrInvalidValue)
			}
		}
	}

	w := &Weights{
		cells:   copyStrings(cells),
		lexemes: copyStrings(lexemes),
		values:  vals,
		present: mask,
		cellIdx: cellIdx,
		lexIdx:  lexIdx,
	}

	return w, nil
}

// Cells returns a copy of the ordered cell identifiers.
func (w *Weights) Cells() []string { return copyStrings(w.cells) }

// Lexemes returns a copy of the ordered lexeme identifiers.
func (w *Weights) Lexemes() []string { return copyStrings(w.lexemes) }

// At returns the weight recorded for (lexeme, cell), looked up by
// identifier. The second return is false when the pair carries no weight,
// either because an identifier is unknown or the entry was left blank.
func (w *Weights) At(lexeme, cell string) (float64, bool) {
	r, ok := w.lexIdx[lexeme]
	if !ok {
		return 0, false
	}
	c, ok := w.cellIdx[cell]
	if !ok {
		return 0, false
	}
	if !w.present[r][c] {
		return 0, false
	}

	return w.values[r][c], true
}
