// SPDX-License-Identifier: MIT

package paradigm

import "fmt"

// NewTable constructs an immutable Table from ordered cell identifiers,
// ordered lexeme identifiers, and one row of forms per lexeme.
// The input slices are deep-copied; forms[row] must have exactly len(cells)
// entries, with Unattested ("") marking missing forms.
//
// Returns ErrEmptyTable, ErrRaggedRow, ErrEmptyIdentifier, ErrDuplicateCell
// or ErrDuplicateLexeme on malformed input; row/column context is attached
// via error wrapping.
//
// Complexity: O(L×C) time and memory.
func NewTable(cells, lexemes []string, forms [][]string) (*Table, error) {
	if len(cells) == 0 || len(lexemes) == 0 {
		return nil, ErrEmptyTable
	}
	if len(forms) != len(lexemes) {
		return nil, fmt.Errorf("paradigm: %d lexemes but %d form rows: %w", len(lexemes), len(forms), ErrRaggedRow)
	}

	cellIdx, err := indexIdentifiers(cells, ErrDuplicateCell)
	if err != nil {
		return nil, err
	}
	lexIdx, err := indexIdentifiers(lexemes, ErrDuplicateLexeme)
	if err != nil {
		return nil, err
	}

	// Deep copy to prevent external mutation after construction.
	rows := make([][]string, len(forms))
	for r, row := range forms {
		if len(row) != len(cells) {
			return nil, fmt.Errorf("paradigm: lexeme %q has %d forms, want %d: %w",
				lexemes[r], len(row), len(cells), ErrRaggedRow)
		}
		rows[r] = make([]string, len(cells))
		copy(rows[r], row)
	}

	t := &Table{
		cells:   copyStrings(cells),
		lexemes: copyStrings(lexemes),
		forms:   rows,
		cellIdx: cellIdx,
		lexIdx:  lexIdx,
	}

	return t, nil
}

// NumCells returns the number of paradigm cells (columns).
func (t *Table) NumCells() int { return len(t.cells) }

// NumLexemes returns the number of lexeme rows.
func (t *Table) NumLexemes() int { return len(t.lexemes) }

// Cells returns a copy of the ordered cell identifiers.
func (t *Table) Cells() []string { return copyStrings(t.cells) }

// Lexemes returns a copy of the ordered lexeme identifiers.
func (t *Table) Lexemes() []string { return copyStrings(t.lexemes) }

// Cell returns the identifier of the cell at column col.
func (t *Table) Cell(col int) string { return t.cells[col] }

// Lexeme returns the identifier of the lexeme at row.
func (t *Table) Lexeme(row int) string { return t.lexemes[row] }

// Form returns the surface form at (row, col), or Unattested.
func (t *Table) Form(row, col int) string { return t.forms[row][col] }

// Attested reports whether the cell at (row, col) has a recorded form.
func (t *Table) Attested(row, col int) bool { return t.forms[row][col] != Unattested }

// CellIndex returns the column index of a cell identifier.
func (t *Table) CellIndex(id string) (int, bool) {
	i, ok := t.cellIdx[id]

	return i, ok
}

// LexemeIndex returns the row index of a lexeme identifier.
func (t *Table) LexemeIndex(id string) (int, bool) {
	i, ok := t.lexIdx[id]

	return i, ok
}

// indexIdentifiers builds an identifier→index map, rejecting empty and
// duplicate identifiers with the supplied sentinel.
func indexIdentifiers(ids []string, dup error) (map[string]int, error) {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, ErrEmptyIdentifier
		}
		if _, seen := idx[id]; seen {
			return nil, fmt.Errorf("paradigm: identifier %q: %w", id, dup)
		}
		idx[id] = i
	}

	return idx, nil
}

// copyStrings returns a fresh copy of a string slice.
func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)

	return out
}
