// Package paradigm models morphological paradigm data: a table of surface
// forms (lexemes × paradigm cells) and an optional parallel table of
// frequency weights.
//
// What:
//
//   - Table holds an ordered set of paradigm cells (columns) and lexemes
//     (rows); Form(row, col) is a surface form or the empty string for an
//     unattested cell.
//   - Weights holds a non-negative frequency or type-count per (lexeme,
//     cell) pair, keyed by the same identifiers as the Table it accompanies.
//   - Both are deep-copied on construction and immutable afterwards.
//
// Why:
//
//   - Conditional-entropy analysis of inflectional systems (Ackerman &
//     Malouf 2013) operates on exactly this shape of data: rows are lexemes
//     or declension classes, columns are morphosyntactic cells.
//   - Keeping validation here lets the entropy engine assume a well-formed,
//     identifier-addressable table.
//
// Errors:
//
//   - ErrEmptyTable: no cells or no lexeme rows.
//   - ErrRaggedRow: a row's length differs from the cell count.
//   - ErrDuplicateCell / ErrDuplicateLexeme: repeated identifiers.
//   - ErrInvalidValue: a weight is negative, NaN or ±Inf.
//
// Unattested cells are represented by the empty string (the agreed marker
// in the tab-separated input format).
package paradigm
