// Package tsv reads paradigm tables and weight tables from tab-separated
// text and writes conditional-entropy results back out, in the table layout
// used by the Ackerman & Malouf (2013) replication scripts.
//
// Input format (UTF-8, no embedded tabs or newlines in values):
//
//	H(col|row)	nomSg	genSg	nomPl
//	class1	-a	-ae	-ae
//	class2	-us	-i	-i
//
// The first header field is a corner label and is ignored; the remaining
// header fields are paradigm cell identifiers. Each following row starts
// with a lexeme (or declension class) identifier followed by one form per
// cell; an empty field marks an unattested cell. A weight file has the same
// shape with non-negative numeric fields.
//
// Output format: a square matrix with entry (row r, column c) = H(c|r),
// "--" on the diagonal, a trailing E[row] column, a trailing E[col] row,
// and the global average conditional entropy in the bottom-right corner.
//
// Errors: ErrParse for malformed framing (wrapped with the offending row
// number); identifier and value problems surface the paradigm package's
// sentinels.
package tsv
