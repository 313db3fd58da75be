package tsv

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/SJAndersson/morphological-entropy/entropy"
)

// Output layout constants, matching Table 2 of Ackerman & Malouf (2013).
const (
	// CornerLabel heads the output table: rows condition, columns are
	// conditioned, so the entry at (row r, column c) reads H(c|r).
	CornerLabel = "H(col|row)"

	// DiagonalMark fills the excluded diagonal cells.
	DiagonalMark = "--"

	// RowAvgLabel and ColAvgLabel head the trailing averages.
	RowAvgLabel = "E[row]"
	ColAvgLabel = "E[col]"

	// DefaultPrecision is the number of fractional digits written.
	DefaultPrecision = 4
)

// ErrBadPrecision indicates a negative precision in WriterOptions.
var ErrBadPrecision = errors.New("tsv: precision must be non-negative")

// WriterOptions configures result serialization.
type WriterOptions struct {
	// Precision is the fixed number of fractional digits, for reproducible
	// output diffs.
	Precision int
}

// DefaultWriterOptions returns WriterOptions with Precision=DefaultPrecision.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{Precision: DefaultPrecision}
}

// WriteResult serializes a computed Result as a tab-separated table: header
// and row labels from the input cell identifiers, "--" on the diagonal, a
// trailing E[row] column, and a closing E[col] row whose last field is the
// global average conditional entropy of the paradigm.
func WriteResult(w io.Writer, res *entropy.Result, opts WriterOptions) error {
	if opts.Precision < 0 {
		return ErrBadPrecision
	}
	bw := bufio.NewWriter(w)
	cells := res.Cells()
	n := len(cells)
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', opts.Precision, 64) }

	// Header row.
	bw.WriteString(CornerLabel)
	for _, c := range cells {
		bw.WriteString(Delimiter)
		bw.WriteString(c)
	}
	bw.WriteString(Delimiter)
	bw.WriteString(RowAvgLabel)
	bw.WriteByte('\n')

	// One row per conditioning cell.
	for i := 0; i < n; i++ {
		bw.WriteString(cells[i])
		for j := 0; j < n; j++ {
			bw.WriteString(Delimiter)
			if i == j {
				bw.WriteString(DiagonalMark)
			} else {
				bw.WriteString(num(res.H(i, j)))
			}
		}
		bw.WriteString(Delimiter)
		bw.WriteString(num(res.RowAverage(i)))
		bw.WriteByte('\n')
	}

	// Closing averages row; the corner holds the global average.
	bw.WriteString(ColAvgLabel)
	for j := 0; j < n; j++ {
		bw.WriteString(Delimiter)
		bw.WriteString(num(res.ColAverage(j)))
	}
	bw.WriteString(Delimiter)
	bw.WriteString(num(res.Global()))
	bw.WriteByte('\n')

	return bw.Flush()
}
