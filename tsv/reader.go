package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SJAndersson/morphological-entropy/paradigm"
)

// Delimiter separates fields of the input and output tables.
const Delimiter = "\t"

// Sentinel errors for input framing.
var (
	// ErrParse indicates malformed input: a missing header, a row with the
	// wrong number of fields, or no data rows at all.
	ErrParse = errors.New("tsv: malformed paradigm input")
)

// ReadTable parses a tab-separated paradigm table. The header row carries a
// corner label (ignored) followed by the cell identifiers; each data row
// carries a lexeme identifier followed by one form per cell, with an empty
// field marking an unattested cell.
//
// Returns ErrParse (wrapped with the 1-based row number) on framing
// problems, or a paradigm sentinel on identifier violations.
func ReadTable(r io.Reader) (*paradigm.Table, error) {
	cells, lexemes, fields, err := readGrid(r)
	if err != nil {
		return nil, err
	}

	return paradigm.NewTable(cells, lexemes, fields)
}

// ReadWeights parses a tab-separated weight table of the same shape as a
// paradigm table: numeric non-negative fields, empty for "no weight".
//
// Returns ErrParse on framing problems; an unparseable or negative numeric
// field surfaces paradigm.ErrInvalidValue with row/cell context.
func ReadWeights(r io.Reader) (*paradigm.Weights, error) {
	cells, lexemes, fields, err := readGrid(r)
	if err != nil {
		return nil, err
	}

	values := make([][]float64, len(fields))
	present := make([][]bool, len(fields))
	for i, row := range fields {
		values[i] = make([]float64, len(row))
		present[i] = make([]bool, len(row))
		for c, field := range row {
			if field == "" {
				continue
			}
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, fmt.Errorf("tsv: lexeme %q, cell %q: unparseable weight %q: %w",
					lexemes[i], cells[c], field, paradigm.ErrInvalidValue)
			}
			values[i][c] = v
			present[i][c] = true
		}
	}

	return paradigm.NewWeights(cells, lexemes, values, present)
}

// readGrid reads the shared framing of both file kinds: a header row, then
// one labelled row per lexeme, every row with exactly len(header) fields.
func readGrid(r io.Reader) (cells, lexemes []string, fields [][]string, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		if serr := sc.Err(); serr != nil {
			return nil, nil, nil, fmt.Errorf("tsv: %v: %w", serr, ErrParse)
		}

		return nil, nil, nil, fmt.Errorf("tsv: missing header row: %w", ErrParse)
	}
	header := strings.Split(sc.Text(), Delimiter)
	if len(header) < 2 {
		return nil, nil, nil, fmt.Errorf("tsv: header row has no cell identifiers: %w", ErrParse)
	}
	cells = header[1:]

	rowNum := 1
	for sc.Scan() {
		rowNum++
		line := sc.Text()
		if line == "" {
			// Tolerate blank padding lines, matching the reference scripts'
			// handling of trailing newlines.
			continue
		}
		row := strings.Split(line, Delimiter)
		if len(row) != len(header) {
			return nil, nil, nil, fmt.Errorf("tsv: row %d: %d fields, want %d: %w",
				rowNum, len(row), len(header), ErrParse)
		}
		lexemes = append(lexemes, row[0])
		fields = append(fields, row[1:])
	}
	if serr := sc.Err(); serr != nil {
		return nil, nil, nil, fmt.Errorf("tsv: %v: %w", serr, ErrParse)
	}
	if len(lexemes) == 0 {
		return nil, nil, nil, fmt.Errorf("tsv: no data rows: %w", ErrParse)
	}

	return cells, lexemes, fields, nil
}
