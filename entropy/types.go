// SPDX-License-Identifier: MIT

// Package entropy: options, sentinel errors and the Result type for
// conditional-entropy computation over paradigm tables.
package entropy

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for the entropy engine.
var (
	// ErrNilTable indicates a nil paradigm table was passed to Compute.
	ErrNilTable = errors.New("entropy: paradigm table is nil")

	// ErrInsufficientData indicates the table cannot support the
	// computation: fewer than two cells, or no lexeme with an attested form.
	ErrInsufficientData = errors.New("entropy: table needs at least two cells and one attested form")

	// ErrNoWeights indicates FrequencyAverages was requested without a
	// weight table to derive cell frequencies from.
	ErrNoWeights = errors.New("entropy: frequency-weighted averages require a weight table")
)

// Aggregation selects the contributing unit of the contingency distribution.
type Aggregation int

const (
	// AggregateTokens counts every input row once. This is the Ackerman &
	// Malouf setting: rows are declension classes and, in weighted mode,
	// the weight is the class type count.
	AggregateTokens Aggregation = iota

	// AggregateClasses collapses rows with identical form vectors across
	// all cells into a single class contributing once. In weighted mode the
	// collapsed rows must carry identical weights.
	AggregateClasses
)

// Defaults for Options; DefaultOptions is the single source of truth used
// by callers that want the plain A&M computation.
const (
	// DefaultAggregation counts each input row once.
	DefaultAggregation = AggregateTokens

	// DefaultFrequencyAverages keeps summary averages as plain means, so the
	// global average is the unweighted mean of all off-diagonal entries.
	DefaultFrequencyAverages = false
)

// Options configures the entropy engine.
//
// Fields:
//   - Aggregation       — contributing unit: AggregateTokens or AggregateClasses.
//   - FrequencyAverages — weight row/column/global averages by per-cell total
//     frequency f(c) = Σ_l weight(l,c); requires a weight table.
type Options struct {
	Aggregation       Aggregation
	FrequencyAverages bool
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Aggregation:       DefaultAggregation,
		FrequencyAverages: DefaultFrequencyAverages,
	}
}

// Result holds the conditional-entropy matrix and its summaries for one
// computation. It is immutable; accessors return copies of internal state.
type Result struct {
	cells       []string
	cond        *mat.Dense // cond.At(i, j) = H(j|i); diagonal fixed at 0
	cellEntropy []float64  // unconditional H(c) per cell
	rowAvg      []float64  // E[row]: average over targets j ≠ i of H(j|i)
	colAvg      []float64  // E[col]: average over predictors i ≠ j of H(j|i)
	global      float64    // average conditional entropy of the paradigm
}

// Cells returns a copy of the ordered cell identifiers the matrix axes use.
func (r *Result) Cells() []string {
	out := make([]string, len(r.cells))
	copy(out, r.cells)

	return out
}

// NumCells returns the matrix dimension.
func (r *Result) NumCells() int { return len(r.cells) }

// H returns the conditional entropy H(cell_j | cell_i) in bits.
// The diagonal is fixed at 0 and excluded from all averages.
func (r *Result) H(i, j int) float64 { return r.cond.At(i, j) }

// Matrix returns a copy of the full conditional-entropy matrix, with
// entry (i, j) = H(cell_j | cell_i).
func (r *Result) Matrix() *mat.Dense { return mat.DenseCopyOf(r.cond) }

// CellEntropy returns the unconditional entropy H(cell_i) in bits.
func (r *Result) CellEntropy(i int) float64 { return r.cellEntropy[i] }

// RowAverage returns E[row] for cell i: the average uncertainty left about
// a randomly chosen other cell once cell i's form is known.
func (r *Result) RowAverage(i int) float64 { return r.rowAvg[i] }

// ColAverage returns E[col] for cell j: the average uncertainty in guessing
// cell j's form from a randomly chosen other cell.
func (r *Result) ColAverage(j int) float64 { return r.colAvg[j] }

// Global returns the average conditional entropy of the whole paradigm.
func (r *Result) Global() float64 { return r.global }
