// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kzahedi/goent/discrete"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/SJAndersson/morphological-entropy/paradigm"
)

// classKeySep separates forms inside the class-collapsing key. Forms come
// from tab-separated fields, so they cannot contain the unit separator.
const classKeySep = "\x1f"

// unit is one contributing unit of the contingency distributions: an input
// row in AggregateTokens mode, a distinct form vector in AggregateClasses.
// weights[c] is meaningful only where forms[c] is attested; without a weight
// table every attested cell carries weight 1.
type unit struct {
	forms   []string
	weights []float64
}

// Compute runs the full pairwise conditional-entropy computation over t,
// optionally weighted by w (pass nil for the unweighted variant).
// It is a pure function: deterministic for identical inputs and options,
// and invariant to the order of lexeme rows.
//
// Returns ErrNilTable, ErrInsufficientData, ErrNoWeights, or
// paradigm.ErrDataConsistency when an attested (lexeme, cell) pair has no
// corresponding weight.
//
// Complexity: O(C²×L) time for C cells and L lexemes.
func Compute(t *paradigm.Table, w *paradigm.Weights, opts Options) (*Result, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	n := t.NumCells()
	if n < 2 {
		return nil, fmt.Errorf("entropy: table has %d cell(s): %w", n, ErrInsufficientData)
	}
	if opts.FrequencyAverages && w == nil {
		return nil, ErrNoWeights
	}

	units, err := gatherUnits(t, w, opts.Aggregation)
	if err != nil {
		return nil, err
	}
	if !anyAttested(units) {
		return nil, fmt.Errorf("entropy: no attested forms: %w", ErrInsufficientData)
	}

	// Pairwise matrix, iterated in input column order for reproducible
	// floating-point accumulation. The diagonal stays 0 by convention.
	cond := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			cond.Set(i, j, conditionalEntropy(units, i, j))
		}
	}

	cellH := make([]float64, n)
	for c := 0; c < n; c++ {
		cellH[c] = unconditionalEntropy(units, c)
	}

	res := &Result{
		cells:       t.Cells(),
		cond:        cond,
		cellEntropy: cellH,
	}
	if opts.FrequencyAverages {
		res.rowAvg, res.colAvg, res.global = frequencyAverages(cond, cellFrequencies(units, n))
	} else {
		res.rowAvg, res.colAvg, res.global = plainAverages(cond)
	}

	return res, nil
}

// gatherUnits converts table rows into contributing units, attaching weights
// and applying the configured aggregation. In AggregateClasses mode, rows
// with identical form vectors collapse into the first occurrence; collapsed
// rows must agree on every attested weight.
func gatherUnits(t *paradigm.Table, w *paradigm.Weights, agg Aggregation) ([]unit, error) {
	n := t.NumCells()
	units := make([]unit, 0, t.NumLexemes())
	classIdx := make(map[string]int)

	for r := 0; r < t.NumLexemes(); r++ {
		u := unit{
			forms:   make([]string, n),
			weights: make([]float64, n),
		}
		for c := 0; c < n; c++ {
			u.forms[c] = t.Form(r, c)
			u.weights[c] = 1
			if u.forms[c] == paradigm.Unattested {
				continue
			}
			if w != nil {
				v, ok := w.At(t.Lexeme(r), t.Cell(c))
				if !ok {
					return nil, fmt.Errorf("entropy: lexeme %q, cell %q: attested form has no weight: %w",
						t.Lexeme(r), t.Cell(c), paradigm.ErrDataConsistency)
				}
				u.weights[c] = v
			}
		}

		if agg == AggregateClasses {
			key := strings.Join(u.forms, classKeySep)
			if prev, seen := classIdx[key]; seen {
				if w != nil && !sameWeights(units[prev], u) {
					return nil, fmt.Errorf("entropy: lexeme %q: class weight conflicts with an earlier row of the same class: %w",
						t.Lexeme(r), paradigm.ErrDataConsistency)
				}

				continue
			}
			classIdx[key] = len(units)
		}
		units = append(units, u)
	}

	return units, nil
}

// sameWeights reports whether two units of the same class carry identical
// weights on every attested cell.
func sameWeights(a, b unit) bool {
	for c := range a.forms {
		if a.forms[c] == paradigm.Unattested {
			continue
		}
		if a.weights[c] != b.weights[c] {
			return false
		}
	}

	return true
}

// anyAttested reports whether any unit has at least one attested form.
func anyAttested(units []unit) bool {
	for _, u := range units {
		for _, f := range u.forms {
			if f != paradigm.Unattested {
				return true
			}
		}
	}

	return false
}

// conditionalEntropy computes H(cell_j | cell_i) in bits over the units
// attested in both cells, as H(i,j) − H(i) on the (weighted) joint
// distribution. Degenerate pairs score 0: fewer than two contributors, a
// single observed form on either axis, or zero total weight mass.
//
// Observed forms are enumerated in sorted order so the accumulation order —
// and therefore the exact floating-point result — does not depend on the
// order of input rows.
func conditionalEntropy(units []unit, i, j int) float64 {
	var contributors []unit
	viSet := make(map[string]struct{})
	vjSet := make(map[string]struct{})
	for _, u := range units {
		if u.forms[i] == paradigm.Unattested || u.forms[j] == paradigm.Unattested {
			continue
		}
		contributors = append(contributors, u)
		viSet[u.forms[i]] = struct{}{}
		vjSet[u.forms[j]] = struct{}{}
	}
	if len(contributors) < 2 || len(viSet) < 2 || len(vjSet) < 2 {
		return 0
	}

	vi, iIdx := sortedIndex(viSet)
	vj, jIdx := sortedIndex(vjSet)

	// Joint contingency distribution, row-major over (form_i, form_j).
	joint := make([]float64, len(vi)*len(vj))
	for _, u := range contributors {
		joint[iIdx[u.forms[i]]*len(vj)+jIdx[u.forms[j]]] += u.weights[i]
	}
	total := floats.Sum(joint)
	if total == 0 {
		return 0
	}
	floats.Scale(1/total, joint)

	// Marginal of the conditioning cell: row sums of the joint.
	marginal := make([]float64, len(vi))
	for a := range vi {
		marginal[a] = floats.Sum(joint[a*len(vj) : (a+1)*len(vj)])
	}

	h := discrete.EntropyBase2(joint) - discrete.EntropyBase2(marginal)
	if h < 0 {
		// Rounding guard: H(i,j) ≥ H(i) mathematically.
		h = 0
	}

	return h
}

// unconditionalEntropy computes H(cell_c) in bits over all units attested
// in c, with the same weighting as the contingency distributions.
func unconditionalEntropy(units []unit, c int) float64 {
	counts := make(map[string]float64)
	for _, u := range units {
		if u.forms[c] == paradigm.Unattested {
			continue
		}
		counts[u.forms[c]] += u.weights[c]
	}
	if len(counts) < 2 {
		return 0
	}

	forms := make([]string, 0, len(counts))
	for f := range counts {
		forms = append(forms, f)
	}
	sort.Strings(forms)

	dist := make([]float64, len(forms))
	for k, f := range forms {
		dist[k] = counts[f]
	}
	total := floats.Sum(dist)
	if total == 0 {
		return 0
	}
	floats.Scale(1/total, dist)

	return discrete.EntropyBase2(dist)
}

// cellFrequencies returns f(c) = Σ over units attested in c of the unit's
// weight for c — the per-cell total token frequency in weighted data.
func cellFrequencies(units []unit, n int) []float64 {
	f := make([]float64, n)
	for _, u := range units {
		for c := 0; c < n; c++ {
			if u.forms[c] != paradigm.Unattested {
				f[c] += u.weights[c]
			}
		}
	}

	return f
}

// plainAverages computes E[row], E[col] and the global average as plain
// means over the off-diagonal entries.
func plainAverages(cond *mat.Dense) (rowAvg, colAvg []float64, global float64) {
	n, _ := cond.Dims()
	rowAvg = make([]float64, n)
	colAvg = make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			h := cond.At(i, j)
			rowAvg[i] += h
			colAvg[j] += h
			sum += h
		}
	}
	for k := 0; k < n; k++ {
		rowAvg[k] /= float64(n - 1)
		colAvg[k] /= float64(n - 1)
	}
	global = sum / float64(n*(n-1))

	return rowAvg, colAvg, global
}

// frequencyAverages weights the summaries by per-cell frequency, following
// the frequency-informed variant of the methodology: E[row] for cell i
// weights each target cell j by f(j), E[col] for cell j weights each
// predictor i by f(i), and the global average weights E[col] by f(j).
// A zero frequency mass over the relevant cells yields 0 for that summary.
func frequencyAverages(cond *mat.Dense, f []float64) (rowAvg, colAvg []float64, global float64) {
	n, _ := cond.Dims()
	rowAvg = make([]float64, n)
	colAvg = make([]float64, n)

	for i := 0; i < n; i++ {
		var num, den float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			num += cond.At(i, j) * f[j]
			den += f[j]
		}
		if den > 0 {
			rowAvg[i] = num / den
		}
	}
	for j := 0; j < n; j++ {
		var num, den float64
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			num += cond.At(i, j) * f[i]
			den += f[i]
		}
		if den > 0 {
			colAvg[j] = num / den
		}
	}

	totalF := floats.Sum(f)
	if totalF > 0 {
		for j := 0; j < n; j++ {
			global += colAvg[j] * f[j]
		}
		global /= totalF
	}

	return rowAvg, colAvg, global
}

// sortedIndex converts a value set into a sorted slice plus value→position
// index, fixing the canonical enumeration order of observed forms.
func sortedIndex(set map[string]struct{}) ([]string, map[string]int) {
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	idx := make(map[string]int, len(vals))
	for k, v := range vals {
		idx[v] = k
	}

	return vals, idx
}
