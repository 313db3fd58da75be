// Package entropy computes pairwise conditional entropy over morphological
// paradigm tables, following the low-conditional-entropy-conjecture
// methodology of Ackerman & Malouf (2013).
//
// What:
//
//	For every ordered pair of paradigm cells (i, j), i ≠ j, the engine
//	estimates H(j|i): the expected uncertainty, in bits, about cell j's
//	surface form given knowledge of cell i's form. Probabilities come from
//	a contingency distribution over the lexemes attested in both cells,
//	either with unit counts or with supplied frequency weights. The full
//	n×n matrix is accompanied by per-cell unconditional entropies, row and
//	column averages, and the single global average conditional entropy —
//	the quantity the low-entropy conjecture is stated over.
//
// Why:
//
//   - Inflectional systems look wildly complex cell-by-cell, yet speakers
//     solve the Paradigm Cell Filling Problem with ease. Ackerman & Malouf
//     argue this is because the implicative structure among cells keeps
//     the average conditional entropy low; this package measures that.
//
// How (per ordered pair i → j):
//
//  1. Restrict to contributing units attested in both i and j; a lexeme
//     missing some other cell k still contributes to pairs not involving k.
//  2. Build the joint distribution over (form_i, form_j), adding count 1
//     per unit or the unit's weight in weighted mode.
//  3. H(j|i) = H(i,j) − H(i), base 2, with 0·log2(0) = 0.
//  4. Degenerate pairs (fewer than two units, zero variance in i or j, or
//     zero total weight mass) score 0 — a legitimate outcome, not an error.
//
// Determinism:
//
//	Observed forms are enumerated in sorted order and pairs in input column
//	order, so results do not depend on lexeme row order, and permuting the
//	input columns permutes the output identically.
//
// Options:
//
//   - Aggregation: AggregateTokens (each row contributes once — the A&M
//     setting where rows are declension classes and weights are class type
//     counts) or AggregateClasses (rows with identical form vectors
//     collapse into one class contributing once).
//   - FrequencyAverages: weight the row/column/global averages by per-cell
//     total frequency instead of taking plain means (the frequency-informed
//     variant of the methodology). Requires a weight table.
//
// Errors (sentinel):
//
//   - ErrNilTable          — nil paradigm table.
//   - ErrInsufficientData  — fewer than two cells, or no attested form.
//   - ErrNoWeights         — FrequencyAverages without a weight table.
//   - paradigm.ErrDataConsistency — weight table misaligned with the table.
//   - paradigm.ErrInvalidValue    — carried through from weight validation.
//
// Complexity: O(C² × L) time, O(V²) transient memory per pair for V
// observed forms; the result matrix is O(C²).
package entropy
