// Package morphentropy is the root of a small toolkit for measuring the
// implicative structure of inflectional morphology: how much does knowing
// one paradigm cell's form tell you about another's?
//
// The computation follows Ackerman & Malouf (2013), "Morphological
// Organization: The low conditional entropy conjecture" (Language 89(3)):
// for every ordered pair of paradigm cells (i, j) it estimates the
// conditional entropy H(j|i) in bits from a contingency distribution over
// lexemes (or declension classes), optionally weighted by type or token
// frequencies, then averages the off-diagonal matrix into the single
// paradigm-level statistic the conjecture is stated over.
//
// Subpackages:
//
//	paradigm/       — immutable paradigm Table and parallel Weights data model
//	entropy/        — the pairwise conditional-entropy engine and its summaries
//	tsv/            — tab-separated loader and result writer
//	cmd/parentropy/ — the command-line front end
//
// Everything is a deterministic, single-pass, in-memory batch computation:
// load, compute, write, exit.
package morphentropy
