package entropy_test

import (
	"fmt"

	"github.com/SJAndersson/morphological-entropy/entropy"
	"github.com/SJAndersson/morphological-entropy/paradigm"
)

// ExampleCompute runs the unweighted computation over a minimal two-cell
// paradigm where the cells vary independently: conditioning on one cell
// leaves a full bit of uncertainty about the other.
func ExampleCompute() {
	table, _ := paradigm.NewTable(
		[]string{"nomSg", "nomPl"},
		[]string{"class1", "class2", "class3", "class4"},
		[][]string{
			{"-a", "-ae"},
			{"-a", "-i"},
			{"-us", "-ae"},
			{"-us", "-i"},
		})

	res, _ := entropy.Compute(table, nil, entropy.DefaultOptions())
	fmt.Printf("H(nomPl|nomSg) = %.4f bits\n", res.H(0, 1))
	fmt.Printf("H(paradigm)    = %.4f bits\n", res.Global())
	// Output:
	// H(nomPl|nomSg) = 1.0000 bits
	// H(paradigm)    = 1.0000 bits
}

// ExampleCompute_weighted supplies declension-class type counts: the heavy
// first class dominates the contingency mass and lowers the entropy.
func ExampleCompute_weighted() {
	cells := []string{"nomSg", "nomPl"}
	classes := []string{"class1", "class2", "class3", "class4"}
	table, _ := paradigm.NewTable(cells, classes, [][]string{
		{"-a", "-ae"},
		{"-a", "-i"},
		{"-us", "-ae"},
		{"-us", "-i"},
	})
	weights, _ := paradigm.NewWeights(cells, classes,
		[][]float64{{10, 10}, {1, 1}, {1, 1}, {1, 1}},
		[][]bool{{true, true}, {true, true}, {true, true}, {true, true}})

	res, _ := entropy.Compute(table, weights, entropy.DefaultOptions())
	fmt.Printf("H(nomPl|nomSg) = %.4f bits\n", res.H(0, 1))
	// Output:
	// H(nomPl|nomSg) = 0.5257 bits
}
