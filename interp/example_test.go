package interp_test

import (
	"fmt"

	"github.com/cwbudde/algo-ebl/interp"
)

func ExampleBracket() {
	grid := []float64{0, 0.01, 0.03, 0.1}
	i := interp.Bracket(grid, 0.05)
	fmt.Println(i, grid[i-1], grid[i])

	// Output:
	// 3 0.03 0.1
}

func ExampleCurve() {
	c, err := interp.NewCurve([]float64{1, 2, 4}, []float64{0, 1, 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Eval(3), c.EvalAll([]float64{1, 1.5}))

	// Output:
	// 2 [0 0.5]
}
