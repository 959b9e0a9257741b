package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/copent/matrix"
)

// ExampleHStack demonstrates joining the variables of the same observations.
func ExampleHStack() {
	x, _ := matrix.NewColumn([]float64{1, 2, 3})
	y, _ := matrix.NewColumn([]float64{10, 20, 30})

	xy, err := matrix.HStack(x, y)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(xy)

	// Output:
	// [1, 10]
	// [2, 20]
	// [3, 30]
}

// ExampleDense_SliceRows shows the copying window used for lagged series.
func ExampleDense_SliceRows() {
	x, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 5}, {10, 10}})

	tail, _ := x.SliceRows(1, 3)
	fmt.Print(tail)

	// Output:
	// [2, 5]
	// [10, 10]
}
