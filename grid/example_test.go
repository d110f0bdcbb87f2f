package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazesolve/grid"
)

// ExampleNeighbors lists open neighbors in up, down, left, right order.
//
//	- - -
//	@ - -
//	- @ -
func ExampleNeighbors() {
	g, _ := grid.New([][]bool{
		{true, true, true},
		{false, true, true},
		{true, false, true},
	})
	fmt.Println(grid.Neighbors(g, grid.Cell{Row: 1, Col: 1}))
	// Output:
	// [r0c1 r1c2]
}
