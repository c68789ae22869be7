package visibility_test

import (
	"fmt"

	"github.com/katalvlaran/delve/tilegrid"
	"github.com/katalvlaran/delve/visibility"
)

// ExampleVisibility_RenderFOV shows a pillar casting a shadow across a
// small room.
func ExampleVisibility_RenderFOV() {
	g, _ := tilegrid.FromRows([][]int{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1},
	})
	v, _ := visibility.New(g)

	rep := v.VisibleInRadius(5, 2, 6)
	fmt.Println(v.RenderFOV(5, 2, 6))
	fmt.Println("visible:", rep.Count, "walls:", len(rep.BlockedBy))
	fmt.Println("sees (1,2):", v.HasLineOfSight(5, 2, 1, 2))
	// Output:
	// #######
	// #.....#
	//    #.@#
	// #.....#
	// #######
	// visible: 32 walls: 20
	// sees (1,2): false
}
