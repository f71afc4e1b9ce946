package kernel_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpack/kernel"
)

// ExampleClassify walks the role taxonomy for diagonal step 1.
func ExampleClassify() {
	for _, pos := range [][2]int{{1, 1}, {1, 3}, {3, 1}, {2, 2}, {0, 2}} {
		fmt.Println(kernel.Classify(pos[0], pos[1], 1))
	}
	// Output:
	// lu
	// top
	// left
	// inner
	// idle
}

// ExampleStreamLen shows the per-direction factor-stream size for the
// default tiling (B=16, chunk=8).
func ExampleStreamLen() {
	fmt.Println(kernel.StreamLen(16, 8))
	// Output:
	// 192
}
