package torus_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpack/torus"
)

// ExampleFIFO shows the ordering contract: values leave in the exact
// order they entered.
func ExampleFIFO() {
	l := torus.NewFIFO()
	_ = l.Send(1.5)
	_ = l.Send(2.5)
	v, _ := l.Recv()
	fmt.Println(v)
	v, _ = l.Recv()
	fmt.Println(v)
	// Output:
	// 1.5
	// 2.5
}

// ExampleDirection_Opposite shows how a link is named from both ends.
func ExampleDirection_Opposite() {
	fmt.Println(torus.North.Opposite())
	fmt.Println(torus.East.Opposite())
	// Output:
	// south
	// west
}
