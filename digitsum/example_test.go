package digitsum_test

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/digitsum"
)

// ExampleOracle_Sum shows that the sign of the argument is ignored.
func ExampleOracle_Sum() {
	o := digitsum.New()
	fmt.Println(o.Sum(1234), o.Sum(-1234), o.Sum(5))
	// Output:
	// 10 10 5
}
