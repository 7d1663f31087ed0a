// Package localsearch_test provides a runnable, deterministic example
// showing VND escaping a 1-1 swap local optimum via its Swap(2-1)
// neighbourhood.
package localsearch_test

import (
	"fmt"

	"github.com/ThallesFelipe/dckp-matheuristics/instance"
	"github.com/ThallesFelipe/dckp-matheuristics/localsearch"
	"github.com/ThallesFelipe/dckp-matheuristics/solution"
)

// Example_vndEscapesSwap11LocalOptimum starts from two items whose
// combined weight exactly matches a single higher-profit item. No 1-1
// swap can reach that item; VND's Swap(2-1) neighbourhood can.
func Example_vndEscapesSwap11LocalOptimum() {
	inst, err := instance.New(10, []int{3, 3, 10}, []int{4, 4, 8}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	start := solution.New()
	start.Add(0, 3, 4)
	start.Add(1, 3, 4)

	result := localsearch.NewVND(inst).Improve(start, 100)

	fmt.Println(result.Items())
	fmt.Println(result.TotalProfit)
	fmt.Println(result.MethodName)

	// Output:
	// [2]
	// 10
	// VND
}
