package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ThallesFelipe/dckp-matheuristics/instance"
	"github.com/ThallesFelipe/dckp-matheuristics/localsearch"
	"github.com/ThallesFelipe/dckp-matheuristics/solution"
)

func TestHillClimbing_ConflictBlockedLocalOptimum(t *testing.T) {
	// profits=[10,9,8], weights=[5,5,5], conflict (0,1) (0-based).
	// Starting from {0,2} (profit 18), no 1-1 swap improves: the only
	// unselected item is 1, which conflicts with 0, and swapping it in for
	// 0 drops the profit to 17.
	inst, err := instance.New(10, []int{10, 9, 8}, []int{5, 5, 5}, [][2]int{{0, 1}})
	require.NoError(t, err)

	start := solution.New()
	start.Add(0, 10, 5)
	start.Add(2, 8, 5)

	hc := localsearch.NewHillClimbing(inst)
	result := hc.Improve(start, 100)

	require.Equal(t, []int{0, 2}, result.Items())
	require.Equal(t, 18, result.TotalProfit)
	require.Equal(t, "HillClimbing", result.MethodName)
}

func TestHillClimbing_AtLocalOptimumMakesNoMoves(t *testing.T) {
	inst, err := instance.New(5, []int{10}, []int{5}, nil)
	require.NoError(t, err)

	start := solution.New()
	start.Add(0, 10, 5)

	hc := localsearch.NewHillClimbing(inst)
	result := hc.Improve(start, 100)

	require.Equal(t, start.Items(), result.Items())
	require.Equal(t, start.TotalProfit, result.TotalProfit)
}

func TestHillClimbing_DoesNotMutateCaller(t *testing.T) {
	inst, err := instance.New(10, []int{4, 6}, []int{3, 4}, nil)
	require.NoError(t, err)

	start := solution.New()
	start.Add(0, 4, 3)
	startItems := start.Items()

	hc := localsearch.NewHillClimbing(inst)
	_ = hc.Improve(start, 100)

	require.Equal(t, startItems, start.Items())
}

func TestVND_ImprovesAtLeastAsMuchAsHillClimbing(t *testing.T) {
	// profits=[6,6,10,1], weights=[5,5,9,1], conflict (2,3) 0-based.
	inst, err := instance.New(10, []int{6, 6, 10, 1}, []int{5, 5, 9, 1}, [][2]int{{2, 3}})
	require.NoError(t, err)

	start := solution.New()
	start.Add(0, 6, 5)
	start.Add(1, 6, 5)

	hc := localsearch.NewHillClimbing(inst)
	hcResult := hc.Improve(start, 100)

	vnd := localsearch.NewVND(inst)
	vndResult := vnd.Improve(start, 100)

	require.GreaterOrEqual(t, vndResult.TotalProfit, hcResult.TotalProfit)
	require.Equal(t, "VND", vndResult.MethodName)
}

func TestVND_SkipsN3WhenFewerThanTwoSelected(t *testing.T) {
	inst, err := instance.New(10, []int{10}, []int{5}, nil)
	require.NoError(t, err)

	start := solution.New()
	start.Add(0, 10, 5)

	vnd := localsearch.NewVND(inst)
	result := vnd.Improve(start, 100)

	require.Equal(t, []int{0}, result.Items())
}

func TestVND_Swap21EscapesWhereSwap11Cannot(t *testing.T) {
	// One item (j) whose profit strictly exceeds the sum of two weaker
	// selected items, reachable only by a 2-for-1 exchange.
	inst, err := instance.New(10, []int{3, 3, 10}, []int{4, 4, 8}, nil)
	require.NoError(t, err)

	start := solution.New()
	start.Add(0, 3, 4)
	start.Add(1, 3, 4)

	vnd := localsearch.NewVND(inst)
	result := vnd.Improve(start, 100)

	require.Equal(t, []int{2}, result.Items())
	require.Equal(t, 10, result.TotalProfit)
}
