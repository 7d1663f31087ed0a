package constructive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ThallesFelipe/dckp-matheuristics/constructive"
	"github.com/ThallesFelipe/dckp-matheuristics/instance"
)

func TestGreedy_MaxProfit_CapacityTight(t *testing.T) {
	inst, err := instance.New(5, []int{4, 3, 3}, []int{3, 2, 2}, nil)
	require.NoError(t, err)

	g := constructive.NewGreedy(inst)
	sol := g.Construct(constructive.MaxProfit)

	require.Equal(t, []int{0, 1}, sol.Items())
	require.Equal(t, 7, sol.TotalProfit)
	require.Equal(t, 5, sol.TotalWeight)
	require.True(t, sol.IsFeasible)
	require.Equal(t, "Greedy_MaxProfit", sol.MethodName)
}

func TestGreedy_MaxProfitWeight_CapacityTight(t *testing.T) {
	inst, err := instance.New(5, []int{4, 3, 3}, []int{3, 2, 2}, nil)
	require.NoError(t, err)

	g := constructive.NewGreedy(inst)
	sol := g.Construct(constructive.MaxProfitWeight)

	require.Equal(t, []int{1, 2}, sol.Items())
	require.Equal(t, 6, sol.TotalProfit)
	require.Equal(t, 4, sol.TotalWeight)
}

func TestGreedy_MaxProfitWeight_ZeroWeightSentinel(t *testing.T) {
	// weights[0] = 0 must use the 1000*profit sentinel rather than dividing
	// by zero, and must rank above every positive-weight item.
	inst, err := instance.New(10, []int{1, 100}, []int{0, 1}, nil)
	require.NoError(t, err)

	g := constructive.NewGreedy(inst)
	sol := g.Construct(constructive.MaxProfitWeight)

	require.Equal(t, []int{0, 1}, sol.Items())
}

func TestGreedy_ConflictBlocksSelection(t *testing.T) {
	inst, err := instance.New(10, []int{10, 9, 8}, []int{5, 5, 5}, [][2]int{{0, 1}})
	require.NoError(t, err)

	g := constructive.NewGreedy(inst)
	sol := g.Construct(constructive.MaxProfit)

	require.Equal(t, []int{0, 2}, sol.Items())
	require.Equal(t, 18, sol.TotalProfit)
}

func TestGreedy_ConstructAll_RunsAllFourStrategies(t *testing.T) {
	inst, err := instance.New(5, []int{4, 3, 3}, []int{3, 2, 2}, nil)
	require.NoError(t, err)

	g := constructive.NewGreedy(inst)
	solutions := g.ConstructAll()

	require.Len(t, solutions, 4)
	require.Equal(t, "Greedy_MaxProfit", solutions[0].MethodName)
	require.Equal(t, "Greedy_MinWeight", solutions[1].MethodName)
	require.Equal(t, "Greedy_MaxProfitWeight", solutions[2].MethodName)
	require.Equal(t, "Greedy_MinConflicts", solutions[3].MethodName)
}

func TestGRASP_Reproducibility_SameSeedSameSelection(t *testing.T) {
	inst, err := instance.New(20, []int{5, 4, 3, 8, 6, 2, 7}, []int{4, 3, 2, 5, 4, 1, 3}, [][2]int{{0, 3}})
	require.NoError(t, err)

	opts := constructive.NewGRASPOptions()
	opts.Iterations = 20
	opts.Seed = 42

	a := constructive.NewGRASP(inst, opts)
	resultA := a.Solve(opts)

	b := constructive.NewGRASP(inst, opts)
	resultB := b.Solve(opts)

	require.Equal(t, resultA.Best.Items(), resultB.Best.Items())
}

func TestGRASP_AlphaZero_PicksMaximumScore(t *testing.T) {
	inst, err := instance.New(100, []int{1, 2, 3, 100}, []int{1, 1, 1, 1}, nil)
	require.NoError(t, err)

	opts := constructive.NewGRASPOptions()
	opts.Iterations = 1
	opts.Alpha = 0.0

	g := constructive.NewGRASP(inst, opts)
	result := g.Solve(opts)

	// With alpha=0, the RCL is the single best-scoring candidate at every
	// step, so the run greedily collects every item (capacity is ample).
	require.Equal(t, []int{0, 1, 2, 3}, result.Best.Items())
}

func TestGRASP_ProducesFeasibleSolutions(t *testing.T) {
	inst, err := instance.New(10, []int{4, 3, 3, 5}, []int{3, 2, 2, 4}, [][2]int{{0, 3}})
	require.NoError(t, err)

	opts := constructive.NewGRASPOptions()
	opts.Iterations = 50

	g := constructive.NewGRASP(inst, opts)
	result := g.Solve(opts)

	require.True(t, result.Best.IsFeasible)
	require.LessOrEqual(t, result.Best.TotalWeight, inst.Capacity)
	require.Equal(t, 50, result.FeasibleCount)
}

func TestGRASP_MethodNameIncludesIterationsAndAlpha(t *testing.T) {
	inst, err := instance.New(10, []int{1}, []int{1}, nil)
	require.NoError(t, err)

	opts := constructive.NewGRASPOptions()
	opts.Iterations = 5
	opts.Alpha = 0.3

	g := constructive.NewGRASP(inst, opts)
	result := g.Solve(opts)

	require.Equal(t, "GRASP_5_0.30", result.Best.MethodName)
}
