package constructive

import (
	"sort"
	"time"

	"github.com/ThallesFelipe/dckp-matheuristics/instance"
	"github.com/ThallesFelipe/dckp-matheuristics/solution"
	"github.com/ThallesFelipe/dckp-matheuristics/validator"
)

// Greedy builds solutions using one of the four deterministic orderings in
// GreedyStrategy, always respecting capacity and conflict constraints.
type Greedy struct {
	inst *instance.Instance
	val  *validator.Validator
}

// NewGreedy returns a Greedy constructor bound to inst.
func NewGreedy(inst *instance.Instance) *Greedy {
	return &Greedy{inst: inst, val: validator.New(inst)}
}

// score computes an item's ranking score for strategy. Higher is visited
// first. Ties are broken by ascending item index in sortByStrategy, not
// here, so equal scores are legal.
func (g *Greedy) score(item int, strategy GreedyStrategy) float64 {
	switch strategy {
	case MaxProfit:
		return float64(g.inst.Profits[item])
	case MinWeight:
		return -float64(g.inst.Weights[item])
	case MaxProfitWeight:
		if g.inst.Weights[item] == 0 {
			return 1000.0 * float64(g.inst.Profits[item])
		}
		return float64(g.inst.Profits[item]) / float64(g.inst.Weights[item])
	case MinConflicts:
		return -float64(g.inst.ConflictDegree(item))
	default:
		return 0
	}
}

// sortByStrategy returns item indices ordered by descending score, ties
// broken by ascending item index for determinism.
func (g *Greedy) sortByStrategy(strategy GreedyStrategy) []int {
	order := make([]int, g.inst.NItems)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := g.score(order[a], strategy), g.score(order[b], strategy)
		if sa != sb {
			return sa > sb
		}
		return order[a] < order[b]
	})
	return order
}

// Construct runs a single greedy pass with strategy and returns a
// validated solution named "Greedy_<strategy>".
func (g *Greedy) Construct(strategy GreedyStrategy) *solution.Solution {
	start := time.Now()

	sol := solution.New()
	sol.MethodName = "Greedy_" + strategy.String()

	for _, item := range g.sortByStrategy(strategy) {
		if !g.val.CheckCapacity(sol.TotalWeight, g.inst.Weights[item]) {
			continue
		}
		if !g.val.CheckConflicts(item, sol.Items()) {
			continue
		}
		sol.Add(item, g.inst.Profits[item], g.inst.Weights[item])
	}

	g.val.Validate(sol)
	sol.ComputationTime = time.Since(start).Seconds()

	return sol
}

// ConstructAll runs all four strategies and returns the resulting
// solutions in the fixed order MaxProfit, MinWeight, MaxProfitWeight,
// MinConflicts. Callers select the max-profit solution themselves.
func (g *Greedy) ConstructAll() []*solution.Solution {
	solutions := make([]*solution.Solution, 0, len(AllStrategies))
	for _, strategy := range AllStrategies {
		solutions = append(solutions, g.Construct(strategy))
	}
	return solutions
}
