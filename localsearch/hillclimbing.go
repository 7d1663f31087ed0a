package localsearch

import (
	"time"

	"github.com/ThallesFelipe/dckp-matheuristics/instance"
	"github.com/ThallesFelipe/dckp-matheuristics/solution"
	"github.com/ThallesFelipe/dckp-matheuristics/validator"
)

// HillClimbing improves a solution via best-improvement 1-1 swaps: drop one
// selected item, add one unselected item, keep the move only if it
// strictly increases total profit.
type HillClimbing struct {
	inst *instance.Instance
	val  *validator.Validator
}

// NewHillClimbing returns a HillClimbing searcher bound to inst.
func NewHillClimbing(inst *instance.Instance) *HillClimbing {
	return &HillClimbing{inst: inst, val: validator.New(inst)}
}

// swapCandidate is a drop-i/add-j move and the profit it would yield.
type swapCandidate struct {
	drop, add, profit int
	found             bool
}

// bestSwap scans the Swap(1-1) neighbourhood of sol and returns the move of
// strictly greatest resulting profit, if any beats sol's current profit.
func (h *HillClimbing) bestSwap(sol *solution.Solution) swapCandidate {
	return bestSwap11(h.inst, sol)
}

// bestSwap11 scans the Swap(1-1) neighbourhood of sol: drop one selected
// item, add one unselected item. Returns the move of strictly greatest
// resulting profit, if any beats sol's current profit. Enumeration is i
// ascending over selected, j ascending over non-selected, so the first
// neighbour seen wins any tie for best.
func bestSwap11(inst *instance.Instance, sol *solution.Solution) swapCandidate {
	items := sol.Items()
	best := swapCandidate{}

	for _, i := range items {
		remainingWeight := sol.TotalWeight - inst.Weights[i]
		remainingProfit := sol.TotalProfit - inst.Profits[i]

		for j := 0; j < inst.NItems; j++ {
			if sol.Has(j) {
				continue
			}
			if remainingWeight+inst.Weights[j] > inst.Capacity {
				continue
			}
			if !conflictsFreeOfAllBut(inst, j, items, i) {
				continue
			}
			candidateProfit := remainingProfit + inst.Profits[j]
			if candidateProfit <= sol.TotalProfit {
				continue
			}
			if !best.found || candidateProfit > best.profit {
				best = swapCandidate{drop: i, add: j, profit: candidateProfit, found: true}
			}
		}
	}

	return best
}

// conflictsFreeOfAllBut reports whether candidate conflicts with no member
// of selected other than the indices in excluded.
func conflictsFreeOfAllBut(inst *instance.Instance, candidate int, selected []int, excluded ...int) bool {
	isExcluded := func(item int) bool {
		for _, e := range excluded {
			if item == e {
				return true
			}
		}
		return false
	}
	for _, other := range selected {
		if isExcluded(other) {
			continue
		}
		if inst.HasConflict(candidate, other) {
			return false
		}
	}
	return true
}

// Improve runs best-improvement hill climbing from start, for at most
// maxIterations moves, and returns the locally optimal solution reached.
// start is cloned; the caller's solution is left untouched.
func (h *HillClimbing) Improve(start *solution.Solution, maxIterations int) *solution.Solution {
	begin := time.Now()

	current := start.Clone()
	for iter := 0; iter < maxIterations; iter++ {
		move := h.bestSwap(current)
		if !move.found {
			break
		}
		current.Remove(move.drop, h.inst.Profits[move.drop], h.inst.Weights[move.drop])
		current.Add(move.add, h.inst.Profits[move.add], h.inst.Weights[move.add])
	}

	h.val.Validate(current)
	current.MethodName = "HillClimbing"
	current.ComputationTime = time.Since(begin).Seconds()

	return current
}
