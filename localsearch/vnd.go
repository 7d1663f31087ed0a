package localsearch

import (
	"time"

	"github.com/ThallesFelipe/dckp-matheuristics/instance"
	"github.com/ThallesFelipe/dckp-matheuristics/solution"
	"github.com/ThallesFelipe/dckp-matheuristics/validator"
)

// VND improves a solution by Variable Neighbourhood Descent over three
// neighbourhoods of increasing cost: Add/Drop, Swap(1-1), Swap(2-1).
type VND struct {
	inst *instance.Instance
	val  *validator.Validator
}

// NewVND returns a VND searcher bound to inst.
func NewVND(inst *instance.Instance) *VND {
	return &VND{inst: inst, val: validator.New(inst)}
}

// addDropCandidate is either an ADD move (add, drop == -1) or a DROP move
// (drop, add == -1).
type addDropCandidate struct {
	add, drop, profit int
	found             bool
}

// bestAddDrop scans the N1 Add/Drop neighbourhood: ADD moves over every
// unselected j (capacity and conflict permitting), and DROP moves over
// every selected i. Returns the strictly-best-improving move, ADD moves
// enumerated first in ascending j, then DROP moves in ascending i.
func bestAddDrop(inst *instance.Instance, sol *solution.Solution) addDropCandidate {
	items := sol.Items()
	best := addDropCandidate{add: -1, drop: -1}

	for j := 0; j < inst.NItems; j++ {
		if sol.Has(j) {
			continue
		}
		if sol.TotalWeight+inst.Weights[j] > inst.Capacity {
			continue
		}
		if !conflictsFreeOfAllBut(inst, j, items) {
			continue
		}
		candidateProfit := sol.TotalProfit + inst.Profits[j]
		if candidateProfit <= sol.TotalProfit {
			continue
		}
		if !best.found || candidateProfit > best.profit {
			best = addDropCandidate{add: j, drop: -1, profit: candidateProfit, found: true}
		}
	}

	for _, i := range items {
		candidateProfit := sol.TotalProfit - inst.Profits[i]
		if candidateProfit <= sol.TotalProfit {
			continue
		}
		if !best.found || candidateProfit > best.profit {
			best = addDropCandidate{add: -1, drop: i, profit: candidateProfit, found: true}
		}
	}

	return best
}

// swap21Candidate is a drop-i1,i2/add-j move.
type swap21Candidate struct {
	drop1, drop2, add, profit int
	found                     bool
}

// bestSwap21 scans the N3 Swap(2-1) neighbourhood: drop two selected items,
// add one unselected item, admitted only when the added item's profit
// strictly exceeds the sum of the two dropped items' profits. Requires at
// least two selected items. Enumeration is i1 ascending, i2 > i1 ascending,
// j ascending.
func bestSwap21(inst *instance.Instance, sol *solution.Solution) swap21Candidate {
	items := sol.Items()
	best := swap21Candidate{}
	if len(items) < 2 {
		return best
	}

	for a := 0; a < len(items); a++ {
		i1 := items[a]
		for b := a + 1; b < len(items); b++ {
			i2 := items[b]
			droppedProfit := inst.Profits[i1] + inst.Profits[i2]
			remainingWeight := sol.TotalWeight - inst.Weights[i1] - inst.Weights[i2]

			for j := 0; j < inst.NItems; j++ {
				if sol.Has(j) {
					continue
				}
				if inst.Profits[j] <= droppedProfit {
					continue
				}
				if remainingWeight+inst.Weights[j] > inst.Capacity {
					continue
				}
				if !conflictsFreeOfAllBut(inst, j, items, i1, i2) {
					continue
				}
				candidateProfit := sol.TotalProfit - droppedProfit + inst.Profits[j]
				if !best.found || candidateProfit > best.profit {
					best = swap21Candidate{drop1: i1, drop2: i2, add: j, profit: candidateProfit, found: true}
				}
			}
		}
	}

	return best
}

// Improve runs Variable Neighbourhood Descent from start, for at most
// maxIterations schedule steps, and returns the locally optimal solution
// reached. start is cloned; the caller's solution is left untouched.
func (v *VND) Improve(start *solution.Solution, maxIterations int) *solution.Solution {
	begin := time.Now()

	current := start.Clone()
	k := 1
	for k <= 3 && maxIterations > 0 {
		improved := false

		switch k {
		case 1:
			if move := bestAddDrop(v.inst, current); move.found {
				if move.add >= 0 {
					current.Add(move.add, v.inst.Profits[move.add], v.inst.Weights[move.add])
				} else {
					current.Remove(move.drop, v.inst.Profits[move.drop], v.inst.Weights[move.drop])
				}
				improved = true
			}
		case 2:
			if move := bestSwap11(v.inst, current); move.found {
				current.Remove(move.drop, v.inst.Profits[move.drop], v.inst.Weights[move.drop])
				current.Add(move.add, v.inst.Profits[move.add], v.inst.Weights[move.add])
				improved = true
			}
		case 3:
			if move := bestSwap21(v.inst, current); move.found {
				current.Remove(move.drop1, v.inst.Profits[move.drop1], v.inst.Weights[move.drop1])
				current.Remove(move.drop2, v.inst.Profits[move.drop2], v.inst.Weights[move.drop2])
				current.Add(move.add, v.inst.Profits[move.add], v.inst.Weights[move.add])
				improved = true
			}
		}

		if improved {
			k = 1
		} else {
			k++
		}
		maxIterations--
	}

	v.val.Validate(current)
	current.MethodName = "VND"
	current.ComputationTime = time.Since(begin).Seconds()

	return current
}
