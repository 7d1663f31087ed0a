// Package validator is the authoritative feasibility oracle for the DCKP
// search core. Constructors and local search maintain solution.Solution
// aggregates incrementally for speed; Validator independently recomputes
// them so that bugs in the incremental maintenance are detectable — the
// duplication is intentional.
package validator

import (
	"fmt"

	"github.com/ThallesFelipe/dckp-matheuristics/instance"
	"github.com/ThallesFelipe/dckp-matheuristics/solution"
)

// Validator checks solutions against one Instance.
type Validator struct {
	inst *instance.Instance
}

// New returns a Validator bound to inst.
func New(inst *instance.Instance) *Validator {
	return &Validator{inst: inst}
}

// CheckCapacity reports whether adding an item of the given weight keeps
// currentWeight within the instance's capacity. O(1) probe used by
// constructors.
func (v *Validator) CheckCapacity(currentWeight, itemWeight int) bool {
	return currentWeight+itemWeight <= v.inst.Capacity
}

// CheckConflicts reports whether item conflicts with no member of
// selected. Complexity: O(|selected| * log d).
func (v *Validator) CheckConflicts(item int, selected []int) bool {
	for _, other := range selected {
		if v.inst.HasConflict(item, other) {
			return false
		}
	}
	return true
}

// Validate performs a full audit of sol: it recomputes TotalProfit and
// TotalWeight from scratch, checks the capacity limit, and enumerates
// every unordered pair in the selection to detect a remaining conflict
// edge. It updates sol.TotalProfit, sol.TotalWeight and sol.IsFeasible in
// place and returns the same feasibility verdict.
//
// Validate is the authoritative feasibility oracle: callers (and tests)
// must invoke it rather than trust cached aggregates.
func (v *Validator) Validate(sol *solution.Solution) bool {
	v.RecalculateMetrics(sol)

	feasible := sol.TotalWeight <= v.inst.Capacity

	items := sol.Items()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if v.inst.HasConflict(items[i], items[j]) {
				feasible = false
			}
		}
	}

	sol.IsFeasible = feasible
	return feasible
}

// RecalculateMetrics recomputes sol.TotalProfit and sol.TotalWeight from
// the instance's profit/weight arrays, ignoring feasibility. Items out of
// range for the bound instance are skipped rather than causing a panic,
// matching the original recalculateMetrics defensive bound check.
func (v *Validator) RecalculateMetrics(sol *solution.Solution) {
	profit, weight := 0, 0
	for _, item := range sol.Items() {
		if item < 0 || item >= v.inst.NItems {
			continue
		}
		profit += v.inst.Profits[item]
		weight += v.inst.Weights[item]
	}
	sol.TotalProfit = profit
	sol.TotalWeight = weight
}

// Describe returns a human-readable breakdown of a solution's capacity
// slack and conflict count. Supplements the distilled spec with the
// original Validator::validateDetailed diagnostic; read-only, does not
// mutate sol.
func (v *Validator) Describe(sol *solution.Solution) string {
	capacityOK := sol.TotalWeight <= v.inst.Capacity

	items := sol.Items()
	conflicts := 0
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if v.inst.HasConflict(items[i], items[j]) {
				conflicts++
			}
		}
	}

	verdict := "INFEASIBLE"
	if capacityOK && conflicts == 0 {
		verdict = "FEASIBLE"
	}
	capState := "VIOLATED"
	if capacityOK {
		capState = "OK"
	}

	return fmt.Sprintf(
		"items=%d weight=%d/%d capacity=%s conflicts=%d verdict=%s",
		sol.Size(), sol.TotalWeight, v.inst.Capacity, capState, conflicts, verdict,
	)
}
