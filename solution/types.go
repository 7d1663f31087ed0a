// Package solution holds the mutable selected-item set produced by a
// constructor or local search, plus the aggregates the search core
// maintains incrementally for speed (independently re-verified by
// package validator).
package solution

import "sort"

// Solution is a candidate DCKP selection: a set of item indices plus
// cached aggregates. TotalProfit and TotalWeight are maintained
// incrementally by Add/Remove; IsFeasible is only authoritative once a
// validator.Validator has run (see that package's doc comment).
type Solution struct {
	// selected holds the chosen item indices in ascending order — an
	// ordered integer set with O(log n) membership via binary search.
	selected []int

	// TotalProfit is the sum of profits[i] over the selected set.
	TotalProfit int

	// TotalWeight is the sum of weights[i] over the selected set.
	TotalWeight int

	// IsFeasible records the last feasibility verdict. New and Clear set it
	// to true for the empty selection; Add and Remove leave it untouched.
	// Constructors call Validate before returning so this reflects the
	// final selection by the time callers see a Solution.
	IsFeasible bool

	// ComputationTime is the wall-clock time, in seconds, spent producing
	// this solution.
	ComputationTime float64

	// MethodName identifies the producing algorithm, e.g. "Greedy_MaxProfit",
	// "GRASP_100_0.30", "HillClimbing", "VND".
	MethodName string
}

// New returns an empty, feasible-by-convention Solution.
func New() *Solution {
	return &Solution{IsFeasible: true}
}

// indexOf returns the position of item in s.selected and whether it was
// found, via binary search over the ascending slice.
func (s *Solution) indexOf(item int) (int, bool) {
	idx := sort.SearchInts(s.selected, item)
	return idx, idx < len(s.selected) && s.selected[idx] == item
}

// Has reports whether item is currently selected. Complexity: O(log n).
func (s *Solution) Has(item int) bool {
	_, found := s.indexOf(item)
	return found
}

// Add inserts item into the selection and updates the cached aggregates.
// A no-op, aggregates untouched, if item is already selected.
//
// Complexity: O(n) worst case (slice insertion keeps ascending order).
func (s *Solution) Add(item, profit, weight int) {
	idx, found := s.indexOf(item)
	if found {
		return
	}
	s.selected = append(s.selected, 0)
	copy(s.selected[idx+1:], s.selected[idx:])
	s.selected[idx] = item

	s.TotalProfit += profit
	s.TotalWeight += weight
}

// Remove deletes item from the selection and updates the cached
// aggregates. A no-op, aggregates untouched, if item is not selected.
//
// Complexity: O(n) worst case (slice deletion keeps ascending order).
func (s *Solution) Remove(item, profit, weight int) {
	idx, found := s.indexOf(item)
	if !found {
		return
	}
	s.selected = append(s.selected[:idx], s.selected[idx+1:]...)

	s.TotalProfit -= profit
	s.TotalWeight -= weight
}

// Items returns the selected items in ascending order. The returned slice
// is a copy; mutating it does not affect s.
func (s *Solution) Items() []int {
	return append([]int(nil), s.selected...)
}

// Size returns the number of selected items.
func (s *Solution) Size() int {
	return len(s.selected)
}

// Empty reports whether no items are selected.
func (s *Solution) Empty() bool {
	return len(s.selected) == 0
}

// Clear resets the solution to the empty, feasible state.
func (s *Solution) Clear() {
	s.selected = nil
	s.TotalProfit = 0
	s.TotalWeight = 0
	s.IsFeasible = true
	s.ComputationTime = 0
}

// Clone returns a deep copy of s. Local search clones its starting
// solution and applies moves to the clone, so the caller's solution is
// never aliased or mutated.
func (s *Solution) Clone() *Solution {
	return &Solution{
		selected:        append([]int(nil), s.selected...),
		TotalProfit:     s.TotalProfit,
		TotalWeight:     s.TotalWeight,
		IsFeasible:      s.IsFeasible,
		ComputationTime: s.ComputationTime,
		MethodName:      s.MethodName,
	}
}

// Greater reports whether s has strictly greater total profit than other.
// Solutions are ordered by TotalProfit only.
func (s *Solution) Greater(other *Solution) bool {
	return s.TotalProfit > other.TotalProfit
}

// Less reports whether s has strictly smaller total profit than other.
func (s *Solution) Less(other *Solution) bool {
	return s.TotalProfit < other.TotalProfit
}
