package instance

import "sort"

// Instance is an immutable DCKP catalogue: per-item profits and weights, a
// single capacity limit, and a conflict graph over item pairs that may not
// be selected together.
//
// Indices are 0-based internally; the external file format (see Load) is
// 1-based and converted on read. An Instance is built once by Load and
// shared by reference for the remainder of a run — nothing in this package
// mutates an Instance after construction.
type Instance struct {
	// NItems is the number of items in the catalogue.
	NItems int

	// Capacity is the single weight budget the selected set must respect.
	Capacity int

	// Profits holds profits[i] for item i, 0 <= i < NItems.
	Profits []int

	// Weights holds weights[i] for item i, 0 <= i < NItems.
	Weights []int

	// conflicts is the raw edge list as read from the file, 0-based,
	// de-duplicated neither by item order nor by uniqueness.
	conflicts [][2]int

	// adjacency[i] is the sorted, de-duplicated list of items that conflict
	// with item i. An ordered slice (not a map) per the contract: an
	// ordered integer set with O(log d) membership via binary search.
	adjacency [][]int
}

// New builds an Instance from already-parsed profits, weights and conflict
// pairs (0-based). It is the shape-only constructor used by Load after
// tokenizing the file; callers with in-memory data can use it directly.
//
// Returns ErrInvalidItemCount / ErrInvalidCapacity if n_items or capacity
// are not positive. Conflict pairs with an out-of-range or self-referencing
// index are silently discarded, matching the original reader's behaviour.
func New(capacity int, profits, weights []int, conflicts [][2]int) (*Instance, error) {
	n := len(profits)
	if n <= 0 {
		return nil, ErrInvalidItemCount
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if len(weights) != n {
		return nil, ErrTruncatedWeights
	}

	inst := &Instance{
		NItems:   n,
		Capacity: capacity,
		Profits:  append([]int(nil), profits...),
		Weights:  append([]int(nil), weights...),
	}

	for _, c := range conflicts {
		u, v := c[0], c[1]
		if u == v || u < 0 || u >= n || v < 0 || v >= n {
			continue
		}
		inst.conflicts = append(inst.conflicts, [2]int{u, v})
	}
	inst.buildConflictGraph()

	return inst, nil
}

// buildConflictGraph derives the sorted adjacency lists from the raw
// conflict pairs. Complexity: O(c log c) for the per-item sorts, where c is
// the number of conflict edges touching that item.
func (inst *Instance) buildConflictGraph() {
	inst.adjacency = make([][]int, inst.NItems)
	for _, c := range inst.conflicts {
		u, v := c[0], c[1]
		inst.adjacency[u] = append(inst.adjacency[u], v)
		inst.adjacency[v] = append(inst.adjacency[v], u)
	}
	for i := range inst.adjacency {
		adj := inst.adjacency[i]
		if len(adj) == 0 {
			continue
		}
		sort.Ints(adj)
		dedup := adj[:1]
		for _, x := range adj[1:] {
			if x != dedup[len(dedup)-1] {
				dedup = append(dedup, x)
			}
		}
		inst.adjacency[i] = dedup
	}
}

// HasConflict reports whether item1 and item2 conflict. Out-of-range
// indices report false rather than erroring, matching the original
// reader's defensive bounds check.
//
// Complexity: O(log d) via binary search in the smaller of the two
// adjacency lists.
func (inst *Instance) HasConflict(item1, item2 int) bool {
	if item1 < 0 || item1 >= inst.NItems || item2 < 0 || item2 >= inst.NItems {
		return false
	}
	adj, target := inst.adjacency[item1], item2
	if len(inst.adjacency[item2]) < len(adj) {
		adj, target = inst.adjacency[item2], item1
	}

	idx := sort.SearchInts(adj, target)
	return idx < len(adj) && adj[idx] == target
}

// ConflictDegree returns the number of items that conflict with item.
// Complexity: O(1).
func (inst *Instance) ConflictDegree(item int) int {
	if item < 0 || item >= inst.NItems {
		return 0
	}
	return len(inst.adjacency[item])
}

// Conflicts returns the conflicting neighbours of item in ascending order.
// The returned slice is owned by the Instance and must not be mutated.
func (inst *Instance) Conflicts(item int) []int {
	if item < 0 || item >= inst.NItems {
		return nil
	}
	return inst.adjacency[item]
}

// NumConflictPairs returns the number of distinct conflict edges actually
// wired into the adjacency lists (post de-duplication).
func (inst *Instance) NumConflictPairs() int {
	total := 0
	for _, adj := range inst.adjacency {
		total += len(adj)
	}
	return total / 2
}

// ConflictDensity returns the percentage of item pairs that conflict,
// 100 * |conflicts| / (n*(n-1)/2). Returns 0 for n <= 1.
func (inst *Instance) ConflictDensity() float64 {
	if inst.NItems <= 1 {
		return 0.0
	}
	pairs := float64(inst.NItems) * float64(inst.NItems-1) / 2.0
	return 100.0 * float64(inst.NumConflictPairs()) / pairs
}
