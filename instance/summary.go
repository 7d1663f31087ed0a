package instance

import "fmt"

// Summary returns a one-line human-readable digest of the instance: size,
// capacity, conflict density, and the profit/weight range. Supplements the
// distilled spec with the original reader's print() diagnostic, useful when
// eyeballing a batch of instance files before a run.
func (inst *Instance) Summary() string {
	minP, maxP := inst.Profits[0], inst.Profits[0]
	minW, maxW := inst.Weights[0], inst.Weights[0]
	var sumP, sumW int64
	for i := 0; i < inst.NItems; i++ {
		p, w := inst.Profits[i], inst.Weights[i]
		if p < minP {
			minP = p
		}
		if p > maxP {
			maxP = p
		}
		if w < minW {
			minW = w
		}
		if w > maxW {
			maxW = w
		}
		sumP += int64(p)
		sumW += int64(w)
	}
	avgP := float64(sumP) / float64(inst.NItems)
	avgW := float64(sumW) / float64(inst.NItems)

	return fmt.Sprintf(
		"n=%d, W=%d, conflicts=%d (%.2f%%), profit=[%d-%d] avg=%.2f, weight=[%d-%d] avg=%.2f",
		inst.NItems, inst.Capacity, inst.NumConflictPairs(), inst.ConflictDensity(),
		minP, maxP, avgP, minW, maxW, avgW,
	)
}
