// Package experiment drives instances through the constructive and local
// search layers and emits one Record per method invocation.
package experiment

import "fmt"

// Record is one row of the result table: the outcome of running one method
// against one instance.
type Record struct {
	// Instance is the instance file's basename.
	Instance string

	// Method identifies the producing algorithm, e.g. "Greedy_MaxProfit",
	// "GRASP_100_0.30", "HillClimbing", "VND".
	Method string

	Profit   int
	Weight   int
	NumItems int

	// TimeSeconds is wall-clock elapsed time for this method invocation.
	TimeSeconds float64

	Feasible bool
}

// String renders a Record for log lines, not the CSV serialization used
// for the result file (see Writer.Write).
func (r Record) String() string {
	feasible := "No"
	if r.Feasible {
		feasible = "Yes"
	}
	return fmt.Sprintf("%s/%s: profit=%d weight=%d items=%d time=%.6fs feasible=%s",
		r.Instance, r.Method, r.Profit, r.Weight, r.NumItems, r.TimeSeconds, feasible)
}
