package solution

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// String renders a one-line diagnostic, e.g.
// "[GRASP_100_0.30] profit=42 weight=17 items=5 feasible=true time=0.0031s".
func (s *Solution) String() string {
	return fmt.Sprintf(
		"[%s] profit=%d weight=%d items=%d feasible=%t time=%.4fs",
		s.MethodName, s.TotalProfit, s.TotalWeight, s.Size(), s.IsFeasible, s.ComputationTime,
	)
}

// WriteTo writes the solution dump format:
//
//	<total_profit> <total_weight> <num_items>
//	<i_1> <i_2> ... <i_k>
//
// with item indices in 1-based form.
func (s *Solution) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	n, err := fmt.Fprintf(bw, "%d %d %d\n", s.TotalProfit, s.TotalWeight, s.Size())
	written := int64(n)
	if err != nil {
		return written, err
	}
	for i, item := range s.selected {
		sep := " "
		if i == 0 {
			sep = ""
		}
		m, err := fmt.Fprintf(bw, "%s%d", sep, item+1)
		written += int64(m)
		if err != nil {
			return written, err
		}
	}
	m, err := fmt.Fprintln(bw)
	written += int64(m)
	if err != nil {
		return written, err
	}

	return written, bw.Flush()
}

// Load parses the solution dump format written by WriteTo. Aggregates
// (TotalProfit, TotalWeight) are taken verbatim from the header line; call
// validator.Validator.RecalculateMetrics afterwards to cross-check them against
// an instance.
func Load(r io.Reader) (*Solution, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		var v int
		if _, err := fmt.Sscan(sc.Text(), &v); err != nil {
			return 0, false
		}
		return v, true
	}

	profit, ok := next()
	if !ok {
		return nil, fmt.Errorf("solution: missing total_profit")
	}
	weight, ok := next()
	if !ok {
		return nil, fmt.Errorf("solution: missing total_weight")
	}
	count, ok := next()
	if !ok {
		return nil, fmt.Errorf("solution: missing num_items")
	}

	sol := New()
	sol.TotalProfit = profit
	sol.TotalWeight = weight
	sol.selected = make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, ok := next()
		if !ok {
			return nil, fmt.Errorf("solution: truncated item list, expected %d items", count)
		}
		sol.selected = append(sol.selected, v-1)
	}
	sort.Ints(sol.selected)

	return sol, nil
}
