package experiment

import (
	"path/filepath"
	"time"

	"github.com/ThallesFelipe/dckp-matheuristics/constructive"
)

// AlphaGrid is the fixed sweep of RCL greediness values TuneAlpha evaluates
// against every instance, mirroring the original calibration grid.
var AlphaGrid = []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// AlphaResult is the best solution found for one (instance, alpha) pair,
// alongside the alpha value and the average profit seen across that
// alpha's multi-start run.
type AlphaResult struct {
	Instance    string
	Alpha       float64
	BestProfit  int
	AvgProfit   float64
	TimeSeconds float64
}

// TuneAlpha recursively walks dir and, for every instance found, runs a
// GRASP multi-start for each value in AlphaGrid, reporting the best-profit
// alpha per instance. Iteration count and seed are taken from d.GRASP;
// only Alpha varies across the sweep.
func (d *Driver) TuneAlpha(dir string) ([]AlphaResult, error) {
	paths, err := walk(dir)
	if err != nil {
		return nil, err
	}

	var results []AlphaResult
	for _, path := range paths {
		inst, ok := d.loadAndWarn(path)
		if !ok {
			continue
		}
		name := filepath.Base(path)

		var best *AlphaResult
		for _, alpha := range AlphaGrid {
			start := time.Now()

			opts := d.GRASP
			opts.Alpha = alpha
			grasp := constructive.NewGRASP(inst, opts)
			graspResult := grasp.Solve(opts)

			avg := 0.0
			if graspResult.FeasibleCount > 0 {
				avg = graspResult.ProfitSum / float64(graspResult.FeasibleCount)
			}

			result := AlphaResult{
				Instance:    name,
				Alpha:       alpha,
				BestProfit:  graspResult.Best.TotalProfit,
				AvgProfit:   avg,
				TimeSeconds: elapsedSince(start),
			}
			d.logf("experiment: tune-alpha %s alpha=%.1f best=%d avg=%.2f", name, alpha, result.BestProfit, result.AvgProfit)

			if best == nil || result.BestProfit > best.BestProfit {
				best = &result
			}
		}
		if best != nil {
			results = append(results, *best)
		}
	}
	return results, nil
}
