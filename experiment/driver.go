package experiment

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ThallesFelipe/dckp-matheuristics/constructive"
	"github.com/ThallesFelipe/dckp-matheuristics/instance"
	"github.com/ThallesFelipe/dckp-matheuristics/localsearch"
	"github.com/ThallesFelipe/dckp-matheuristics/solution"
)

// Driver walks a directory of instances (or loads a single one) and feeds
// each through the constructive and local search layers, collecting one
// Record per method invocation. A nil logger disables logging entirely.
type Driver struct {
	GRASP         constructive.GRASPOptions
	MaxIterations int
	Log           *logrus.Logger
}

// NewDriver returns a Driver with the documented defaults: GRASP
// iterations=100, alpha=0.3, seed=42; local search max_iterations=1000.
func NewDriver() *Driver {
	return &Driver{
		GRASP:         constructive.NewGRASPOptions(),
		MaxIterations: localsearch.DefaultMaxIterations,
		Log:           logrus.New(),
	}
}

func (d *Driver) logf(format string, args ...interface{}) {
	if d.Log != nil {
		d.Log.Infof(format, args...)
	}
}

func (d *Driver) warnf(format string, args ...interface{}) {
	if d.Log != nil {
		d.Log.Warnf(format, args...)
	}
}

// walk lists every candidate instance path under dir: regular files whose
// basename does not start with "." and whose path does not contain ".csv",
// visited in filepath.WalkDir's lexical order.
func walk(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if strings.Contains(path, ".csv") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("experiment: walk %s: %w", dir, err)
	}
	return paths, nil
}

// toRecord converts a solution into a Record against instanceName. An
// infeasible solution is logged but still converted — downstream CSV
// output preserves the infeasibility flag rather than dropping the row.
func (d *Driver) toRecord(instanceName string, sol *solution.Solution) Record {
	if !sol.IsFeasible {
		d.warnf("experiment: %s/%s produced an infeasible solution", instanceName, sol.MethodName)
	}
	return Record{
		Instance:    instanceName,
		Method:      sol.MethodName,
		Profit:      sol.TotalProfit,
		Weight:      sol.TotalWeight,
		NumItems:    sol.Size(),
		TimeSeconds: sol.ComputationTime,
		Feasible:    sol.IsFeasible,
	}
}

// loadAndWarn loads path, logging and returning (nil, false) on failure or
// on an infeasible load (which cannot happen for a freshly loaded instance,
// but any validator warning surfaced downstream uses the same channel).
func (d *Driver) loadAndWarn(path string) (*instance.Instance, bool) {
	inst, err := instance.Load(path)
	if err != nil {
		d.warnf("experiment: failed to load %s: %v", path, err)
		return nil, false
	}
	return inst, true
}

// constructiveRecords runs the four greedy strategies plus one GRASP
// multi-start against inst and returns one Record per method, plus the
// GRASP solution itself for callers that chain local search onto it.
func (d *Driver) constructiveRecords(name string, inst *instance.Instance) ([]Record, *solution.Solution) {
	var records []Record

	greedy := constructive.NewGreedy(inst)
	for _, sol := range greedy.ConstructAll() {
		records = append(records, d.toRecord(name, sol))
	}

	grasp := constructive.NewGRASP(inst, d.GRASP)
	graspResult := grasp.Solve(d.GRASP)
	records = append(records, d.toRecord(name, graspResult.Best))

	return records, graspResult.Best
}

// localSearchRecords runs HillClimbing and VND, both seeded from seed
// (never chained), and returns one Record per method.
func (d *Driver) localSearchRecords(name string, inst *instance.Instance, seed *solution.Solution) []Record {
	hc := localsearch.NewHillClimbing(inst)
	hcSol := hc.Improve(seed, d.MaxIterations)

	vnd := localsearch.NewVND(inst)
	vndSol := vnd.Improve(seed, d.MaxIterations)

	return []Record{d.toRecord(name, hcSol), d.toRecord(name, vndSol)}
}

// Single loads one instance, runs all greedy strategies, runs GRASP with
// d.GRASP, then runs HC and VND seeded by the GRASP solution. Returns one
// Record per method invocation.
func (d *Driver) Single(path string) ([]Record, error) {
	inst, ok := d.loadAndWarn(path)
	if !ok {
		return nil, fmt.Errorf("experiment: could not load instance %s", path)
	}
	name := filepath.Base(path)

	records, graspSol := d.constructiveRecords(name, inst)
	records = append(records, d.localSearchRecords(name, inst, graspSol)...)

	return records, nil
}

// BatchEtapa1 recursively walks dir and runs the constructive layer only
// (four greedy strategies plus GRASP) against every instance found.
// Load failures are logged and skipped, not fatal.
func (d *Driver) BatchEtapa1(dir string) ([]Record, error) {
	paths, err := walk(dir)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, path := range paths {
		inst, ok := d.loadAndWarn(path)
		if !ok {
			continue
		}
		name := filepath.Base(path)
		d.logf("experiment: batch-etapa1 processing %s", name)

		perInstance, _ := d.constructiveRecords(name, inst)
		records = append(records, perInstance...)
	}
	return records, nil
}

// BatchEtapa2 recursively walks dir and, for every instance found, runs
// GRASP once then HC and VND both seeded from that same GRASP solution
// (never chained).
func (d *Driver) BatchEtapa2(dir string) ([]Record, error) {
	paths, err := walk(dir)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, path := range paths {
		inst, ok := d.loadAndWarn(path)
		if !ok {
			continue
		}
		name := filepath.Base(path)
		d.logf("experiment: batch-etapa2 processing %s", name)

		grasp := constructive.NewGRASP(inst, d.GRASP)
		graspResult := grasp.Solve(d.GRASP)
		records = append(records, d.toRecord(name, graspResult.Best))
		records = append(records, d.localSearchRecords(name, inst, graspResult.Best)...)
	}
	return records, nil
}

// Batch recursively walks dir and runs the full stack — four greedy
// strategies, GRASP, then HC and VND seeded from that GRASP solution —
// against every instance found.
func (d *Driver) Batch(dir string) ([]Record, error) {
	paths, err := walk(dir)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, path := range paths {
		inst, ok := d.loadAndWarn(path)
		if !ok {
			continue
		}
		name := filepath.Base(path)
		d.logf("experiment: batch processing %s", name)

		perInstance, graspSol := d.constructiveRecords(name, inst)
		records = append(records, perInstance...)
		records = append(records, d.localSearchRecords(name, inst, graspSol)...)
	}
	return records, nil
}

// elapsedSince returns the seconds elapsed since start. TuneAlpha uses it
// to time each alpha's multi-start run; Single and Batch* take their times
// from each solution's ComputationTime instead.
func elapsedSince(start time.Time) float64 {
	return time.Since(start).Seconds()
}
