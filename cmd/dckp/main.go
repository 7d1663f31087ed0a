// Command dckp runs the DCKP heuristic stack against one instance or a
// directory of instances and writes a Result CSV.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ThallesFelipe/dckp-matheuristics/experiment"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  dckp single [-iterations N] [-alpha A] [-seed S] [-max-iterations M] <instance-path> [csv-path]")
	fmt.Fprintln(os.Stderr, "  dckp batch [-iterations N] [-alpha A] [-seed S] [-max-iterations M] <dir> <csv-path>")
	fmt.Fprintln(os.Stderr, "  dckp batch-etapa1 [-iterations N] [-alpha A] [-seed S] <dir> <csv-path>")
	fmt.Fprintln(os.Stderr, "  dckp batch-etapa2 [-iterations N] [-alpha A] [-seed S] [-max-iterations M] <dir> <csv-path>")
	fmt.Fprintln(os.Stderr, "  dckp tune-alpha [-iterations N] [-seed S] <dir> <csv-path>")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches to a subcommand and returns the process exit code:
// 0 on success, non-zero on a usage error or a fatal runtime error.
func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 1
	}

	driver := experiment.NewDriver()
	driver.Log.SetLevel(logrus.InfoLevel)

	subcommand, rest := args[0], args[1:]

	fs := flag.NewFlagSet(subcommand, flag.ContinueOnError)
	iterations := fs.Int("iterations", driver.GRASP.Iterations, "GRASP multi-start iteration count")
	alpha := fs.Float64("alpha", driver.GRASP.Alpha, "GRASP RCL greediness/randomness trade-off in [0,1]")
	seed := fs.Uint("seed", uint(driver.GRASP.Seed), "Mersenne Twister seed")
	maxIterations := fs.Int("max-iterations", driver.MaxIterations, "local search iteration budget")
	if err := fs.Parse(rest); err != nil {
		usage()
		return 1
	}
	driver.GRASP.Iterations = *iterations
	driver.GRASP.Alpha = *alpha
	driver.GRASP.Seed = uint32(*seed)
	driver.MaxIterations = *maxIterations

	positional := fs.Args()

	switch subcommand {
	case "single":
		return runSingle(driver, positional)
	case "batch":
		return runBatch(positional, driver.Batch, "batch")
	case "batch-etapa1":
		return runBatch(positional, driver.BatchEtapa1, "batch-etapa1")
	case "batch-etapa2":
		return runBatch(positional, driver.BatchEtapa2, "batch-etapa2")
	case "tune-alpha":
		return runTuneAlpha(driver, positional)
	default:
		fmt.Fprintf(os.Stderr, "dckp: unknown subcommand %q\n", subcommand)
		usage()
		return 1
	}
}

func runSingle(driver *experiment.Driver, args []string) int {
	if len(args) < 1 {
		usage()
		return 1
	}

	records, err := driver.Single(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dckp: %v\n", err)
		return 1
	}

	if len(args) < 2 {
		for _, r := range records {
			fmt.Println(r)
		}
		return 0
	}
	return writeCSV(args[1], records)
}

type batchFunc func(dir string) ([]experiment.Record, error)

func runBatch(args []string, fn batchFunc, name string) int {
	if len(args) < 2 {
		usage()
		return 1
	}
	records, err := fn(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dckp: %s: %v\n", name, err)
		return 1
	}
	return writeCSV(args[1], records)
}

func runTuneAlpha(driver *experiment.Driver, args []string) int {
	if len(args) < 2 {
		usage()
		return 1
	}

	results, err := driver.TuneAlpha(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dckp: tune-alpha: %v\n", err)
		return 1
	}

	f, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dckp: create %s: %v\n", args[1], err)
		return 1
	}
	defer f.Close()

	if err := experiment.WriteAlphaResults(f, results); err != nil {
		fmt.Fprintf(os.Stderr, "dckp: %v\n", err)
		return 1
	}
	return 0
}

func writeCSV(path string, records []experiment.Record) int {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dckp: create %s: %v\n", path, err)
		return 1
	}
	defer f.Close()

	w := experiment.NewWriter(f)
	for _, r := range records {
		if err := w.Write(r); err != nil {
			fmt.Fprintf(os.Stderr, "dckp: %v\n", err)
			return 1
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "dckp: %v\n", err)
		return 1
	}
	return 0
}
