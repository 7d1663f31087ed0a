package experiment_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ThallesFelipe/dckp-matheuristics/experiment"
)

func writeInstanceFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func silentDriver() *experiment.Driver {
	d := experiment.NewDriver()
	d.Log = logrus.New()
	d.Log.SetOutput(os.Stderr)
	d.Log.SetLevel(logrus.PanicLevel) // suppress output during tests
	d.GRASP.Iterations = 10
	return d
}

func TestDriver_Single_ReturnsOneRecordPerMethod(t *testing.T) {
	dir := t.TempDir()
	path := writeInstanceFile(t, dir, "inst1.txt", "3 5 0\n4 3 3\n3 2 2\n")

	d := silentDriver()
	records, err := d.Single(path)
	require.NoError(t, err)

	// 4 greedy strategies + GRASP + HC + VND = 7 records.
	require.Len(t, records, 7)
	for _, r := range records {
		require.Equal(t, "inst1.txt", r.Instance)
	}
}

func TestDriver_Single_FailsOnMissingFile(t *testing.T) {
	d := silentDriver()
	_, err := d.Single(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestDriver_BatchEtapa1_RunsConstructiveLayerOnly(t *testing.T) {
	dir := t.TempDir()
	writeInstanceFile(t, dir, "a.txt", "2 5 0\n4 3\n3 2\n")
	writeInstanceFile(t, dir, ".hidden", "2 5 0\n4 3\n3 2\n")
	writeInstanceFile(t, dir, "ignored.csv", "not an instance")

	d := silentDriver()
	records, err := d.BatchEtapa1(dir)
	require.NoError(t, err)

	// Only a.txt is visited: 4 greedy + 1 GRASP = 5 records.
	require.Len(t, records, 5)
}

func TestDriver_BatchEtapa2_SeedsHCAndVNDFromSameGRASPRun(t *testing.T) {
	dir := t.TempDir()
	writeInstanceFile(t, dir, "a.txt", "2 5 0\n4 3\n3 2\n")

	d := silentDriver()
	records, err := d.BatchEtapa2(dir)
	require.NoError(t, err)

	// GRASP + HC + VND = 3 records.
	require.Len(t, records, 3)
	require.Equal(t, "HillClimbing", records[1].Method)
	require.Equal(t, "VND", records[2].Method)
}

func TestDriver_Batch_SkipsUnloadableInstances(t *testing.T) {
	dir := t.TempDir()
	writeInstanceFile(t, dir, "good.txt", "2 5 0\n4 3\n3 2\n")
	writeInstanceFile(t, dir, "bad.txt", "not a valid instance header !!\n")

	d := silentDriver()
	records, err := d.Batch(dir)
	require.NoError(t, err)

	for _, r := range records {
		require.Equal(t, "good.txt", r.Instance)
	}
}

func TestWriter_WritesHeaderAndFormatsFields(t *testing.T) {
	var buf strings.Builder
	w := experiment.NewWriter(&buf)

	require.NoError(t, w.Write(experiment.Record{
		Instance: "x.txt", Method: "Greedy_MaxProfit",
		Profit: 7, Weight: 5, NumItems: 2, TimeSeconds: 0.001234, Feasible: true,
	}))
	require.NoError(t, w.Flush())

	out := buf.String()
	require.Contains(t, out, "Instance,Method,Profit,Weight,NumItems,Time,Feasible")
	require.Contains(t, out, "x.txt,Greedy_MaxProfit,7,5,2,0.001234,Yes")
}

func TestWriter_EmptyRunLeavesFileWithoutHeader(t *testing.T) {
	var buf strings.Builder
	w := experiment.NewWriter(&buf)
	require.NoError(t, w.Flush())

	require.Empty(t, buf.String())
}

func TestTuneAlpha_ReturnsBestAlphaPerInstance(t *testing.T) {
	dir := t.TempDir()
	writeInstanceFile(t, dir, "inst.txt", "4 10 0\n4 3 3 5\n3 2 2 4\n")

	d := silentDriver()
	d.GRASP.Iterations = 5

	results, err := d.TuneAlpha(dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "inst.txt", results[0].Instance)
}
