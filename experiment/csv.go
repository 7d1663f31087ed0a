package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the Result CSV's fixed column order.
var csvHeader = []string{"Instance", "Method", "Profit", "Weight", "NumItems", "Time", "Feasible"}

// Writer emits Records as the Result CSV format: a header row followed by
// one row per Record, elapsed time formatted with six fractional digits
// and feasibility as "Yes"/"No".
type Writer struct {
	cw          *csv.Writer
	wroteHeader bool
}

// NewWriter returns a Writer over w. The header row is written lazily, on
// the first call to Write, so an experiment run that produces zero records
// leaves an empty file rather than a header-only one.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

// Write appends one record row, writing the header first if this is the
// first call.
func (w *Writer) Write(r Record) error {
	if !w.wroteHeader {
		if err := w.cw.Write(csvHeader); err != nil {
			return fmt.Errorf("experiment: write csv header: %w", err)
		}
		w.wroteHeader = true
	}

	feasible := "No"
	if r.Feasible {
		feasible = "Yes"
	}

	row := []string{
		r.Instance,
		r.Method,
		strconv.Itoa(r.Profit),
		strconv.Itoa(r.Weight),
		strconv.Itoa(r.NumItems),
		strconv.FormatFloat(r.TimeSeconds, 'f', 6, 64),
		feasible,
	}
	if err := w.cw.Write(row); err != nil {
		return fmt.Errorf("experiment: write csv row: %w", err)
	}
	return nil
}

// Flush flushes any buffered rows and returns the first write error
// encountered, if any.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// alphaCSVHeader is the tune-alpha report's column order. This is a
// supplemented report format, not part of the Result CSV contract.
var alphaCSVHeader = []string{"Instance", "BestAlpha", "BestProfit", "AvgProfit", "Time"}

// WriteAlphaResults writes results as a small CSV report: one row per
// instance naming the best-performing alpha found by TuneAlpha.
func WriteAlphaResults(w io.Writer, results []AlphaResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(alphaCSVHeader); err != nil {
		return fmt.Errorf("experiment: write alpha csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Instance,
			strconv.FormatFloat(r.Alpha, 'f', 1, 64),
			strconv.Itoa(r.BestProfit),
			strconv.FormatFloat(r.AvgProfit, 'f', 2, 64),
			strconv.FormatFloat(r.TimeSeconds, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("experiment: write alpha csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
