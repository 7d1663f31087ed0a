package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Load reads a DCKP instance from path.
//
// File format (whitespace-tokenised, newline-insensitive):
//
//	<n_items> <capacity> <n_conflicts>
//	<profit_1> ... <profit_n>
//	<weight_1> ... <weight_n>
//	<u_1> <v_1>
//	<u_2> <v_2>
//	...
//
// Item indices u, v are 1-based on disk and converted to 0-based in the
// returned Instance. Conflict pairs are read until EOF regardless of the
// declared n_conflicts; out-of-range or self-referencing pairs are
// silently discarded. A non-positive n_items or capacity fails the load.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a DCKP instance from r using the same format as Load.
func Read(r io.Reader) (*Instance, error) {
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

	nItems, ok := next()
	if !ok {
		return nil, ErrInvalidItemCount
	}
	capacity, ok := next()
	if !ok {
		return nil, ErrInvalidCapacity
	}
	// n_conflicts is read but not trusted: conflict pairs are consumed
	// until EOF regardless of its declared value.
	if _, ok = next(); !ok {
		return nil, ErrInvalidItemCount
	}

	if nItems <= 0 {
		return nil, ErrInvalidItemCount
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	profits := make([]int, nItems)
	for i := 0; i < nItems; i++ {
		v, ok := next()
		if !ok {
			return nil, ErrTruncatedProfits
		}
		profits[i] = v
	}

	weights := make([]int, nItems)
	for i := 0; i < nItems; i++ {
		v, ok := next()
		if !ok {
			return nil, ErrTruncatedWeights
		}
		weights[i] = v
	}

	var conflicts [][2]int
	for {
		u, ok := next()
		if !ok {
			break
		}
		v, ok := next()
		if !ok {
			break
		}
		// File indices are 1-based; convert to 0-based before New() filters
		// out-of-range pairs.
		conflicts = append(conflicts, [2]int{u - 1, v - 1})
	}

	return New(capacity, profits, weights, conflicts)
}
