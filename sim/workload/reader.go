// Package workload supplies request sequences to the simulator: parsed
// from a file or stream, or drawn from a synthetic sampler.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadPositions parses whitespace-separated integer track requests from r.
// Range screening happens later in the core, so any integer is accepted
// here, including negative ones. A token that does not parse as an integer
// aborts with an error naming the token and its ordinal.
func ReadPositions(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var positions []int
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d: %q is not an integer", len(positions)+1, tok)
		}
		positions = append(positions, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading request stream: %w", err)
	}
	return positions, nil
}

// ReadPositionsFile reads a request sequence from the file at path.
func ReadPositionsFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	positions, err := ReadPositions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return positions, nil
}
