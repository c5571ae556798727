// Package testutil provides shared test infrastructure for the disksim
// simulator: golden scenario types and assertion helpers used across sim/
// test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldenscenarios.json.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario is one recorded scheduling run with expected outcomes per
// policy. WindowSize 0 means monolithic processing (chunking disabled).
type GoldenScenario struct {
	Name        string                        `json:"name"`
	InitialHead int                           `json:"initial_head"`
	WindowSize  int                           `json:"window_size"`
	Input       []int                         `json:"input"`
	Expect      map[string]GoldenPolicyResult `json:"expect"`
}

// GoldenPolicyResult is the expected outcome for one policy.
type GoldenPolicyResult struct {
	Windows        []GoldenWindow `json:"windows"`
	TotalDistance  int            `json:"total_distance"`
	EffectiveSeeks int            `json:"effective_seeks"`
	FinalPosition  int            `json:"final_position"`
}

// GoldenWindow is the expected visit order and distance for one window.
type GoldenWindow struct {
	Order         []int `json:"order"`
	TotalDistance int   `json:"total_distance"`
}

// LoadGoldenDataset loads the golden scenarios from the repo root testdata
// directory. The path is resolved relative to this source file:
// sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldenscenarios.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
