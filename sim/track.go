package sim

import "fmt"

// Track geometry is fixed: positions are integer track numbers in
// [MinTrack, MaxTrack].
const (
	// MinTrack is the lowest addressable track position.
	MinTrack = 0
	// MaxTrack is the highest addressable track position.
	MaxTrack = 65535
	// DefaultInitialHead is the head position policies start from when no
	// override is configured. It sits at the middle of the track range.
	DefaultInitialHead = 32767
)

// RangeViolation reports a requested position outside [MinTrack, MaxTrack].
// Index is the offset of the offending value in the raw input sequence.
type RangeViolation struct {
	Index int
	Value int
}

func (v RangeViolation) Error() string {
	return fmt.Sprintf("track %d at input index %d outside [%d, %d]", v.Value, v.Index, MinTrack, MaxTrack)
}

// ValidTrack reports whether p is an addressable track position.
func ValidTrack(p int) bool {
	return p >= MinTrack && p <= MaxTrack
}

// ScreenTracks partitions raw input into addressable positions and range
// violations. Accepted values keep their relative order; rejected values
// are excluded from the run, never clamped.
func ScreenTracks(raw []int) (accepted []int, rejected []RangeViolation) {
	accepted = make([]int, 0, len(raw))
	for i, p := range raw {
		if !ValidTrack(p) {
			rejected = append(rejected, RangeViolation{Index: i, Value: p})
			continue
		}
		accepted = append(accepted, p)
	}
	return accepted, rejected
}
