package sim

// Direction is the sweep direction of the SCAN policy.
type Direction int

const (
	// Up sweeps toward MaxTrack.
	Up Direction = iota
	// Down sweeps toward MinTrack.
	Down
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// HeadState carries one policy's disk-head bookkeeping across windows: the
// current position, the sweep direction (meaningful for SCAN only), and the
// running count of effective seeks. A HeadState belongs to exactly one
// policy for the lifetime of a run and is threaded by the caller through
// every Apply call.
type HeadState struct {
	Position       int       // track currently under the head
	Direction      Direction // SCAN sweep direction; Up at run start
	EffectiveSeeks int       // seeks whose destination differed from the preceding position
}

// NewHeadState returns a HeadState positioned at start, sweeping Up, with a
// zero seek tally.
func NewHeadState(start int) HeadState {
	return HeadState{Position: start, Direction: Up}
}
