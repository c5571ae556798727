package sim

// SCAN sweeps the head in one direction servicing every request it passes,
// then reverses: the elevator algorithm. One Apply call is exactly two
// directional passes, the head's current direction first, then the
// opposite, so the stored direction is restored by the time Apply returns.
type SCAN struct{}

func (*SCAN) Name() string { return PolicySCAN }

// Apply permutes window into elevator visit order and rebuilds the seek
// tally from the final ordering.
//
// Committed slots grow as a prefix of the window. Each pass walks slots
// from the shared cursor; an inner scan over the remaining positions picks
// the nearest candidate strictly beyond the current head in the pass
// direction. A slot with no eligible candidate is left as it is and the
// cursor stays put, so the next pass resumes committing at that slot.
// Positions equal to the current head are never eligible within a pass:
// the direction bounds are strict.
func (*SCAN) Apply(window []int, head *HeadState) {
	start := head.Position
	pos := start
	cursor := 0
	for pass := 0; pass < 2; pass++ {
		for i := cursor; i < len(window); i++ {
			best := nearestInDirection(window, i, pos, head.Direction)
			if best < 0 {
				continue
			}
			window[i], window[best] = window[best], window[i]
			pos = window[i]
			cursor = i + 1
		}
		head.Direction = head.Direction.Opposite()
	}
	// The tally counts transitions in the final visit order from the
	// pre-pass head position, mirroring the FCFS rule.
	prev := start
	for _, p := range window {
		if p != prev {
			head.EffectiveSeeks++
		}
		prev = p
	}
	head.Position = prev
}

// nearestInDirection returns the index of the position closest to pos
// among window[from:] that lies strictly beyond pos in direction dir, or
// -1 if none is eligible. The open bound narrows to each closer candidate
// found while scanning forward.
func nearestInDirection(window []int, from, pos int, dir Direction) int {
	best := -1
	bound := pos
	for j := from; j < len(window); j++ {
		p := window[j]
		if dir == Up {
			if p > pos && (best < 0 || p < bound) {
				best, bound = j, p
			}
		} else {
			if p < pos && (best < 0 || p > bound) {
				best, bound = j, p
			}
		}
	}
	return best
}
