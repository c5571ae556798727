package sim

// SSTF services the nearest pending request first: greedy selection by
// absolute seek distance from the current head position.
type SSTF struct{}

func (*SSTF) Name() string { return PolicySSTF }

// Apply permutes window into greedy nearest-first visit order. For each
// slot i the remaining positions (indices >= i) are scanned for the one
// closest to the current head; ties keep the earliest index (strict <
// comparison). The chosen position is swapped into slot i and becomes the
// new head position. O(n^2) over the window, which stays small under
// chunked dispatch.
func (*SSTF) Apply(window []int, head *HeadState) {
	for i := range window {
		best := i
		bestDist := absInt(window[i] - head.Position)
		for j := i + 1; j < len(window); j++ {
			if d := absInt(window[j] - head.Position); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best != i {
			window[i], window[best] = window[best], window[i]
		}
		if window[i] != head.Position {
			head.EffectiveSeeks++
		}
		head.Position = window[i]
	}
}
