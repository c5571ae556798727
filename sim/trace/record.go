// Package trace collects per-window scheduling records for report
// building. It stores pure data types and has no dependency on the sim
// package.
package trace

// WindowRecord captures one policy's processing of one window.
type WindowRecord struct {
	Policy         string  `json:"policy"`
	Window         int     `json:"window"` // zero-based window sequence number
	StartPosition  int     `json:"start_position"`
	Count          int     `json:"count"`
	Mean           float64 `json:"mean"`
	Variance       float64 `json:"variance"`
	StdDev         float64 `json:"stddev"`
	TotalDistance  int     `json:"total_distance"`
	Order          []int   `json:"order"`           // positions in visit order
	EffectiveSeeks int     `json:"effective_seeks"` // cumulative tally after this window
}

// RejectionRecord captures one out-of-range input value excluded from the
// run. Index is the offset in the raw input sequence.
type RejectionRecord struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// FinalRecord captures a policy's frozen head state at the end of a run.
type FinalRecord struct {
	Policy         string `json:"policy"`
	Position       int    `json:"position"`
	EffectiveSeeks int    `json:"effective_seeks"`
}
