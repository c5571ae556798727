package trace

import "time"

// RunMeta describes one simulation run for reporting.
type RunMeta struct {
	RunID       string        `json:"run_id"`
	StartedAt   time.Time     `json:"started_at"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Source      string        `json:"source"` // file path, "stdin" or "rand"
	InitialHead int           `json:"initial_head"`
	WindowSize  int           `json:"window_size"`
	Chunked     bool          `json:"chunked"`
	Accepted    int           `json:"accepted"`
	Rejected    int           `json:"rejected"`
}

// RunTrace collects records during a simulation run.
type RunTrace struct {
	Meta       RunMeta           `json:"meta"`
	Windows    []WindowRecord    `json:"windows"`
	Rejections []RejectionRecord `json:"rejections"`
	Finals     []FinalRecord     `json:"finals"`
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace(meta RunMeta) *RunTrace {
	return &RunTrace{
		Meta:       meta,
		Windows:    make([]WindowRecord, 0),
		Rejections: make([]RejectionRecord, 0),
		Finals:     make([]FinalRecord, 0),
	}
}

// RecordWindow appends a per-window policy record.
func (t *RunTrace) RecordWindow(record WindowRecord) {
	t.Windows = append(t.Windows, record)
}

// RecordRejection appends an out-of-range rejection record.
func (t *RunTrace) RecordRejection(record RejectionRecord) {
	t.Rejections = append(t.Rejections, record)
}

// RecordFinal appends a policy's end-of-run head state.
func (t *RunTrace) RecordFinal(record FinalRecord) {
	t.Finals = append(t.Finals, record)
}
