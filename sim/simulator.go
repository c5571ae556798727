// simulator.go
//
// Chunk dispatch loop: consumes the request sequence through the staging
// ring, lends each window to every selected policy in turn, and records the
// visit order and statistics after each pass.

package sim

import (
	"github.com/disksim/disksim/sim/trace"
)

// RunPhase tracks a policy run through its lifecycle. Transitions only move
// forward within a run.
type RunPhase string

const (
	// PhaseReady means the head state is initialized and no window has been
	// processed yet.
	PhaseReady RunPhase = "ready"
	// PhaseActive means at least one window has been processed.
	PhaseActive RunPhase = "active"
	// PhaseFinalized means the run is complete and the tallies are frozen
	// for reporting.
	PhaseFinalized RunPhase = "finalized"
)

// PolicyRun pairs a policy with the head state it owns for one run.
type PolicyRun struct {
	Policy Policy
	Head   HeadState
	Phase  RunPhase
}

// Simulator drives one simulation run. Windows are cut from the staging
// ring and handed to every selected policy in configuration order; each
// policy's head state threads across windows, so a later window's behavior
// depends on the head position the previous window left behind, not on the
// run's initial position.
//
// Policies share the window slice sequentially: FCFS runs first and leaves
// arrival order intact, then each reordering policy permutes the same slice
// into its own visit order. Records snapshot the ordering after each pass.
type Simulator struct {
	Config Config
	Runs   []*PolicyRun
	Trace  *trace.RunTrace

	buf     *SeekBuffer
	scratch []int // reusable window backing
	windows int
}

// NewSimulator builds a Simulator for cfg with one PolicyRun per configured
// policy. cfg must already be validated.
func NewSimulator(cfg Config, tr *trace.RunTrace) *Simulator {
	runs := make([]*PolicyRun, 0, len(cfg.Policies))
	for _, name := range cfg.Policies {
		runs = append(runs, &PolicyRun{
			Policy: NewPolicy(name),
			Head:   NewHeadState(cfg.InitialHead),
			Phase:  PhaseReady,
		})
	}
	return &Simulator{
		Config:  cfg,
		Runs:    runs,
		Trace:   tr,
		buf:     NewSeekBuffer(cfg.BufferCapacity),
		scratch: make([]int, 0, cfg.WindowSize),
	}
}

// Run consumes requests to exhaustion and finalizes every policy run.
// Empty input produces no windows and leaves every head state at its
// initial value.
func (s *Simulator) Run(requests []int) {
	if !s.Config.Chunked {
		// Monolithic mode: the whole sequence is one window.
		s.processWindow(append(s.scratch[:0], requests...))
		s.finalize()
		return
	}
	pending := requests
	for {
		n := s.buf.Fill(pending)
		pending = pending[n:]
		if s.buf.Len() == 0 {
			break
		}
		s.processWindow(s.buf.CutWindow(s.scratch[:0], s.Config.WindowSize))
	}
	s.finalize()
}

// processWindow lends window to each policy in turn and records the
// resulting visit order and statistics.
func (s *Simulator) processWindow(window []int) {
	if len(window) == 0 {
		return
	}
	seq := s.windows
	s.windows++
	for _, run := range s.Runs {
		start := run.Head.Position
		run.Policy.Apply(window, &run.Head)
		st, err := ComputeStats(window, start)
		if err != nil {
			continue
		}
		run.Phase = PhaseActive
		s.Trace.RecordWindow(trace.WindowRecord{
			Policy:         run.Policy.Name(),
			Window:         seq,
			StartPosition:  start,
			Count:          st.Count,
			Mean:           st.Mean,
			Variance:       st.Variance,
			StdDev:         st.StdDev,
			TotalDistance:  st.TotalDistance,
			Order:          append([]int(nil), window...),
			EffectiveSeeks: run.Head.EffectiveSeeks,
		})
	}
}

// finalize freezes every policy run and records its end-of-run head state.
func (s *Simulator) finalize() {
	for _, run := range s.Runs {
		run.Phase = PhaseFinalized
		s.Trace.RecordFinal(trace.FinalRecord{
			Policy:         run.Policy.Name(),
			Position:       run.Head.Position,
			EffectiveSeeks: run.Head.EffectiveSeeks,
		})
	}
}
