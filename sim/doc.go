// Package sim provides the core disk-head scheduling simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the scheduling kernel:
//   - policy.go: the Policy interface, the name registry, and FCFS
//   - sstf.go, scan.go: the reordering policies (greedy nearest-first, elevator)
//   - simulator.go: the chunk dispatch loop threading head state across windows
//
// # Architecture
//
// The sim package owns the algorithmic core; collaborators live in
// sub-packages:
//   - sim/workload/: request ingestion and synthetic workload generation
//   - sim/trace/: pure-data run records and report summaries
//
// Positions travel as plain []int windows cut from a bounded ring
// (buffer.go). Each policy owns one HeadState for the lifetime of a run;
// the Simulator lends every window to each selected policy in turn and
// records the visit order and statistics after each pass.
//
// # Key Interfaces
//
//   - Policy: reorder one window in place and advance the owning head state
//   - workload.TrackSampler: draw synthetic track positions
package sim
