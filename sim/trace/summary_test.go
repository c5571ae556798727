package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_AggregatesWindowsPerPolicy(t *testing.T) {
	// GIVEN a trace with two fcfs windows and matching finals
	tr := NewRunTrace(RunMeta{RunID: "run-1"})
	tr.RecordWindow(WindowRecord{
		Policy: "fcfs", Window: 0, StartPosition: 53,
		Count: 3, TotalDistance: 276, Order: []int{98, 183, 37},
	})
	tr.RecordWindow(WindowRecord{
		Policy: "fcfs", Window: 1, StartPosition: 37,
		Count: 2, TotalDistance: 61, Order: []int{65, 67},
	})
	tr.RecordFinal(FinalRecord{Policy: "fcfs", Position: 67, EffectiveSeeks: 5})

	// WHEN the trace is summarized
	summary := Summarize(tr)

	// THEN the per-policy totals cover both windows
	require.Len(t, summary.Policies, 1)
	ps := summary.Policies[0]
	assert.Equal(t, "fcfs", ps.Policy)
	assert.Equal(t, 2, ps.Windows)
	assert.Equal(t, 5, ps.Requests)
	assert.Equal(t, 337, ps.TotalDistance)
	assert.Equal(t, 5, ps.EffectiveSeeks)
	assert.Equal(t, 67, ps.FinalPosition)
	assert.InDelta(t, 337.0/5.0, ps.MeanSeek, 1e-9)
	assert.Equal(t, "run-1", summary.Meta.RunID)
}

func TestSummarize_HopsFollowVisitOrder(t *testing.T) {
	tr := NewRunTrace(RunMeta{})
	tr.RecordWindow(WindowRecord{
		Policy: "sstf", StartPosition: 53,
		Count: 3, TotalDistance: 162, Order: []int{37, 98, 183},
	})

	summary := Summarize(tr)

	require.Len(t, summary.Policies, 1)
	ps := summary.Policies[0]
	assert.Equal(t, []int{16, 61, 85}, ps.Hops)
	assert.Equal(t, 85, ps.LongestSeek)
}

func TestSummarize_PoliciesKeepFirstRecordedOrder(t *testing.T) {
	tr := NewRunTrace(RunMeta{})
	for _, policy := range []string{"fcfs", "sstf", "scan"} {
		tr.RecordWindow(WindowRecord{Policy: policy, Count: 1, Order: []int{10}})
	}
	tr.RecordWindow(WindowRecord{Policy: "fcfs", Count: 1, Order: []int{20}})

	summary := Summarize(tr)

	require.Len(t, summary.Policies, 3)
	assert.Equal(t, "fcfs", summary.Policies[0].Policy)
	assert.Equal(t, "sstf", summary.Policies[1].Policy)
	assert.Equal(t, "scan", summary.Policies[2].Policy)
}

func TestSummarize_FinalsOnly_ListsPolicies(t *testing.T) {
	// GIVEN a run that processed no windows
	tr := NewRunTrace(RunMeta{})
	tr.RecordFinal(FinalRecord{Policy: "fcfs", Position: 500})

	summary := Summarize(tr)

	// THEN the policy still appears with its parked head and no averages
	require.Len(t, summary.Policies, 1)
	ps := summary.Policies[0]
	assert.Equal(t, 500, ps.FinalPosition)
	assert.Zero(t, ps.Windows)
	assert.Zero(t, ps.Requests)
	assert.Zero(t, ps.MeanSeek)
}

func TestSummarize_NilTrace(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestRunTrace_Recorders(t *testing.T) {
	tr := NewRunTrace(RunMeta{Source: "stdin"})

	tr.RecordWindow(WindowRecord{Policy: "fcfs"})
	tr.RecordRejection(RejectionRecord{Index: 2, Value: -5})
	tr.RecordFinal(FinalRecord{Policy: "fcfs"})

	assert.Len(t, tr.Windows, 1)
	assert.Len(t, tr.Rejections, 1)
	assert.Len(t, tr.Finals, 1)
	assert.Equal(t, "stdin", tr.Meta.Source)
}
