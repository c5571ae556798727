package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/disksim/disksim/sim"
	"github.com/disksim/disksim/sim/trace"
)

// renderReport writes the human-readable run report: one section per
// policy with per-window statistics, then the effective seek totals.
func renderReport(w io.Writer, tr *trace.RunTrace) {
	summary := trace.Summarize(tr)

	title := color.New(color.FgCyan, color.Bold)
	heading := color.New(color.Bold)

	title.Fprintln(w, "=== Disk Scheduling Report ===")
	fmt.Fprintf(w, "run %s | source %s | initial head %d | %d accepted, %d rejected\n",
		tr.Meta.RunID, tr.Meta.Source, tr.Meta.InitialHead, tr.Meta.Accepted, tr.Meta.Rejected)
	if tr.Meta.Chunked {
		fmt.Fprintf(w, "windowed, %d requests per window\n", tr.Meta.WindowSize)
	} else {
		fmt.Fprintln(w, "single window")
	}
	fmt.Fprintln(w)

	for _, ps := range summary.Policies {
		heading.Fprintf(w, "--- %s ---\n", strings.ToUpper(ps.Policy))
		for _, rec := range policyWindows(tr, ps.Policy) {
			fmt.Fprintf(w, "window %d from %d -> %v\n", rec.Window, rec.StartPosition, rec.Order)
			fmt.Fprintf(w, "  count %d  mean %.2f  variance %.2f  stddev %.2f  distance %d\n",
				rec.Count, rec.Mean, rec.Variance, rec.StdDev, rec.TotalDistance)
		}
		fmt.Fprintf(w, "total distance %s over %d requests in %d windows\n",
			humanize.Comma(int64(ps.TotalDistance)), ps.Requests, ps.Windows)
		if len(ps.Hops) > 0 {
			fmt.Fprintf(w, "mean seek %.2f  p95 seek %.2f  longest seek %d\n",
				ps.MeanSeek, sim.Percentile(ps.Hops, 95), ps.LongestSeek)
		}
		fmt.Fprintln(w)
	}

	title.Fprintln(w, "=== Effective Seeks ===")
	for _, ps := range summary.Policies {
		fmt.Fprintf(w, "%-6s %d seeks, head parked at %d\n",
			strings.ToUpper(ps.Policy), ps.EffectiveSeeks, ps.FinalPosition)
	}
}

// policyWindows filters the trace's window records down to one policy,
// preserving record order.
func policyWindows(tr *trace.RunTrace, policy string) []trace.WindowRecord {
	var out []trace.WindowRecord
	for _, rec := range tr.Windows {
		if rec.Policy == policy {
			out = append(out, rec)
		}
	}
	return out
}

// writeReportJSON dumps the full trace and its summary as indented JSON.
func writeReportJSON(path string, tr *trace.RunTrace) {
	f, err := os.Create(path)
	if err != nil {
		logrus.Fatalf("Error creating report file: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	report := struct {
		Trace   *trace.RunTrace `json:"trace"`
		Summary trace.Summary   `json:"summary"`
	}{tr, trace.Summarize(tr)}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		logrus.Fatalf("Error writing report file: %v", err)
	}
	logrus.Infof("Report written to %s", path)
}
