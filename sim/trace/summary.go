package trace

// PolicySummary aggregates all windows of one policy across a run.
type PolicySummary struct {
	Policy         string  `json:"policy"`
	Windows        int     `json:"windows"`
	Requests       int     `json:"requests"`
	TotalDistance  int     `json:"total_distance"`
	EffectiveSeeks int     `json:"effective_seeks"`
	FinalPosition  int     `json:"final_position"`
	MeanSeek       float64 `json:"mean_seek"` // average distance per request
	LongestSeek    int     `json:"longest_seek"`
	Hops           []int   `json:"-"` // per-seek absolute distances in visit order
}

// Summary is the cross-policy projection of a finished run.
type Summary struct {
	Meta     RunMeta         `json:"meta"`
	Policies []PolicySummary `json:"policies"`
}

// Summarize aggregates a RunTrace into per-policy totals. Policies appear
// in first-recorded order; a run with no windows still lists every policy
// that reported a final head state. A nil trace yields an empty summary.
func Summarize(t *RunTrace) Summary {
	if t == nil {
		return Summary{}
	}
	var order []string
	byPolicy := make(map[string]*PolicySummary)
	lookup := func(name string) *PolicySummary {
		ps, ok := byPolicy[name]
		if !ok {
			ps = &PolicySummary{Policy: name}
			byPolicy[name] = ps
			order = append(order, name)
		}
		return ps
	}

	for _, w := range t.Windows {
		ps := lookup(w.Policy)
		ps.Windows++
		ps.Requests += w.Count
		ps.TotalDistance += w.TotalDistance
		prev := w.StartPosition
		for _, p := range w.Order {
			hop := p - prev
			if hop < 0 {
				hop = -hop
			}
			ps.Hops = append(ps.Hops, hop)
			if hop > ps.LongestSeek {
				ps.LongestSeek = hop
			}
			prev = p
		}
	}
	for _, f := range t.Finals {
		ps := lookup(f.Policy)
		ps.EffectiveSeeks = f.EffectiveSeeks
		ps.FinalPosition = f.Position
	}

	out := Summary{Meta: t.Meta}
	for _, name := range order {
		ps := byPolicy[name]
		if ps.Requests > 0 {
			ps.MeanSeek = float64(ps.TotalDistance) / float64(ps.Requests)
		}
		out.Policies = append(out.Policies, *ps)
	}
	return out
}
