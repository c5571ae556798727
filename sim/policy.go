package sim

import "fmt"

// Policy reorders one window of requested track positions into visit order
// and advances the owning head state. Implementations mutate the window in
// place; the slice is borrowed for the duration of a single Apply call and
// exactly one policy touches it at a time.
type Policy interface {
	// Name returns the registry name of the policy.
	Name() string
	// Apply traverses window, permuting it into visit order where the
	// policy reorders at all, and updates head position and seek tally.
	Apply(window []int, head *HeadState)
}

// Policy registry names.
const (
	PolicyFCFS = "fcfs"
	PolicySSTF = "sstf"
	PolicySCAN = "scan"
)

// validPolicies maps accepted policy names.
var validPolicies = map[string]bool{
	PolicyFCFS: true,
	PolicySSTF: true,
	PolicySCAN: true,
}

// IsValidPolicy returns true if name is a recognized policy name.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// PolicyNames lists the recognized policy names in canonical report order.
func PolicyNames() []string {
	return []string{PolicyFCFS, PolicySSTF, PolicySCAN}
}

// NewPolicy creates a Policy by name.
// Valid names: "fcfs", "sstf", "scan". Panics on unrecognized names;
// callers validate with IsValidPolicy first.
func NewPolicy(name string) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown scheduling policy %q", name))
	}
	switch name {
	case PolicyFCFS:
		return &FCFS{}
	case PolicySSTF:
		return &SSTF{}
	case PolicySCAN:
		return &SCAN{}
	default:
		panic(fmt.Sprintf("unhandled scheduling policy %q", name))
	}
}

// FCFS services requests in arrival order.
type FCFS struct{}

func (*FCFS) Name() string { return PolicyFCFS }

// Apply sweeps the window in its original order, counting a seek for every
// position change. The window itself is never permuted: visit order is
// arrival order.
func (*FCFS) Apply(window []int, head *HeadState) {
	for _, p := range window {
		if p != head.Position {
			head.EffectiveSeeks++
		}
		head.Position = p
	}
}
