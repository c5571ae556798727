package sim

import "fmt"

// Default sizing for the chunk dispatch loop.
const (
	// DefaultWindowSize is the maximum number of requests processed per window.
	DefaultWindowSize = 20
	// DefaultBufferCapacity is the staging ring capacity between the request
	// stream and window processing.
	DefaultBufferCapacity = 100
)

// Config carries the knobs for one simulation run.
type Config struct {
	InitialHead    int      // starting head position for every policy
	WindowSize     int      // maximum requests per window
	BufferCapacity int      // staging ring capacity; must cover WindowSize
	Chunked        bool     // false processes the full sequence as one window
	Policies       []string // policy names to run, in report order
}

// DefaultConfig returns the stock configuration: head mid-range, windows of
// DefaultWindowSize cut from a DefaultBufferCapacity ring, chunked
// processing, all three policies.
func DefaultConfig() Config {
	return Config{
		InitialHead:    DefaultInitialHead,
		WindowSize:     DefaultWindowSize,
		BufferCapacity: DefaultBufferCapacity,
		Chunked:        true,
		Policies:       PolicyNames(),
	}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if !ValidTrack(c.InitialHead) {
		return fmt.Errorf("initial head position %d outside [%d, %d]", c.InitialHead, MinTrack, MaxTrack)
	}
	if c.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %d", c.WindowSize)
	}
	if c.BufferCapacity < c.WindowSize {
		return fmt.Errorf("buffer capacity %d smaller than window size %d", c.BufferCapacity, c.WindowSize)
	}
	if len(c.Policies) == 0 {
		return fmt.Errorf("no scheduling policies selected")
	}
	for _, name := range c.Policies {
		if !IsValidPolicy(name) {
			return fmt.Errorf("unknown scheduling policy %q (valid: %v)", name, PolicyNames())
		}
	}
	return nil
}
