package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// TrackSampler draws synthetic track positions.
type TrackSampler interface {
	// Sample returns one track position.
	Sample(rng *rand.Rand) int
}

// UniformSampler draws uniformly from [min, max] inclusive.
type UniformSampler struct {
	min, max int
}

func (s *UniformSampler) Sample(rng *rand.Rand) int {
	return s.min + rng.Intn(s.max-s.min+1)
}

// GaussianSampler models a hotspot: positions cluster around a center
// track and are clamped to [min, max].
type GaussianSampler struct {
	center, spread float64
	min, max       int
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int {
	val := rng.NormFloat64()*s.spread + s.center
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int(math.Round(clamped))
}

// ConstantSampler always returns the same track (zero variance).
type ConstantSampler struct {
	value int
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int {
	return s.value
}

// Pattern names accepted by NewTrackSampler.
const (
	PatternUniform  = "uniform"
	PatternGaussian = "gaussian"
	PatternConstant = "constant"
)

// validPatterns maps accepted workload pattern names.
var validPatterns = map[string]bool{
	PatternUniform:  true,
	PatternGaussian: true,
	PatternConstant: true,
}

// IsValidPattern returns true if name is a recognized workload pattern.
func IsValidPattern(name string) bool {
	return validPatterns[name]
}

// SamplerSpec selects and parameterizes a TrackSampler. Min and Max bound
// every pattern; the remaining fields apply to the named pattern only.
type SamplerSpec struct {
	Pattern string  `yaml:"pattern"`
	Min     int     `yaml:"min"`    // lower bound (inclusive)
	Max     int     `yaml:"max"`    // upper bound (inclusive)
	Center  float64 `yaml:"center"` // gaussian hotspot track
	Spread  float64 `yaml:"spread"` // gaussian standard deviation
	Value   int     `yaml:"value"`  // constant track
}

// NewTrackSampler creates a TrackSampler from spec.
func NewTrackSampler(spec SamplerSpec) (TrackSampler, error) {
	switch spec.Pattern {
	case PatternUniform:
		if spec.Min > spec.Max {
			return nil, fmt.Errorf("uniform pattern: min %d greater than max %d", spec.Min, spec.Max)
		}
		return &UniformSampler{min: spec.Min, max: spec.Max}, nil

	case PatternGaussian:
		if spec.Spread <= 0 {
			return nil, fmt.Errorf("gaussian pattern requires a positive spread, got %v", spec.Spread)
		}
		if spec.Min > spec.Max {
			return nil, fmt.Errorf("gaussian pattern: min %d greater than max %d", spec.Min, spec.Max)
		}
		return &GaussianSampler{center: spec.Center, spread: spec.Spread, min: spec.Min, max: spec.Max}, nil

	case PatternConstant:
		return &ConstantSampler{value: spec.Value}, nil

	default:
		return nil, fmt.Errorf("unknown workload pattern %q", spec.Pattern)
	}
}

// Generate draws count positions from sampler. Deterministic for a given
// rng seed.
func Generate(rng *rand.Rand, sampler TrackSampler, count int) []int {
	positions := make([]int, 0, count)
	for i := 0; i < count; i++ {
		positions = append(positions, sampler.Sample(rng))
	}
	return positions
}
