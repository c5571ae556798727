package workload

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformSampler_StaysInRange(t *testing.T) {
	sampler, err := NewTrackSampler(SamplerSpec{Pattern: PatternUniform, Min: 100, Max: 200})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := sampler.Sample(rng)
		if v < 100 || v > 200 {
			t.Fatalf("sample %d outside [100, 200]", v)
		}
	}
}

func TestGaussianSampler_ClampedToRange(t *testing.T) {
	// GIVEN a hotspot at the lower bound with a wide spread
	sampler, err := NewTrackSampler(SamplerSpec{
		Pattern: PatternGaussian, Min: 0, Max: 100, Center: 0, Spread: 500,
	})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))

	// THEN every sample lands inside the track range
	for i := 0; i < 1000; i++ {
		v := sampler.Sample(rng)
		if v < 0 || v > 100 {
			t.Fatalf("sample %d outside [0, 100]", v)
		}
	}
}

func TestConstantSampler_AlwaysSameValue(t *testing.T) {
	sampler, err := NewTrackSampler(SamplerSpec{Pattern: PatternConstant, Value: 4242})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10; i++ {
		assert.Equal(t, 4242, sampler.Sample(rng))
	}
}

func TestGenerate_SameSeedSameSequence(t *testing.T) {
	sampler, err := NewTrackSampler(SamplerSpec{Pattern: PatternUniform, Min: 0, Max: 65535})
	require.NoError(t, err)

	a := Generate(rand.New(rand.NewSource(42)), sampler, 50)
	b := Generate(rand.New(rand.NewSource(42)), sampler, 50)

	assert.Equal(t, a, b)
}

func TestGenerate_Count(t *testing.T) {
	sampler, err := NewTrackSampler(SamplerSpec{Pattern: PatternConstant, Value: 1})
	require.NoError(t, err)

	assert.Len(t, Generate(rand.New(rand.NewSource(1)), sampler, 7), 7)
	assert.Empty(t, Generate(rand.New(rand.NewSource(1)), sampler, 0))
}

func TestIsValidPattern(t *testing.T) {
	assert.True(t, IsValidPattern(PatternUniform))
	assert.True(t, IsValidPattern(PatternGaussian))
	assert.True(t, IsValidPattern(PatternConstant))
	assert.False(t, IsValidPattern("zipf"))
	assert.False(t, IsValidPattern(""))
}

func TestNewTrackSampler_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec SamplerSpec
	}{
		{"unknown pattern", SamplerSpec{Pattern: "zipf"}},
		{"uniform inverted bounds", SamplerSpec{Pattern: PatternUniform, Min: 10, Max: 5}},
		{"gaussian zero spread", SamplerSpec{Pattern: PatternGaussian, Min: 0, Max: 10, Spread: 0}},
		{"gaussian inverted bounds", SamplerSpec{Pattern: PatternGaussian, Min: 10, Max: 5, Spread: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTrackSampler(tt.spec)
			assert.Error(t, err)
		})
	}
}
