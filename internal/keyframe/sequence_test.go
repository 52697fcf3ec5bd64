package keyframe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewSequenceSortsAndDedupes(t *testing.T) {
	s := NewSequence([]Keyframe{
		{Position: 300, Value: 90, Type: Linear},
		{Position: 0, Value: 10, Type: Linear},
		{Position: 150, Value: 50, Type: Linear},
		{Position: 150, Value: 55, Type: EaseInCubic},
	}, 0)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []int{0, 150, 300}, s.Positions())
	k, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, 55.0, k.Value)
	assert.Equal(t, EaseInCubic, k.Type)
}

func TestInsertAtExistingPositionOverwrites(t *testing.T) {
	s := NewSequence([]Keyframe{{Position: 0, Value: 1}, {Position: 10, Value: 2}}, 0)

	i, added := s.Insert(Keyframe{Position: 10, Value: 7, Type: EaseOutBounce})
	assert.False(t, added)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, s.Len())
	k, _ := s.At(1)
	assert.Equal(t, Keyframe{Position: 10, Value: 7, Type: EaseOutBounce}, k)
}

func TestNavigation(t *testing.T) {
	s := NewSequence([]Keyframe{{Position: 0}, {Position: 150}, {Position: 300}}, 0)

	tests := []struct {
		name     string
		position int
		prev     int
		prevOK   bool
		next     int
		nextOK   bool
	}{
		{"before first", -5, 0, false, 0, true},
		{"on first", 0, 0, false, 150, true},
		{"between", 100, 0, true, 150, true},
		{"on middle", 150, 0, true, 300, true},
		{"on last", 300, 150, true, 0, false},
		{"after last", 400, 300, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, ok := s.Previous(tt.position)
			assert.Equal(t, tt.prevOK, ok)
			if ok {
				assert.Equal(t, tt.prev, prev)
			}
			next, ok := s.Next(tt.position)
			assert.Equal(t, tt.nextOK, ok)
			if ok {
				assert.Equal(t, tt.next, next)
			}
		})
	}

	assert.Equal(t, 1, s.Index(150))
	assert.Equal(t, -1, s.Index(151))
	assert.True(t, s.Contains(300))
}

func TestMoveResortsAndRejectsCollision(t *testing.T) {
	s := NewSequence([]Keyframe{{Position: 0, Value: 0}, {Position: 10, Value: 1}, {Position: 20, Value: 2}}, 0)

	j, ok := s.Move(0, 15)
	require.True(t, ok)
	assert.Equal(t, 1, j)
	assert.Equal(t, []int{10, 15, 20}, s.Positions())

	_, ok = s.Move(0, 20)
	assert.False(t, ok)
	assert.Equal(t, []int{10, 15, 20}, s.Positions())

	_, ok = s.Move(5, 30)
	assert.False(t, ok)
}

func TestCollapseAndClear(t *testing.T) {
	s := NewSequence([]Keyframe{
		{Position: 0, Value: 3, Type: EaseInBack},
		{Position: 10, Value: 4, Type: SmoothTight},
		{Position: 20, Value: 5, Type: Discrete},
	}, 0)

	s.CollapseToEnds(Linear)
	assert.Equal(t, []Keyframe{{Position: 0, Value: 3, Type: Linear}, {Position: 20, Value: 5, Type: Linear}}, s.Keyframes())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 3.0, s.Static)
	assert.Equal(t, 3.0, s.Sample(10))
}

func TestSampleFallback(t *testing.T) {
	s := NewSequence([]Keyframe{
		{Position: 0, Value: 0, Type: Linear},
		{Position: 10, Value: 100, Type: Linear},
		{Position: 20, Value: 0, Type: Discrete},
	}, 0)

	assert.Equal(t, 0.0, s.Sample(-3))
	assert.InDelta(t, 50.0, s.Sample(5), 1e-9)
	assert.Equal(t, 100.0, s.Sample(15))
	assert.Equal(t, 0.0, s.Sample(25))
}

func TestRandomEditsKeepPositionsOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewSequence(nil, 0)

	for step := 0; step < 2000; step++ {
		switch rng.Intn(3) {
		case 0:
			s.Insert(Keyframe{Position: rng.Intn(200), Value: rng.Float64()})
		case 1:
			if s.Len() > 0 {
				s.RemoveAt(rng.Intn(s.Len()))
			}
		case 2:
			if s.Len() > 0 {
				s.Move(rng.Intn(s.Len()), rng.Intn(200))
			}
		}
		positions := s.Positions()
		for i := 1; i < len(positions); i++ {
			require.Less(t, positions[i-1], positions[i], "step %d", step)
		}
	}
}

func TestInterpolationNames(t *testing.T) {
	types := InterpolationTypes()
	require.Len(t, types, 35)
	for _, typ := range types {
		parsed, err := ParseInterpolation(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	_, err := ParseInterpolation("wobble")
	assert.Error(t, err)

	assert.True(t, Discrete.IsBasic())
	assert.False(t, EaseInElastic.IsBasic())
	assert.False(t, InterpolationType(99).Valid())
}

func TestKeyframeYAML(t *testing.T) {
	var k Keyframe
	require.NoError(t, yaml.Unmarshal([]byte("position: 12\nvalue: 0.5\ntype: easeInOutQuintic\n"), &k))
	assert.Equal(t, Keyframe{Position: 12, Value: 0.5, Type: EaseInOutQuintic}, k)

	err := yaml.Unmarshal([]byte("position: 1\ntype: sideways\n"), &k)
	assert.Error(t, err)
}
