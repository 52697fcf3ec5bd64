package animation

import (
	"github.com/ivlev/keyframes/internal/constraint"
	"github.com/ivlev/keyframes/internal/keyframe"
	"github.com/ivlev/keyframes/internal/registry"
)

// KeyframeInfo is everything the model knows about one keyframe.
type KeyframeInfo struct {
	keyframe.Keyframe
	keyframe.Bounds

	// PreviousType is the type of the preceding keyframe. It is only
	// meaningful when HasPrevious is set.
	PreviousType keyframe.InterpolationType
	HasPrevious  bool
}

func (m *Model) ParameterCount() int {
	return m.reg.Len()
}

func (m *Model) Parameter(i int) (registry.Parameter, bool) {
	p, _, ok := m.parameter(i)
	return p, ok
}

// ParameterIndex returns the index of the parameter backed by property, or -1.
func (m *Model) ParameterIndex(property string) int {
	return m.reg.Index(property)
}

// KeyframeCount returns the number of keyframes of a parameter, or -1 for an
// unknown parameter.
func (m *Model) KeyframeCount(i int) int {
	_, seq, ok := m.parameter(i)
	if !ok {
		return -1
	}
	return seq.Len()
}

func (m *Model) Keyframe(i, keyframeIndex int) (KeyframeInfo, bool) {
	_, seq, ok := m.parameter(i)
	if !ok {
		return KeyframeInfo{}, false
	}
	k, ok := seq.At(keyframeIndex)
	if !ok {
		return KeyframeInfo{}, false
	}
	b, _ := seq.Bounds(keyframeIndex)
	prev, hasPrev := seq.PreviousType(keyframeIndex)
	return KeyframeInfo{Keyframe: k, Bounds: b, PreviousType: prev, HasPrevious: hasPrev}, true
}

// Keyframes returns a copy of a parameter's keyframes.
func (m *Model) Keyframes(i int) []keyframe.Keyframe {
	_, seq, ok := m.parameter(i)
	if !ok {
		return nil
	}
	return seq.Keyframes()
}

// KeyframeIndex returns the index of the keyframe at position, or -1.
func (m *Model) KeyframeIndex(i, position int) int {
	_, seq, ok := m.parameter(i)
	if !ok {
		return -1
	}
	return seq.Index(position)
}

func (m *Model) IsKeyframe(i, position int) bool {
	return m.KeyframeIndex(i, position) >= 0
}

// PreviousKeyframePosition returns the position of the nearest keyframe
// strictly before current. Keyframes may sit at negative positions after
// ShiftIn, so absence is reported by ok rather than a sentinel position.
func (m *Model) PreviousKeyframePosition(i, current int) (position int, ok bool) {
	_, seq, valid := m.parameter(i)
	if !valid {
		return 0, false
	}
	return seq.Previous(current)
}

// NextKeyframePosition returns the position of the nearest keyframe strictly
// after current.
func (m *Model) NextKeyframePosition(i, current int) (position int, ok bool) {
	_, seq, valid := m.parameter(i)
	if !valid {
		return 0, false
	}
	return seq.Next(current)
}

// ValueRange returns the lowest and highest keyframe value of a parameter,
// for scaling a curve display. A parameter without keyframes reports its
// static value and false.
func (m *Model) ValueRange(i int) (lowest, highest float64, ok bool) {
	_, seq, valid := m.parameter(i)
	if !valid {
		return 0, 0, false
	}
	return seq.ValueRange()
}

// ValueAt samples a parameter at position.
func (m *Model) ValueAt(i, position int) (float64, bool) {
	if _, _, ok := m.parameter(i); !ok {
		return 0, false
	}
	return m.sample(i, position), true
}

// Trim returns the active trim window.
func (m *Model) Trim() constraint.Window {
	return m.trim
}
