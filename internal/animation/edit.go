package animation

import (
	"github.com/ivlev/keyframes/internal/keyframe"
)

// AddKeyframe inserts a keyframe, or overwrites the value and type of the
// keyframe already at position. Every ganged parameter gains a keyframe at
// the same position carrying its own current value there. Values are limited
// to the keyframe's value window. Types a parameter cannot interpolate fall
// back to Linear.
func (m *Model) AddKeyframe(i int, value float64, position int, t keyframe.InterpolationType) bool {
	if _, _, ok := m.parameter(i); !ok || !t.Valid() || !m.trim.Contains(position) {
		return false
	}
	values := make(map[int]float64)
	for _, s := range m.gangs.siblings(i) {
		values[s] = m.sample(s, position)
	}
	p, _, _ := m.parameter(i)
	m.insert(i, keyframe.Keyframe{Position: position, Value: p.Values().Clamp(value), Type: t})
	for _, s := range m.gangs.siblings(i) {
		m.insert(s, keyframe.Keyframe{Position: position, Value: values[s], Type: t})
	}
	m.flush()
	return true
}

// AddKeyframeAt splits the curve at position with a keyframe carrying the
// value the curve already has there. A keyframe already at position is left
// alone.
func (m *Model) AddKeyframeAt(i, position int) bool {
	if _, _, ok := m.parameter(i); !ok || !m.trim.Contains(position) {
		return false
	}
	for _, j := range m.withGang(i) {
		_, seq, _ := m.parameter(j)
		if seq.Contains(position) {
			continue
		}
		m.insert(j, keyframe.Keyframe{Position: position, Value: m.sample(j, position), Type: splitType(seq, position)})
	}
	m.flush()
	return true
}

// splitType is the type a keyframe inserted at position takes: that of the
// segment it splits, else that of the nearest end.
func splitType(seq *keyframe.Sequence, position int) keyframe.InterpolationType {
	if next, ok := seq.Next(position); ok {
		k, _ := seq.At(seq.Index(next))
		return k.Type
	}
	if prev, ok := seq.Previous(position); ok {
		k, _ := seq.At(seq.Index(prev))
		return k.Type
	}
	return keyframe.Linear
}

func (m *Model) insert(i int, k keyframe.Keyframe) {
	p, seq, _ := m.parameter(i)
	if !p.IsCurve && !k.Type.IsBasic() {
		k.Type = keyframe.Linear
	}
	index, added := seq.Insert(k)
	if window, ok := m.propagate.ValueWindow(seq, m.scope(p), index); ok {
		seq.SetValue(index, window.Clamp(k.Value))
	}
	m.update(i, index)
	m.commit(i)
	if added {
		m.emit(func(o Observer) { o.KeyframeAdded(p.PropertyName, k.Position) })
	} else {
		m.emit(func(o Observer) { o.KeyframesChanged(i) })
	}
}

// Remove deletes a keyframe and the keyframes at the same position on every
// ganged parameter. Nothing is removed when any of them would drop below its
// minimum keyframe count.
func (m *Model) Remove(i, keyframeIndex int) bool {
	_, seq, ok := m.parameter(i)
	if !ok {
		return false
	}
	k, ok := seq.At(keyframeIndex)
	if !ok {
		return false
	}
	targets := m.gangAt(i, k.Position)
	for _, t := range targets {
		p, s, _ := m.parameter(t.param)
		if s.Len() <= p.MinKeyframes() {
			return false
		}
	}
	for _, t := range targets {
		p, s, _ := m.parameter(t.param)
		s.RemoveAt(t.index)
		m.update(t.param, t.index)
		m.commit(t.param)
		m.emit(func(o Observer) { o.KeyframeRemoved(p.PropertyName, k.Position) })
	}
	m.flush()
	return true
}

// SetKeyframePosition moves a keyframe, re-sorting the sequence if it passes
// a neighbour. Moving onto an occupied position or outside the trim window is
// rejected for the whole gang.
func (m *Model) SetKeyframePosition(i, keyframeIndex, position int) bool {
	targets, ok := m.prepareMove(i, keyframeIndex, position)
	if !ok {
		return false
	}
	for _, t := range targets {
		t := t
		j := m.relocate(t, position)
		m.update(t.param, t.index)
		m.update(t.param, j)
		m.commit(t.param)
		m.emit(func(o Observer) { o.KeyframesChanged(t.param) })
	}
	m.flush()
	return true
}

// SetKeyframeValuePosition moves a keyframe and sets its value in one step.
// Ganged parameters follow the move; only i takes the new value.
func (m *Model) SetKeyframeValuePosition(i, keyframeIndex int, value float64, position int) bool {
	targets, ok := m.prepareMove(i, keyframeIndex, position)
	if !ok {
		return false
	}
	for _, t := range targets {
		t := t
		j := m.relocate(t, position)
		if t.param == i {
			p, seq, _ := m.parameter(i)
			window, _ := m.propagate.ValueWindow(seq, m.scope(p), j)
			seq.SetValue(j, window.Clamp(value))
		}
		m.update(t.param, t.index)
		m.update(t.param, j)
		m.commit(t.param)
		m.emit(func(o Observer) { o.KeyframesChanged(t.param) })
	}
	m.flush()
	return true
}

type gangKeyframe struct {
	param int
	index int
}

// gangAt returns keyframe coordinates at position for i and each sibling
// that has a keyframe there. The first entry is always i.
func (m *Model) gangAt(i, position int) []gangKeyframe {
	var targets []gangKeyframe
	for _, j := range m.withGang(i) {
		_, seq, _ := m.parameter(j)
		if index := seq.Index(position); index >= 0 {
			targets = append(targets, gangKeyframe{param: j, index: index})
		}
	}
	return targets
}

func (m *Model) prepareMove(i, keyframeIndex, position int) ([]gangKeyframe, bool) {
	_, seq, ok := m.parameter(i)
	if !ok || !m.trim.Contains(position) {
		return nil, false
	}
	k, ok := seq.At(keyframeIndex)
	if !ok {
		return nil, false
	}
	targets := m.gangAt(i, k.Position)
	if k.Position == position {
		return targets, true
	}
	for _, t := range targets {
		_, s, _ := m.parameter(t.param)
		if s.Contains(position) {
			return nil, false
		}
	}
	return targets, true
}

// relocate moves a prepared keyframe and returns its new index. Callers
// refresh bounds around both t.index and the new index.
func (m *Model) relocate(t gangKeyframe, position int) int {
	_, seq, _ := m.parameter(t.param)
	j, _ := seq.Move(t.index, position)
	return j
}

// SetInterpolation changes the type of the segment entering a keyframe, on
// the keyframe and on its ganged counterparts. Parameters without curve
// support only accept Discrete and Linear.
func (m *Model) SetInterpolation(i, keyframeIndex int, t keyframe.InterpolationType) bool {
	_, seq, ok := m.parameter(i)
	if !ok || !t.Valid() {
		return false
	}
	k, ok := seq.At(keyframeIndex)
	if !ok {
		return false
	}
	targets := m.gangAt(i, k.Position)
	for _, g := range targets {
		if p, _, _ := m.parameter(g.param); !p.IsCurve && !t.IsBasic() {
			return false
		}
	}
	for _, g := range targets {
		g := g
		_, s, _ := m.parameter(g.param)
		s.SetType(g.index, t)
		m.update(g.param, g.index)
		m.commit(g.param)
		m.emit(func(o Observer) { o.KeyframesChanged(g.param) })
	}
	m.flush()
	return true
}

// SetKeyframeValue changes the value of one keyframe, limited to the window
// its bounds allow. Values are not structural and are not ganged.
func (m *Model) SetKeyframeValue(i, keyframeIndex int, value float64) bool {
	_, seq, ok := m.parameter(i)
	if !ok || keyframeIndex < 0 || keyframeIndex >= seq.Len() {
		return false
	}
	m.setValue(i, keyframeIndex, value)
	m.commit(i)
	m.emit(func(o Observer) { o.KeyframesChanged(i) })
	m.flush()
	return true
}

func (m *Model) setValue(i, keyframeIndex int, value float64) {
	p, seq, _ := m.parameter(i)
	window, _ := m.propagate.ValueWindow(seq, m.scope(p), keyframeIndex)
	seq.SetValue(keyframeIndex, window.Clamp(value))
	m.update(i, keyframeIndex)
}
