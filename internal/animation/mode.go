package animation

import "github.com/ivlev/keyframes/internal/keyframe"

// AdvancedKeyframesInUse reports whether any parameter has more than two
// keyframes or a keyframe with a type other than Linear.
func (m *Model) AdvancedKeyframesInUse() bool {
	for _, seq := range m.seqs {
		if seq.Len() > 2 {
			return true
		}
		for _, k := range seq.Keyframes() {
			if k.Type != keyframe.Linear {
				return true
			}
		}
	}
	return false
}

// SimpleKeyframesInUse reports whether at least one parameter is animated
// and every animated parameter is exactly two linear end keyframes.
func (m *Model) SimpleKeyframesInUse() bool {
	animated := 0
	for _, seq := range m.seqs {
		if seq.Len() < 2 {
			continue
		}
		if seq.Len() != 2 {
			return false
		}
		for _, k := range seq.Keyframes() {
			if k.Type != keyframe.Linear {
				return false
			}
		}
		animated++
	}
	return animated > 0
}

// RemoveAdvancedKeyframes reduces every parameter to its first and last
// keyframe, both Linear. Dropped keyframes are not kept anywhere.
func (m *Model) RemoveAdvancedKeyframes() {
	m.bulk(func(i int, seq *keyframe.Sequence) {
		seq.CollapseToEnds(keyframe.Linear)
	})
}

// RemoveSimpleKeyframes clears every parameter holding at most two
// keyframes, leaving it at the constant value of its first keyframe.
// Parameters with more keyframes are left alone.
func (m *Model) RemoveSimpleKeyframes() {
	m.bulk(func(i int, seq *keyframe.Sequence) {
		if seq.Len() <= 2 {
			seq.Clear()
		}
	})
}

// bulk applies fn to every sequence inside a reset transition.
func (m *Model) bulk(fn func(i int, seq *keyframe.Sequence)) {
	m.each(Observer.AboutToReset)
	for i, seq := range m.seqs {
		fn(i, seq)
		m.updateAll(i)
		m.commit(i)
	}
	m.each(Observer.Reset)
}
