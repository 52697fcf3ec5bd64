package animation

import "github.com/ivlev/keyframes/internal/keyframe"

// TrimIn moves the start of the trim window. Keyframes before in are
// replaced by one keyframe at in holding the value the curve had there.
func (m *Model) TrimIn(in int) {
	m.trim.In = in
	m.bulk(func(i int, seq *keyframe.Sequence) {
		first, ok := seq.At(0)
		if !ok || first.Position >= in {
			return
		}
		value := m.sample(i, in)
		cut := 0
		for k, ok := seq.At(cut); ok && k.Position < in; k, ok = seq.At(cut) {
			cut++
		}
		t := keyframe.Linear
		if k, ok := seq.At(cut); ok {
			t = k.Type
		}
		for ; cut > 0; cut-- {
			seq.RemoveAt(0)
		}
		if !seq.Contains(in) {
			seq.Insert(keyframe.Keyframe{Position: in, Value: value, Type: t})
		}
	})
}

// TrimOut moves the end of the trim window. Keyframes after out are
// replaced by one keyframe at out holding the value the curve had there.
func (m *Model) TrimOut(out int) {
	m.trim.Out = out
	m.bulk(func(i int, seq *keyframe.Sequence) {
		last, ok := seq.At(seq.Len() - 1)
		if !ok || last.Position <= out {
			return
		}
		value := m.sample(i, out)
		keep := seq.Len()
		for k, ok := seq.At(keep - 1); ok && k.Position > out; k, ok = seq.At(keep - 1) {
			keep--
		}
		// The segment entering out is the one that was cut.
		crossing, _ := seq.At(keep)
		for seq.Len() > keep {
			seq.RemoveAt(seq.Len() - 1)
		}
		if !seq.Contains(out) {
			seq.Insert(keyframe.Keyframe{Position: out, Value: value, Type: crossing.Type})
		}
	})
}

// ShiftIn follows a move of the effect's in point by delta frames: keyframes
// shift by -delta so they stay where they were in absolute time, and the trim
// window is re-read from the effect.
func (m *Model) ShiftIn(delta int) {
	if m.effect != nil {
		m.trim = m.effect.TrimWindow()
	}
	for i, seq := range m.seqs {
		i := i
		if seq.Len() == 0 {
			continue
		}
		seq.Shift(-delta)
		m.updateAll(i)
		m.commit(i)
		m.emit(func(o Observer) { o.KeyframesChanged(i) })
	}
	m.flush()
}
