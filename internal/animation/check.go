package animation

import (
	"errors"
	"fmt"
	"slices"
)

// Check verifies the model's invariants and returns every violation found,
// joined. Ordering, bounds containment, value limits and ganged position
// alignment are covered.
func (m *Model) Check() error {
	var errs []error
	for i, seq := range m.seqs {
		p, _ := m.reg.At(i)
		values := p.Values()
		for j := 0; j < seq.Len(); j++ {
			k, _ := seq.At(j)
			b, _ := seq.Bounds(j)
			if prev, ok := seq.At(j - 1); ok && b.MinFrame <= prev.Position {
				errs = append(errs, fmt.Errorf("%s: keyframe %d may move onto its predecessor (min frame %d)",
					p.PropertyName, j, b.MinFrame))
			}
			if next, ok := seq.At(j + 1); ok {
				if next.Position <= k.Position {
					errs = append(errs, fmt.Errorf("%s: keyframe %d at %d is not before keyframe %d at %d",
						p.PropertyName, j, k.Position, j+1, next.Position))
				}
				if b.MaxFrame >= next.Position {
					errs = append(errs, fmt.Errorf("%s: keyframe %d may move onto its successor (max frame %d)",
						p.PropertyName, j, b.MaxFrame))
				}
			}
			if k.Position < b.MinFrame || k.Position > b.MaxFrame {
				errs = append(errs, fmt.Errorf("%s: keyframe %d at %d outside frame window [%d, %d]",
					p.PropertyName, j, k.Position, b.MinFrame, b.MaxFrame))
			}
			if k.Value < b.LowestValue || k.Value > b.HighestValue {
				errs = append(errs, fmt.Errorf("%s: keyframe %d value %g outside value window [%g, %g]",
					p.PropertyName, j, k.Value, b.LowestValue, b.HighestValue))
			}
			if b.LowestValue < values.Min || b.HighestValue > values.Max {
				errs = append(errs, fmt.Errorf("%s: keyframe %d value window [%g, %g] exceeds parameter range [%g, %g]",
					p.PropertyName, j, b.LowestValue, b.HighestValue, values.Min, values.Max))
			}
		}
		for _, s := range m.gangs.siblings(i) {
			if s < i {
				continue
			}
			sp, _ := m.reg.At(s)
			if !slices.Equal(seq.Positions(), m.seqs[s].Positions()) {
				errs = append(errs, fmt.Errorf("ganged %s and %s have different keyframe positions",
					p.PropertyName, sp.PropertyName))
			}
		}
	}
	return errors.Join(errs...)
}
