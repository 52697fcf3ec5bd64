// Package constraint recomputes the editing windows of keyframes: how far a
// keyframe may move without crossing a neighbour or leaving the trim window,
// and which values it may take.
package constraint

import (
	"math"

	"github.com/ivlev/keyframes/internal/keyframe"
)

// Window is the valid frame range of an effect instance. An Out below In
// means the host reported no window and positions are unbounded.
type Window struct {
	In  int `yaml:"in"`
	Out int `yaml:"out"`
}

func (w Window) Valid() bool {
	return w.Out >= w.In
}

// Contains reports whether position lies inside the window. Every position
// lies inside an invalid window.
func (w Window) Contains(position int) bool {
	return !w.Valid() || (position >= w.In && position <= w.Out)
}

// Range is a closed value interval.
type Range struct {
	Min float64
	Max float64
}

// Normalize swaps inverted bounds.
func (r Range) Normalize() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

func (r Range) Clamp(v float64) float64 {
	r = r.Normalize()
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Scope carries the per-parameter inputs of a recomputation.
type Scope struct {
	Values Range
	Trim   Window
	Curve  bool
}

// Propagator recomputes keyframe bounds. Only the keyframe named in Update
// and its immediate neighbours are touched, so callers must invoke it after
// every structural change, including on the neighbours of a removed keyframe.
type Propagator struct {
	Policies Policies
}

// Update recomputes keyframes i-1, i and i+1 of seq. Indices outside the
// sequence are skipped, which lets callers pass the former index of a
// removed keyframe.
func (p Propagator) Update(seq *keyframe.Sequence, scope Scope, i int) {
	for j := i - 1; j <= i+1; j++ {
		if b, ok := p.Compute(seq, scope, j); ok {
			seq.SetBounds(j, b)
		}
	}
}

// UpdateAll recomputes every keyframe of seq. It is used after loads and
// trim changes, not as part of ordinary edits.
func (p Propagator) UpdateAll(seq *keyframe.Sequence, scope Scope) {
	for j := 0; j < seq.Len(); j++ {
		if b, ok := p.Compute(seq, scope, j); ok {
			seq.SetBounds(j, b)
		}
	}
}

// Compute returns the bounds keyframe i should have.
func (p Propagator) Compute(seq *keyframe.Sequence, scope Scope, i int) (keyframe.Bounds, bool) {
	k, ok := seq.At(i)
	if !ok {
		return keyframe.Bounds{}, false
	}
	prev, hasPrev := seq.At(i - 1)
	next, hasNext := seq.At(i + 1)

	var b keyframe.Bounds
	switch {
	case hasPrev:
		b.MinFrame = prev.Position + 1
	case scope.Trim.Valid():
		b.MinFrame = scope.Trim.In
	default:
		b.MinFrame = 0
	}
	switch {
	case hasNext:
		b.MaxFrame = next.Position - 1
	case scope.Trim.Valid():
		b.MaxFrame = scope.Trim.Out
	default:
		b.MaxFrame = math.MaxInt32
	}
	// A host may hand over keyframes outside its own trim window.
	b.MinFrame = min(b.MinFrame, k.Position)
	b.MaxFrame = max(b.MaxFrame, k.Position)

	window := p.valueWindow(scope, k, prev, hasPrev, next, hasNext)
	v := scope.Values.Clamp(k.Value)
	b.LowestValue = math.Min(window.Min, v)
	b.HighestValue = math.Max(window.Max, v)
	return b, true
}

// ValueWindow returns the values keyframe i may be set to. Unlike the bounds
// from Compute it is not widened to include the keyframe's current value.
func (p Propagator) ValueWindow(seq *keyframe.Sequence, scope Scope, i int) (Range, bool) {
	k, ok := seq.At(i)
	if !ok {
		return Range{}, false
	}
	prev, hasPrev := seq.At(i - 1)
	next, hasNext := seq.At(i + 1)
	return p.valueWindow(scope, k, prev, hasPrev, next, hasNext), true
}

func (p Propagator) valueWindow(scope Scope, k, prev keyframe.Keyframe, hasPrev bool, next keyframe.Keyframe, hasNext bool) Range {
	values := scope.Values.Normalize()
	if !scope.Curve {
		return values
	}
	policy := p.Policies[k.Type]
	if policy == nil {
		return values
	}
	n := Neighborhood{Current: k}
	if hasPrev {
		n.Prev = &prev
	}
	if hasNext {
		n.Next = &next
	}
	r, ok := policy(n)
	if !ok {
		return values
	}
	r = r.Normalize()
	narrowed := Range{Min: math.Max(values.Min, r.Min), Max: math.Min(values.Max, r.Max)}
	if narrowed.Min > narrowed.Max {
		return values
	}
	return narrowed
}
