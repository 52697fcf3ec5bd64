package constraint

import "github.com/ivlev/keyframes/internal/keyframe"

// Neighborhood is the view a value policy gets of a keyframe. Prev and Next
// are nil at the sequence ends.
type Neighborhood struct {
	Prev    *keyframe.Keyframe
	Current keyframe.Keyframe
	Next    *keyframe.Keyframe
}

// Policy narrows the value window of a keyframe. Returning false leaves the
// parameter's global range in place.
type Policy func(n Neighborhood) (Range, bool)

// Policies maps an interpolation type to its narrowing rule. Types without
// an entry are not narrowed.
type Policies map[keyframe.InterpolationType]Policy

// BetweenNeighbors keeps a keyframe's value inside the span of the values
// around it, so the curve through it cannot overshoot its neighbours.
func BetweenNeighbors(n Neighborhood) (Range, bool) {
	if n.Prev == nil || n.Next == nil {
		return Range{}, false
	}
	return Range{Min: n.Prev.Value, Max: n.Next.Value}.Normalize(), true
}

// Monotonic applies BetweenNeighbors to every easing family that never
// overshoots its endpoints.
func Monotonic() Policies {
	policies := Policies{}
	for _, t := range keyframe.InterpolationTypes() {
		switch {
		case t.IsBasic(), t.IsSmooth():
		case t >= keyframe.EaseInBack && t <= keyframe.EaseInOutElastic:
		default:
			policies[t] = BetweenNeighbors
		}
	}
	return policies
}

// PoliciesByName resolves a configured policy set. Unknown names yield no narrowing.
func PoliciesByName(name string) (Policies, bool) {
	switch name {
	case "", "none":
		return nil, true
	case "monotonic":
		return Monotonic(), true
	default:
		return nil, false
	}
}
