package renderer

import (
	"math"

	"github.com/ivlev/keyframes/internal/keyframe"
)

// Sampler evaluates keyframe curves. It is the host-side evaluator handed
// to the animation model for splitting and trimming segments.
type Sampler struct{}

// Sample calculates the value at a given frame by interpolating between keyframes
func (Sampler) Sample(keys []keyframe.Keyframe, position int) float64 {
	return InterpolateKeyframes(keys, float64(position))
}

// InterpolateKeyframes calculates the curve value at a given frame. Keys must
// be in position order.
func InterpolateKeyframes(keys []keyframe.Keyframe, position float64) float64 {
	if len(keys) == 0 {
		return 0
	}

	// If before first keyframe, use first keyframe
	if position <= float64(keys[0].Position) {
		return keys[0].Value
	}

	// If after last keyframe, use last keyframe
	last := len(keys) - 1
	if position >= float64(keys[last].Position) {
		return keys[last].Value
	}

	// Find surrounding keyframes
	next := 1
	for next < last && position >= float64(keys[next].Position) {
		next++
	}
	prev := next - 1
	prevKf, nextKf := keys[prev], keys[next]

	// Calculate interpolation factor (0.0 to 1.0)
	frameDelta := float64(nextKf.Position - prevKf.Position)
	t := (position - float64(prevKf.Position)) / frameDelta

	switch typ := nextKf.Type; {
	case typ == keyframe.Discrete:
		return prevKf.Value
	case typ.IsSmooth():
		before, after := prevKf.Value, nextKf.Value
		if prev > 0 {
			before = keys[prev-1].Value
		}
		if next < last {
			after = keys[next+1].Value
		}
		return cardinal(before, prevKf.Value, nextKf.Value, after, t, tension(typ))
	default:
		return lerp(prevKf.Value, nextKf.Value, Ease(typ, t))
	}
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// tension of the cardinal spline behind each smooth variant
func tension(t keyframe.InterpolationType) float64 {
	switch t {
	case keyframe.SmoothLoose:
		return -0.5
	case keyframe.SmoothTight:
		return 0.5
	default:
		return 0
	}
}

// cardinal evaluates a cardinal spline segment from p1 to p2. Tension 0 is Catmull-Rom.
func cardinal(p0, p1, p2, p3, t, c float64) float64 {
	s := (1 - c) / 2
	m1 := s * (p2 - p0)
	m2 := s * (p3 - p1)
	t2, t3 := t*t, t*t*t
	return (2*t3-3*t2+1)*p1 + (t3-2*t2+t)*m1 + (-2*t3+3*t2)*p2 + (t3-t2)*m2
}

// Ease maps linear progress t in [0, 1] through the easing curve of typ.
// Types without an easing curve return t unchanged.
func Ease(typ keyframe.InterpolationType, t float64) float64 {
	switch typ {
	case keyframe.EaseInSinusoidal:
		return 1 - math.Cos(t*math.Pi/2)
	case keyframe.EaseOutSinusoidal:
		return math.Sin(t * math.Pi / 2)
	case keyframe.EaseInOutSinusoidal:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case keyframe.EaseInQuadratic:
		return easeIn(t, 2)
	case keyframe.EaseOutQuadratic:
		return easeOut(t, 2)
	case keyframe.EaseInOutQuadratic:
		return easeInOut(t, 2)
	case keyframe.EaseInCubic:
		return easeIn(t, 3)
	case keyframe.EaseOutCubic:
		return easeOut(t, 3)
	case keyframe.EaseInOutCubic:
		return easeInOut(t, 3)
	case keyframe.EaseInQuartic:
		return easeIn(t, 4)
	case keyframe.EaseOutQuartic:
		return easeOut(t, 4)
	case keyframe.EaseInOutQuartic:
		return easeInOut(t, 4)
	case keyframe.EaseInQuintic:
		return easeIn(t, 5)
	case keyframe.EaseOutQuintic:
		return easeOut(t, 5)
	case keyframe.EaseInOutQuintic:
		return easeInOut(t, 5)
	case keyframe.EaseInExponential:
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	case keyframe.EaseOutExponential:
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	case keyframe.EaseInOutExponential:
		switch {
		case t == 0, t == 1:
			return t
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2
		default:
			return (2 - math.Pow(2, -20*t+10)) / 2
		}
	case keyframe.EaseInCircular:
		return 1 - math.Sqrt(1-t*t)
	case keyframe.EaseOutCircular:
		return math.Sqrt(1 - (t-1)*(t-1))
	case keyframe.EaseInOutCircular:
		if t < 0.5 {
			return (1 - math.Sqrt(1-4*t*t)) / 2
		}
		return (math.Sqrt(1-pow(-2*t+2, 2)) + 1) / 2
	case keyframe.EaseInBack:
		return backIn(t)
	case keyframe.EaseOutBack:
		return 1 - backIn(1-t)
	case keyframe.EaseInOutBack:
		if t < 0.5 {
			return backIn(2*t) / 2
		}
		return (2 - backIn(2-2*t)) / 2
	case keyframe.EaseInElastic:
		return 1 - elasticOut(1-t)
	case keyframe.EaseOutElastic:
		return elasticOut(t)
	case keyframe.EaseInOutElastic:
		if t < 0.5 {
			return (1 - elasticOut(1-2*t)) / 2
		}
		return (1 + elasticOut(2*t-1)) / 2
	case keyframe.EaseInBounce:
		return 1 - bounceOut(1-t)
	case keyframe.EaseOutBounce:
		return bounceOut(t)
	case keyframe.EaseInOutBounce:
		if t < 0.5 {
			return (1 - bounceOut(1-2*t)) / 2
		}
		return (1 + bounceOut(2*t-1)) / 2
	default:
		return t
	}
}

func easeIn(t float64, n int) float64 {
	return pow(t, n)
}

func easeOut(t float64, n int) float64 {
	return 1 - pow(1-t, n)
}

func easeInOut(t float64, n int) float64 {
	if t < 0.5 {
		return pow(2, n-1) * pow(t, n)
	}
	return 1 - pow(-2*t+2, n)/2
}

func backIn(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return c3*t*t*t - c1*t*t
}

func elasticOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*(2*math.Pi)/3) + 1
}

func bounceOut(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
