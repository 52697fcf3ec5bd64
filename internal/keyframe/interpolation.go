package keyframe

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// InterpolationType identifies the curve shape of the segment that arrives
// into a keyframe from its predecessor.
type InterpolationType int

const (
	Discrete InterpolationType = iota
	Linear
	SmoothLoose
	SmoothNatural
	SmoothTight
	EaseInSinusoidal
	EaseOutSinusoidal
	EaseInOutSinusoidal
	EaseInQuadratic
	EaseOutQuadratic
	EaseInOutQuadratic
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuartic
	EaseOutQuartic
	EaseInOutQuartic
	EaseInQuintic
	EaseOutQuintic
	EaseInOutQuintic
	EaseInExponential
	EaseOutExponential
	EaseInOutExponential
	EaseInCircular
	EaseOutCircular
	EaseInOutCircular
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce

	interpolationCount
)

var interpolationNames = [interpolationCount]string{
	"discrete",
	"linear",
	"smoothLoose",
	"smoothNatural",
	"smoothTight",
	"easeInSinusoidal",
	"easeOutSinusoidal",
	"easeInOutSinusoidal",
	"easeInQuadratic",
	"easeOutQuadratic",
	"easeInOutQuadratic",
	"easeInCubic",
	"easeOutCubic",
	"easeInOutCubic",
	"easeInQuartic",
	"easeOutQuartic",
	"easeInOutQuartic",
	"easeInQuintic",
	"easeOutQuintic",
	"easeInOutQuintic",
	"easeInExponential",
	"easeOutExponential",
	"easeInOutExponential",
	"easeInCircular",
	"easeOutCircular",
	"easeInOutCircular",
	"easeInBack",
	"easeOutBack",
	"easeInOutBack",
	"easeInElastic",
	"easeOutElastic",
	"easeInOutElastic",
	"easeInBounce",
	"easeOutBounce",
	"easeInOutBounce",
}

// InterpolationTypes returns every defined interpolation type in declaration order.
func InterpolationTypes() []InterpolationType {
	types := make([]InterpolationType, 0, interpolationCount)
	for t := Discrete; t < interpolationCount; t++ {
		types = append(types, t)
	}
	return types
}

// Valid reports whether t is one of the defined identifiers.
func (t InterpolationType) Valid() bool {
	return t >= Discrete && t < interpolationCount
}

// IsBasic reports whether t is usable by parameters without curve support.
func (t InterpolationType) IsBasic() bool {
	return t == Discrete || t == Linear
}

// IsSmooth reports whether t is one of the spline variants, which look at
// keyframes beyond the two that bound the segment.
func (t InterpolationType) IsSmooth() bool {
	return t == SmoothLoose || t == SmoothNatural || t == SmoothTight
}

func (t InterpolationType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("InterpolationType(%d)", int(t))
	}
	return interpolationNames[t]
}

// ParseInterpolation resolves a name produced by String.
func ParseInterpolation(name string) (InterpolationType, error) {
	for i, n := range interpolationNames {
		if n == name {
			return InterpolationType(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown interpolation type: %s", name)
}

func (t InterpolationType) MarshalYAML() (interface{}, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid interpolation type %d", int(t))
	}
	return t.String(), nil
}

func (t *InterpolationType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseInterpolation(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
