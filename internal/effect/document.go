// Package effect is a YAML-backed effect instance: the property values,
// keyframe animations and trim window a host application stores for one
// applied effect.
package effect

import (
	"github.com/ivlev/keyframes/internal/constraint"
	"github.com/ivlev/keyframes/internal/keyframe"
)

// Document represents one effect instance
type Document struct {
	Version    string     `yaml:"version"`
	Service    string     `yaml:"service"` // Effect kind, looked up in the metadata
	In         int        `yaml:"in"`
	Out        int        `yaml:"out"`
	Properties []Property `yaml:"properties"`
}

// Property is a named effect property with an optional animation
type Property struct {
	Name      string              `yaml:"name"`
	Value     float64             `yaml:"value"`               // Constant used while not animated
	Keyframes []keyframe.Keyframe `yaml:"keyframes,omitempty"` // Position-ordered animation
}

// NewDocument creates an empty effect instance spanning [in, out]
func NewDocument(service string, in, out int) *Document {
	return &Document{
		Version: "1.0",
		Service: service,
		In:      in,
		Out:     out,
	}
}

func (d *Document) property(name string) *Property {
	for i := range d.Properties {
		if d.Properties[i].Name == name {
			return &d.Properties[i]
		}
	}
	return nil
}

// ensure returns the property called name, adding it if missing
func (d *Document) ensure(name string) *Property {
	if p := d.property(name); p != nil {
		return p
	}
	d.Properties = append(d.Properties, Property{Name: name})
	return &d.Properties[len(d.Properties)-1]
}

func (d *Document) Kind() string {
	return d.Service
}

// AnimatableProperties lists every property the instance declares
func (d *Document) AnimatableProperties() []string {
	names := make([]string, len(d.Properties))
	for i, p := range d.Properties {
		names[i] = p.Name
	}
	return names
}

// Animation returns a copy of the keyframes of a property
func (d *Document) Animation(name string) []keyframe.Keyframe {
	p := d.property(name)
	if p == nil {
		return nil
	}
	return append([]keyframe.Keyframe(nil), p.Keyframes...)
}

func (d *Document) SetAnimation(name string, keys []keyframe.Keyframe) {
	p := d.ensure(name)
	if len(keys) == 0 {
		p.Keyframes = nil
		return
	}
	p.Keyframes = append(p.Keyframes[:0], keys...)
}

func (d *Document) Value(name string) float64 {
	if p := d.property(name); p != nil {
		return p.Value
	}
	return 0
}

func (d *Document) SetValue(name string, value float64) {
	d.ensure(name).Value = value
}

// TrimWindow returns the instance's frame range. Keyframe positions are
// relative to the document, not to the host timeline.
func (d *Document) TrimWindow() constraint.Window {
	return constraint.Window{In: d.In, Out: d.Out}
}
