// Package registry holds the animatable parameters of one effect instance.
package registry

import (
	"errors"
	"fmt"

	"github.com/ivlev/keyframes/internal/constraint"
)

var (
	ErrNoParameters = errors.New("no animatable parameters")
	ErrUnknownKind  = errors.New("unknown effect kind")
)

// Descriptor describes one parameter as declared by a metadata source.
type Descriptor struct {
	Name     string   `yaml:"name"`
	Property string   `yaml:"property"`
	IsCurve  bool     `yaml:"curve"`
	Minimum  float64  `yaml:"minimum"`
	Maximum  float64  `yaml:"maximum"`
	Ganged   []string `yaml:"ganged,omitempty"`
}

// MetadataSource describes the parameters of an effect kind.
type MetadataSource interface {
	DescribeParameters(kind string) ([]Descriptor, error)
}

// Parameter is an animatable channel of an effect.
type Parameter struct {
	Index        int
	Name         string
	PropertyName string
	IsCurve      bool
	MinValue     float64
	MaxValue     float64

	ganged []string
}

// Values returns the global value bounds of the parameter.
func (p Parameter) Values() constraint.Range {
	return constraint.Range{Min: p.MinValue, Max: p.MaxValue}.Normalize()
}

// MinKeyframes is the count below which removal is refused: a plain scalar
// keeps one keyframe, a curve keeps the two ends of its range.
func (p Parameter) MinKeyframes() int {
	if p.IsCurve {
		return 2
	}
	return 1
}

// Registry is the ordered parameter list of a loaded effect. It does not
// change after Load.
type Registry struct {
	params     []Parameter
	byProperty map[string]int
}

// Load cross-references the properties an effect declares against the
// descriptors of its kind. The registry is empty, never nil, when it fails.
func Load(src MetadataSource, kind string, declared []string) (*Registry, error) {
	r := &Registry{byProperty: map[string]int{}}
	descriptors, err := src.DescribeParameters(kind)
	if err != nil {
		return r, fmt.Errorf("describe %q: %w", kind, err)
	}

	present := make(map[string]bool, len(declared))
	for _, name := range declared {
		present[name] = true
	}
	for _, d := range descriptors {
		if !present[d.Property] {
			continue
		}
		if _, dup := r.byProperty[d.Property]; dup {
			continue
		}
		p := Parameter{
			Index:        len(r.params),
			Name:         d.Name,
			PropertyName: d.Property,
			IsCurve:      d.IsCurve,
			MinValue:     d.Minimum,
			MaxValue:     d.Maximum,
			ganged:       d.Ganged,
		}
		if p.Name == "" {
			p.Name = d.Property
		}
		r.byProperty[p.PropertyName] = p.Index
		r.params = append(r.params, p)
	}
	if len(r.params) == 0 {
		return r, fmt.Errorf("%s: %w", kind, ErrNoParameters)
	}
	return r, nil
}

func (r *Registry) Len() int {
	return len(r.params)
}

// At returns the parameter at index.
func (r *Registry) At(index int) (Parameter, bool) {
	if index < 0 || index >= len(r.params) {
		return Parameter{}, false
	}
	return r.params[index], true
}

// Index returns the index of the parameter backed by property, or -1.
func (r *Registry) Index(property string) int {
	if i, ok := r.byProperty[property]; ok {
		return i
	}
	return -1
}

func (r *Registry) Parameters() []Parameter {
	return append([]Parameter(nil), r.params...)
}

// Gangs groups parameter indices whose descriptors name each other, directly
// or through a chain. Groups with a single member are omitted.
func (r *Registry) Gangs() [][]int {
	parent := make([]int, len(r.params))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for _, p := range r.params {
		for _, name := range p.ganged {
			if j := r.Index(name); j >= 0 {
				a, b := find(p.Index), find(j)
				if a != b {
					parent[max(a, b)] = min(a, b)
				}
			}
		}
	}

	members := map[int][]int{}
	var roots []int
	for i := range r.params {
		root := find(i)
		if _, seen := members[root]; !seen {
			roots = append(roots, root)
		}
		members[root] = append(members[root], i)
	}
	var gangs [][]int
	for _, root := range roots {
		if len(members[root]) > 1 {
			gangs = append(gangs, members[root])
		}
	}
	return gangs
}
