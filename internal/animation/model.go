// Package animation is the keyframe model of one effect instance: its
// animatable parameters, their keyframe sequences, and the edit operations
// an editing surface issues against them.
//
// A Model is not safe for concurrent use. Calls are expected from a single
// editing goroutine, each running to completion before the next.
package animation

import (
	"fmt"

	"github.com/ivlev/keyframes/internal/constraint"
	"github.com/ivlev/keyframes/internal/keyframe"
	"github.com/ivlev/keyframes/internal/registry"
)

// Effect is the host effect as seen through its animation codec.
type Effect interface {
	Kind() string
	AnimatableProperties() []string
	Animation(property string) []keyframe.Keyframe
	SetAnimation(property string, keys []keyframe.Keyframe)
	// Value is the constant a property holds when it has no keyframes.
	Value(property string) float64
	SetValue(property string, value float64)
	TrimWindow() constraint.Window
}

// Evaluator computes the value of a curve between its keyframes.
type Evaluator interface {
	Sample(keys []keyframe.Keyframe, position int) float64
}

type Model struct {
	meta      registry.MetadataSource
	effect    Effect
	eval      Evaluator
	propagate constraint.Propagator
	observers []Observer
	pending   []func(Observer)

	reg   *registry.Registry
	seqs  []*keyframe.Sequence
	gangs gangs
	trim  constraint.Window
}

type Option func(*Model)

// WithEvaluator sets the curve evaluator used to sample values for split
// and trimmed keyframes. Without one the model samples straight lines.
func WithEvaluator(e Evaluator) Option {
	return func(m *Model) { m.eval = e }
}

// WithPolicies sets the value narrowing rules for curve parameters.
func WithPolicies(p constraint.Policies) Option {
	return func(m *Model) { m.propagate.Policies = p }
}

func WithObserver(o Observer) Option {
	return func(m *Model) { m.Subscribe(o) }
}

// New returns an empty model. Load attaches it to an effect.
func New(opts ...Option) *Model {
	m := &Model{
		reg:   &registry.Registry{},
		gangs: gangs{},
		trim:  constraint.Window{In: 0, Out: -1},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load attaches the model to an effect and its metadata and rebuilds state.
func (m *Model) Load(meta registry.MetadataSource, effect Effect) error {
	m.meta = meta
	m.effect = effect
	return m.Reload()
}

// Reload discards all state and rebuilds it from the effect. Observers get
// AboutToReset before anything is cleared and Reset once the new state is
// complete. A failed load leaves an empty model on which every indexed
// operation fails.
func (m *Model) Reload() error {
	m.each(Observer.AboutToReset)

	m.reg = &registry.Registry{}
	m.seqs = nil
	m.gangs = gangs{}
	m.trim = constraint.Window{In: 0, Out: -1}

	var err error
	if m.meta == nil || m.effect == nil {
		err = fmt.Errorf("no effect attached: %w", registry.ErrNoParameters)
	} else {
		m.reg, err = registry.Load(m.meta, m.effect.Kind(), m.effect.AnimatableProperties())
		m.trim = m.effect.TrimWindow()
		for _, p := range m.reg.Parameters() {
			seq := keyframe.NewSequence(m.readAnimation(p), p.Values().Clamp(m.effect.Value(p.PropertyName)))
			m.propagate.UpdateAll(seq, m.scope(p))
			m.seqs = append(m.seqs, seq)
		}
		m.gangs = newGangs(m.reg)
	}

	m.each(Observer.Reset)
	if err != nil {
		return err
	}
	m.each(Observer.Loaded)
	return nil
}

// PropertyChanged re-reads one property after the host changed it behind
// the model's back.
func (m *Model) PropertyChanged(property string) bool {
	i := m.reg.Index(property)
	p, seq, ok := m.parameter(i)
	if !ok || m.effect == nil {
		return false
	}
	seq.Reset(m.readAnimation(p))
	seq.Static = p.Values().Clamp(m.effect.Value(property))
	m.propagate.UpdateAll(seq, m.scope(p))
	m.emit(func(o Observer) { o.KeyframesChanged(i) })
	m.flush()
	return true
}

func (m *Model) readAnimation(p registry.Parameter) []keyframe.Keyframe {
	keys := m.effect.Animation(p.PropertyName)
	values := p.Values()
	for i := range keys {
		keys[i].Value = values.Clamp(keys[i].Value)
		if !keys[i].Type.Valid() || (!p.IsCurve && !keys[i].Type.IsBasic()) {
			keys[i].Type = keyframe.Linear
		}
	}
	return keys
}

func (m *Model) parameter(i int) (registry.Parameter, *keyframe.Sequence, bool) {
	p, ok := m.reg.At(i)
	if !ok || i >= len(m.seqs) {
		return registry.Parameter{}, nil, false
	}
	return p, m.seqs[i], true
}

func (m *Model) scope(p registry.Parameter) constraint.Scope {
	return constraint.Scope{Values: p.Values(), Trim: m.trim, Curve: p.IsCurve}
}

func (m *Model) update(i, keyframeIndex int) {
	p, seq, _ := m.parameter(i)
	m.propagate.Update(seq, m.scope(p), keyframeIndex)
}

func (m *Model) updateAll(i int) {
	p, seq, _ := m.parameter(i)
	m.propagate.UpdateAll(seq, m.scope(p))
}

// commit writes a parameter's sequence back to the effect.
func (m *Model) commit(i int) {
	p, seq, ok := m.parameter(i)
	if !ok || m.effect == nil {
		return
	}
	m.effect.SetAnimation(p.PropertyName, seq.Keyframes())
	if seq.Len() == 0 {
		m.effect.SetValue(p.PropertyName, seq.Static)
	}
}

func (m *Model) sample(i, position int) float64 {
	p, seq, _ := m.parameter(i)
	var v float64
	if m.eval != nil && seq.Len() > 0 {
		v = m.eval.Sample(seq.Keyframes(), position)
	} else {
		v = seq.Sample(position)
	}
	return p.Values().Clamp(v)
}
