package keyframe

import (
	"cmp"
	"slices"
)

// Keyframe is a control point on a parameter's timeline.
type Keyframe struct {
	Position int               `yaml:"position"`
	Value    float64           `yaml:"value"`
	Type     InterpolationType `yaml:"type"`
}

// Bounds is the derived editing window of a keyframe. It is not persisted.
type Bounds struct {
	MinFrame     int
	MaxFrame     int
	LowestValue  float64
	HighestValue float64
}

type entry struct {
	Keyframe
	bounds Bounds
}

// Sequence is the position-ordered keyframe list of one parameter.
// Positions are strictly increasing by index.
type Sequence struct {
	entries []entry

	// Static is the value the parameter holds while it has no keyframes.
	Static float64
}

// NewSequence builds a sequence from keys in any order. When two keys share
// a position the later one wins.
func NewSequence(keys []Keyframe, static float64) *Sequence {
	s := &Sequence{Static: static}
	s.Reset(keys)
	return s
}

// Reset replaces the contents of s with keys.
func (s *Sequence) Reset(keys []Keyframe) {
	s.entries = s.entries[:0]
	for _, k := range keys {
		s.Insert(k)
	}
}

func (s *Sequence) Len() int {
	return len(s.entries)
}

func (s *Sequence) valid(i int) bool {
	return i >= 0 && i < len(s.entries)
}

// At returns the keyframe at index i.
func (s *Sequence) At(i int) (Keyframe, bool) {
	if !s.valid(i) {
		return Keyframe{}, false
	}
	return s.entries[i].Keyframe, true
}

// Bounds returns the last computed editing window of keyframe i.
func (s *Sequence) Bounds(i int) (Bounds, bool) {
	if !s.valid(i) {
		return Bounds{}, false
	}
	return s.entries[i].bounds, true
}

func (s *Sequence) SetBounds(i int, b Bounds) bool {
	if !s.valid(i) {
		return false
	}
	s.entries[i].bounds = b
	return true
}

// PreviousType returns the interpolation type of the keyframe before i.
func (s *Sequence) PreviousType(i int) (InterpolationType, bool) {
	if !s.valid(i) || i == 0 {
		return Linear, false
	}
	return s.entries[i-1].Type, true
}

// Keyframes returns a copy of the keyframes in position order.
func (s *Sequence) Keyframes() []Keyframe {
	keys := make([]Keyframe, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Keyframe
	}
	return keys
}

func (s *Sequence) Positions() []int {
	positions := make([]int, len(s.entries))
	for i, e := range s.entries {
		positions[i] = e.Position
	}
	return positions
}

func (s *Sequence) search(position int) (int, bool) {
	return slices.BinarySearchFunc(s.entries, position, func(e entry, p int) int {
		return cmp.Compare(e.Position, p)
	})
}

// Index returns the index of the keyframe exactly at position, or -1.
func (s *Sequence) Index(position int) int {
	if i, found := s.search(position); found {
		return i
	}
	return -1
}

func (s *Sequence) Contains(position int) bool {
	_, found := s.search(position)
	return found
}

// Previous returns the position of the nearest keyframe strictly before position.
func (s *Sequence) Previous(position int) (int, bool) {
	i, _ := s.search(position)
	if i == 0 {
		return 0, false
	}
	return s.entries[i-1].Position, true
}

// Next returns the position of the nearest keyframe strictly after position.
func (s *Sequence) Next(position int) (int, bool) {
	i, found := s.search(position)
	if found {
		i++
	}
	if i >= len(s.entries) {
		return 0, false
	}
	return s.entries[i].Position, true
}

// Insert adds k in position order. A keyframe already at k.Position has its
// value and type overwritten instead, and added is false.
func (s *Sequence) Insert(k Keyframe) (index int, added bool) {
	i, found := s.search(k.Position)
	if found {
		s.entries[i].Value = k.Value
		s.entries[i].Type = k.Type
		return i, false
	}
	s.entries = slices.Insert(s.entries, i, entry{Keyframe: k})
	return i, true
}

func (s *Sequence) RemoveAt(i int) bool {
	if !s.valid(i) {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

// Move relocates keyframe i to position and returns its new index. Moving
// onto another keyframe's position is rejected.
func (s *Sequence) Move(i, position int) (int, bool) {
	if !s.valid(i) {
		return -1, false
	}
	if s.entries[i].Position == position {
		return i, true
	}
	if s.Contains(position) {
		return -1, false
	}
	e := s.entries[i]
	s.entries = slices.Delete(s.entries, i, i+1)
	e.Position = position
	j, _ := s.search(position)
	s.entries = slices.Insert(s.entries, j, e)
	return j, true
}

func (s *Sequence) SetValue(i int, value float64) bool {
	if !s.valid(i) {
		return false
	}
	s.entries[i].Value = value
	return true
}

func (s *Sequence) SetType(i int, t InterpolationType) bool {
	if !s.valid(i) || !t.Valid() {
		return false
	}
	s.entries[i].Type = t
	return true
}

// Shift moves every keyframe by delta frames.
func (s *Sequence) Shift(delta int) {
	for i := range s.entries {
		s.entries[i].Position += delta
	}
}

// CollapseToEnds drops every keyframe except the first and the last and sets
// the remaining ones to t.
func (s *Sequence) CollapseToEnds(t InterpolationType) {
	if n := len(s.entries); n > 2 {
		s.entries = append(s.entries[:1], s.entries[n-1])
	}
	for i := range s.entries {
		s.entries[i].Type = t
	}
}

// Clear removes every keyframe. The first keyframe's value becomes the static value.
func (s *Sequence) Clear() {
	if len(s.entries) > 0 {
		s.Static = s.entries[0].Value
	}
	s.entries = s.entries[:0]
}

// ValueRange returns the lowest and highest keyframe values.
func (s *Sequence) ValueRange() (lowest, highest float64, ok bool) {
	if len(s.entries) == 0 {
		return s.Static, s.Static, false
	}
	lowest, highest = s.entries[0].Value, s.entries[0].Value
	for _, e := range s.entries[1:] {
		lowest = min(lowest, e.Value)
		highest = max(highest, e.Value)
	}
	return lowest, highest, true
}

// Sample returns the value at position using straight-line segments, holding
// the value across discrete segments. It is a fallback for hosts that supply
// no curve evaluator.
func (s *Sequence) Sample(position int) float64 {
	n := len(s.entries)
	if n == 0 {
		return s.Static
	}
	if position <= s.entries[0].Position {
		return s.entries[0].Value
	}
	if position >= s.entries[n-1].Position {
		return s.entries[n-1].Value
	}
	i, found := s.search(position)
	if found {
		return s.entries[i].Value
	}
	prev, next := s.entries[i-1], s.entries[i]
	if next.Type == Discrete {
		return prev.Value
	}
	t := float64(position-prev.Position) / float64(next.Position-prev.Position)
	return prev.Value + (next.Value-prev.Value)*t
}
