package animation

// Observer receives the notifications a presentation layer binds to.
// Callbacks run synchronously on the editing goroutine once a mutation,
// including its ganged fan-out, has been fully applied.
type Observer interface {
	// AboutToReset is sent before a reload or bulk conversion clears state.
	AboutToReset()
	// Reset is sent once the rebuilt state is complete.
	Reset()
	// Loaded is sent after a successful load.
	Loaded()
	KeyframeAdded(property string, position int)
	KeyframeRemoved(property string, position int)
	// KeyframesChanged reports that keyframe values, types, positions or
	// bounds of one parameter changed.
	KeyframesChanged(parameterIndex int)
}

// Funcs adapts optional callbacks to Observer.
type Funcs struct {
	OnAboutToReset     func()
	OnReset            func()
	OnLoaded           func()
	OnKeyframeAdded    func(property string, position int)
	OnKeyframeRemoved  func(property string, position int)
	OnKeyframesChanged func(parameterIndex int)
}

func (f Funcs) AboutToReset() {
	if f.OnAboutToReset != nil {
		f.OnAboutToReset()
	}
}

func (f Funcs) Reset() {
	if f.OnReset != nil {
		f.OnReset()
	}
}

func (f Funcs) Loaded() {
	if f.OnLoaded != nil {
		f.OnLoaded()
	}
}

func (f Funcs) KeyframeAdded(property string, position int) {
	if f.OnKeyframeAdded != nil {
		f.OnKeyframeAdded(property, position)
	}
}

func (f Funcs) KeyframeRemoved(property string, position int) {
	if f.OnKeyframeRemoved != nil {
		f.OnKeyframeRemoved(property, position)
	}
}

func (f Funcs) KeyframesChanged(parameterIndex int) {
	if f.OnKeyframesChanged != nil {
		f.OnKeyframesChanged(parameterIndex)
	}
}

func (m *Model) Subscribe(o Observer) {
	m.observers = append(m.observers, o)
}

func (m *Model) each(fn func(Observer)) {
	for _, o := range m.observers {
		fn(o)
	}
}

// emit queues a notification until flush so observers never see a half
// applied ganged edit.
func (m *Model) emit(fn func(Observer)) {
	m.pending = append(m.pending, fn)
}

func (m *Model) flush() {
	pending := m.pending
	m.pending = nil
	for _, fn := range pending {
		m.each(fn)
	}
}
