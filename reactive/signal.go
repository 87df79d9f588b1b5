package reactive

// Trackable is anything that can be recorded as a dependency of the
// running effect.
type Trackable interface {
	Track()
}

// ReadSignal is the read-only half of a reactive cell.
type ReadSignal[T any] struct {
	rt      *Runtime
	emitter *emitter
	value   T
}

// Get returns the value and, inside an effect, records the signal as a
// dependency of it.
func (s *ReadSignal[T]) Get() T {
	s.Track()
	return s.value
}

func (s *ReadSignal[T]) GetUntracked() T {
	return s.value
}

func (s *ReadSignal[T]) Track() {
	s.rt.track(s.emitter)
}

func (s *ReadSignal[T]) Runtime() *Runtime {
	return s.rt
}

// SubscriberCount reports how many live effects would run on the next write.
func (s *ReadSignal[T]) SubscriberCount() int {
	return s.emitter.liveSubscribers()
}

// Signal is a reactive cell whose writes re-run the effects that read it.
type Signal[T any] struct {
	ReadSignal[T]
}

// NewSignal creates a signal owned by no scope. It lives for as long as
// something references it; effects never keep it alive.
func NewSignal[T any](rt *Runtime, value T) *Signal[T] {
	rt.stats.SignalsCreated++
	return &Signal[T]{
		ReadSignal: ReadSignal[T]{
			rt:      rt,
			emitter: &emitter{},
			value:   value,
		},
	}
}

// CreateSignal creates a signal owned by cx. Once cx is disposed the signal
// stops notifying.
func CreateSignal[T any](cx *Scope, value T) *Signal[T] {
	cx.mustBeLive()
	s := NewSignal(cx.rt, value)
	cx.signals = append(cx.signals, s.emitter)
	return s
}

// Set writes v and notifies every subscriber, even if v equals the
// previous value.
func (s *Signal[T]) Set(v T) {
	s.value = v
	s.Trigger()
}

// SetSilent writes v without notifying anyone.
func (s *Signal[T]) SetSilent(v T) {
	s.value = v
}

func (s *Signal[T]) Update(fn func(prev T) T) {
	s.Set(fn(s.value))
}

// Trigger notifies subscribers without changing the value.
func (s *Signal[T]) Trigger() {
	s.rt.stats.Notifications++
	s.emitter.notify()
}

func (s *Signal[T]) ReadOnly() *ReadSignal[T] {
	return &s.ReadSignal
}
