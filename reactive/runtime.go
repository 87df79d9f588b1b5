package reactive

import (
	"errors"
	"log"
)

var (
	ErrDisposed       = errors.New("reactive: scope already disposed")
	ErrTrackingStack  = errors.New("reactive: effect stack changed length across an effect run")
	ErrContextExists  = errors.New("reactive: context already provided in this scope")
	ErrContextMissing = errors.New("reactive: context not provided")
)

type Option func(*Runtime)

// WithLogger traces scope lifetimes to l.
func WithLogger(l *log.Logger) Option {
	return func(rt *Runtime) {
		rt.logger = l
	}
}

// Stats are monotonic counters describing the work a runtime has done.
type Stats struct {
	SignalsCreated uint64
	EffectsCreated uint64
	EffectRuns     uint64
	Notifications  uint64
	ScopesCreated  uint64
	ScopesDisposed uint64
}

// Runtime is the tracking context shared by every scope of one tree.
// It is confined to a single goroutine; nothing in it is locked.
type Runtime struct {
	// Currently executing effects, outermost first. Only the last one
	// receives dependencies from signal reads.
	effects []*effectState
	// Undisposed root scopes. Subscriptions are weak, so without this a
	// root whose disposer was dropped would be collected with its effects.
	roots  []*Scope
	logger *log.Logger
	stats  Stats
}

func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *Runtime) Stats() Stats {
	return rt.stats
}

// RootCount reports how many root scopes have not been disposed yet.
func (rt *Runtime) RootCount() int {
	return len(rt.roots)
}

// CreateScope runs fn inside a new root scope and returns its disposer.
func (rt *Runtime) CreateScope(fn func(cx *Scope)) *Disposer {
	cx := rt.newScope(nil)
	rt.roots = append(rt.roots, cx)
	fn(cx)
	return &Disposer{scope: cx}
}

// CreateScopeImmediate runs fn inside a new root scope and disposes it
// as soon as fn returns.
func (rt *Runtime) CreateScopeImmediate(fn func(cx *Scope)) {
	rt.CreateScope(fn).Dispose()
}

// CreateScope is a shorthand for NewRuntime().CreateScope(fn).
func CreateScope(fn func(cx *Scope)) *Disposer {
	return NewRuntime().CreateScope(fn)
}

func CreateScopeImmediate(fn func(cx *Scope)) {
	NewRuntime().CreateScopeImmediate(fn)
}

// Untrack runs fn with an empty effect stack so that no signal read
// inside it becomes a dependency of the running effect.
func (rt *Runtime) Untrack(fn func()) {
	prev := rt.effects
	rt.effects = nil
	defer func() {
		rt.effects = prev
	}()
	fn()
}

// Untrack is the value returning form of Runtime.Untrack.
func Untrack[T any](rt *Runtime, fn func() T) (t T) {
	rt.Untrack(func() {
		t = fn()
	})
	return t
}

func (rt *Runtime) track(e *emitter) {
	if n := len(rt.effects); n > 0 {
		rt.effects[n-1].addDependency(e)
	}
}

func (rt *Runtime) logf(format string, args ...any) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}
