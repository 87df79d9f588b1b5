package reactive

import (
	"weak"

	mapset "github.com/deckarep/golang-set/v2"
)

// dependency is a weak handle to an emitter. Two handles are equal iff they
// were made from the same emitter, whether or not it is still alive, so a
// repeated read collapses into one entry and stale entries can still be
// matched.
type dependency = weak.Pointer[emitter]

// resolve returns the emitter behind d, or nil if it was collected or its
// scope was disposed.
func resolve(d dependency) *emitter {
	if e := d.Value(); e != nil && !e.dropped {
		return e
	}
	return nil
}

// effectState owns a re-runnable callback and the emitters its last run read.
type effectState struct {
	sub  *subscriber
	deps mapset.Set[dependency]
	// deps in the order they were first read during the last run
	order []dependency
}

func newEffectState() *effectState {
	return &effectState{
		sub:  &subscriber{},
		deps: mapset.NewThreadUnsafeSet[dependency](),
	}
}

// clearDependencies removes both the links and the backlinks. It runs before
// every execution so a write made during the run cannot re-enter it.
func (e *effectState) clearDependencies() {
	self := weak.Make(e.sub)
	for _, d := range e.order {
		if em := resolve(d); em != nil {
			em.unsubscribe(self)
		}
	}
	e.deps.Clear()
	e.order = e.order[:0]
}

func (e *effectState) addDependency(em *emitter) {
	d := weak.Make(em)
	if e.deps.Add(d) {
		e.order = append(e.order, d)
	}
}

// subscribe installs backlinks for everything collected during the last run.
// An emitter may have been dropped between the read and now.
func (e *effectState) subscribe() {
	self := weak.Make(e.sub)
	for _, d := range e.order {
		if em := resolve(d); em != nil {
			em.subscribe(self)
		}
	}
}

func (e *effectState) dispose() {
	e.clearDependencies()
	e.sub.dead = true
}

func (rt *Runtime) runEffect(e *effectState, fn func()) {
	if e.sub.dead {
		return
	}
	depth := len(rt.effects)
	e.clearDependencies()

	rt.effects = append(rt.effects, e)
	completed := false
	defer func() {
		if !completed && len(rt.effects) > depth {
			// fn panicked, leave the effect unsubscribed and unwind the stack
			clear(rt.effects[depth:])
			rt.effects = rt.effects[:depth]
		}
	}()
	rt.stats.EffectRuns++
	fn()
	completed = true
	n := len(rt.effects)
	rt.effects[n-1] = nil
	rt.effects = rt.effects[:n-1]

	// fn may have disposed the scope that owns this effect.
	if !e.sub.dead {
		e.subscribe()
	}

	if len(rt.effects) != depth {
		panic(ErrTrackingStack)
	}
}

// CreateEffect runs fn now and again every time a signal it read during its
// previous run is written. Dependencies are collected from scratch on every
// run, so branches that stop reading a signal stop reacting to it.
func (cx *Scope) CreateEffect(fn func()) {
	cx.mustBeLive()
	rt := cx.rt
	e := newEffectState()
	e.sub.run = func() {
		rt.runEffect(e, fn)
	}
	rt.stats.EffectsCreated++
	// Owned before the first run, which may dispose cx.
	cx.effects = append(cx.effects, e)
	e.sub.run()
}

// CreateEffectScoped is CreateEffect with a fresh child scope for every run.
// The previous run's scope is disposed after dependencies are cleared and
// before fn runs again. Nothing created on the child scope may be kept
// outside of fn.
func (cx *Scope) CreateEffectScoped(fn func(cx *Scope)) {
	var disposer *Disposer
	cx.CreateEffect(func() {
		if disposer != nil {
			d := disposer
			disposer = nil
			d.Dispose()
		}
		disposer = cx.CreateChildScope(fn)
	})
}

// On returns an effect body that tracks only deps and runs fn untracked.
func On(rt *Runtime, deps []Trackable, fn func()) func() {
	return func() {
		for _, dep := range deps {
			dep.Track()
		}
		rt.Untrack(fn)
	}
}
