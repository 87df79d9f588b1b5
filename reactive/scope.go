package reactive

import "slices"

// Scope owns signals, effects and child scopes and tears them all down
// together when disposed.
type Scope struct {
	rt *Runtime
	// Non-owning link, nil for a root.
	parent   *Scope
	signals  []*emitter
	effects  []*effectState
	children []*Scope
	cleanups []func()
	contexts map[uint64]any
	disposed bool
}

func (rt *Runtime) newScope(parent *Scope) *Scope {
	rt.stats.ScopesCreated++
	cx := &Scope{
		rt:     rt,
		parent: parent,
	}
	if parent == nil {
		rt.logf("reactive: root scope %p created", cx)
	} else {
		rt.logf("reactive: scope %p created under %p", cx, parent)
	}
	return cx
}

func (cx *Scope) Runtime() *Runtime {
	return cx.rt
}

func (cx *Scope) Parent() *Scope {
	return cx.parent
}

func (cx *Scope) Children() []*Scope {
	return slices.Clone(cx.children)
}

func (cx *Scope) SignalCount() int {
	return len(cx.signals)
}

func (cx *Scope) EffectCount() int {
	return len(cx.effects)
}

func (cx *Scope) IsDisposed() bool {
	return cx.disposed
}

func (cx *Scope) mustBeLive() {
	if cx.disposed {
		panic(ErrDisposed)
	}
}

// CreateChildScope runs fn with a new scope owned by cx. The child is
// disposed with cx, or earlier through the returned disposer.
func (cx *Scope) CreateChildScope(fn func(cx *Scope)) *Disposer {
	cx.mustBeLive()
	child := cx.rt.newScope(cx)
	cx.children = append(cx.children, child)
	fn(child)
	return &Disposer{scope: child}
}

// OnCleanup registers fn to run, untracked, when cx is disposed.
func (cx *Scope) OnCleanup(fn func()) {
	cx.mustBeLive()
	cx.cleanups = append(cx.cleanups, fn)
}

// Untrack is a shorthand for cx.Runtime().Untrack(fn).
func (cx *Scope) Untrack(fn func()) {
	cx.rt.Untrack(fn)
}

func (cx *Scope) dispose() {
	cx.disposed = true

	children := cx.children
	cx.children = nil
	for _, child := range children {
		child.dispose()
	}

	if cleanups := cx.cleanups; len(cleanups) > 0 {
		cx.cleanups = nil
		cx.rt.Untrack(func() {
			for _, fn := range cleanups {
				fn()
			}
		})
	}

	for _, e := range cx.effects {
		e.dispose()
	}
	for _, s := range cx.signals {
		s.drop()
	}
	cx.rt.logf("reactive: scope %p disposed, %d signals, %d effects, %d children",
		cx, len(cx.signals), len(cx.effects), len(children))
	cx.effects = nil
	cx.signals = nil
	cx.contexts = nil
	cx.rt.stats.ScopesDisposed++
}

// Disposer is the one-shot handle that tears a scope down.
type Disposer struct {
	scope *Scope
}

// Scope returns the scope this disposer tears down.
func (d *Disposer) Scope() *Scope {
	return d.scope
}

// Dispose disposes child scopes first, then runs cleanups, unsubscribes
// every owned effect and drops every owned signal. Calling it a second time
// panics with ErrDisposed.
func (d *Disposer) Dispose() {
	cx := d.scope
	cx.mustBeLive()
	isCx := func(c *Scope) bool {
		return c == cx
	}
	if p := cx.parent; p != nil {
		p.children = slices.DeleteFunc(p.children, isCx)
	} else {
		cx.rt.roots = slices.DeleteFunc(cx.rt.roots, isCx)
	}
	cx.dispose()
}
