package reactive

import (
	"slices"
	"weak"
)

// subscriber is what an emitter calls back. Emitters only ever point at it
// weakly; the effect that owns it keeps it alive.
type subscriber struct {
	run  func()
	dead bool
}

// emitter is the subscribable identity of a signal, independent of its value.
type emitter struct {
	subscribers []weak.Pointer[subscriber]
	// Set once the owning scope is disposed.
	dropped bool
}

// No deduplication here, effects dedupe through their dependency set.
func (e *emitter) subscribe(sub weak.Pointer[subscriber]) {
	e.subscribers = append(e.subscribers, sub)
}

func (e *emitter) unsubscribe(sub weak.Pointer[subscriber]) {
	e.subscribers = slices.DeleteFunc(e.subscribers, func(s weak.Pointer[subscriber]) bool {
		return s == sub
	})
}

// notify runs every live subscriber, most recent subscription first, so an
// outer effect gets to tear down the inner effects it created before they run.
func (e *emitter) notify() {
	subs := slices.Clone(e.subscribers)
	for i := len(subs) - 1; i >= 0; i-- {
		sub := subs[i].Value()
		if sub == nil || sub.dead {
			continue
		}
		sub.run()
	}
}

func (e *emitter) liveSubscribers() int {
	n := 0
	for _, s := range e.subscribers {
		if sub := s.Value(); sub != nil && !sub.dead {
			n++
		}
	}
	return n
}

func (e *emitter) drop() {
	e.dropped = true
	e.subscribers = nil
}
