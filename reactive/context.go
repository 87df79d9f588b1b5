package reactive

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ContextKey names a value provided on a scope and visible to its descendants.
type ContextKey[T any] struct {
	name string
	id   uint64
}

// NewContextKey derives a key from name and T. Keys created from the same
// name and type are the same key; the same name with another type is not.
func NewContextKey[T any](name string) ContextKey[T] {
	d := xxhash.New()
	d.WriteString(reflect.TypeFor[T]().String())
	d.WriteString(":")
	d.WriteString(name)
	return ContextKey[T]{
		name: name,
		id:   d.Sum64(),
	}
}

func (k ContextKey[T]) String() string {
	return k.name
}

// ProvideContext stores value on cx. Providing the same key twice on one
// scope panics with ErrContextExists.
func ProvideContext[T any](cx *Scope, key ContextKey[T], value T) {
	cx.mustBeLive()
	if cx.contexts == nil {
		cx.contexts = map[uint64]any{}
	}
	if _, ok := cx.contexts[key.id]; ok {
		panic(fmt.Errorf("%w: %s", ErrContextExists, key.name))
	}
	cx.contexts[key.id] = value
}

// TryUseContext looks key up on cx and then on each of its ancestors.
func TryUseContext[T any](cx *Scope, key ContextKey[T]) (T, bool) {
	for s := cx; s != nil; s = s.parent {
		x, ok := s.contexts[key.id]
		if !ok {
			continue
		}
		// A nil interface value was provided as T.
		if t, ok := x.(T); ok || x == nil {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// UseContext is TryUseContext that panics with ErrContextMissing.
func UseContext[T any](cx *Scope, key ContextKey[T]) T {
	t, ok := TryUseContext(cx, key)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrContextMissing, key.name))
	}
	return t
}
