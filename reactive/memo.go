package reactive

// CreateMemo returns a signal holding the result of fn, recomputed whenever a
// signal fn reads changes. Every recomputation notifies, even if the result
// is unchanged; use CreateSelector to skip those.
func CreateMemo[T any](cx *Scope, fn func() T) *ReadSignal[T] {
	return CreateSelectorWith(cx, fn, nil)
}

// CreateSelector is CreateMemo that only notifies when the result changed.
func CreateSelector[T comparable](cx *Scope, fn func() T) *ReadSignal[T] {
	return CreateSelectorWith(cx, fn, func(a, b T) bool {
		return a == b
	})
}

// CreateSelectorWith only notifies when eq reports the new result differs
// from the current one. A nil eq always notifies.
func CreateSelectorWith[T any](cx *Scope, fn func() T, eq func(a, b T) bool) *ReadSignal[T] {
	var memo *Signal[T]
	cx.CreateEffect(func() {
		next := fn()
		if memo == nil {
			memo = CreateSignal(cx, next)
			return
		}
		if eq != nil && eq(memo.value, next) {
			return
		}
		memo.Set(next)
	})
	return memo.ReadOnly()
}
