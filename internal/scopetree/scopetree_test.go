package scopetree

import (
	"testing"

	"github.com/delaneyj/signalscope/reactive"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	reactive.CreateScopeImmediate(func(cx *reactive.Scope) {
		reactive.CreateSignal(cx, 0)
		cx.CreateChildScope(func(cx *reactive.Scope) {
			cx.CreateEffect(func() {})
			cx.CreateChildScope(func(cx *reactive.Scope) {})
		})
		cx.CreateChildScope(func(cx *reactive.Scope) {})

		out := Render(cx)
		assert.Contains(t, out, "0 s=1 e=0")
		assert.Contains(t, out, "0.0 s=0 e=1")
		assert.Contains(t, out, "0.0.0 s=0 e=0")
		assert.Contains(t, out, "0.1 s=0 e=0")
	})
}

func TestRenderFollowsScopedEffectReruns(t *testing.T) {
	reactive.CreateScopeImmediate(func(cx *reactive.Scope) {
		trigger := reactive.CreateSignal(cx, 0)
		cx.CreateEffectScoped(func(cx *reactive.Scope) {
			for i := 0; i < trigger.Get(); i++ {
				reactive.CreateSignal(cx, i)
			}
		})

		trigger.Set(3)
		out := Render(cx)
		assert.Contains(t, out, "0.0 s=3 e=0")
		assert.NotContains(t, out, "0.1")
	})
}

func TestLabel(t *testing.T) {
	reactive.CreateScopeImmediate(func(cx *reactive.Scope) {
		assert.Equal(t, "root s=0 e=0", Label("root", cx))
	})
}
