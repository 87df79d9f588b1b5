// Package scopetree draws the ownership tree below a scope.
package scopetree

import (
	"fmt"

	"github.com/delaneyj/signalscope/reactive"
	"github.com/m1gwings/treedrawer/tree"
)

// Label describes one scope as drawn in the tree.
func Label(path string, cx *reactive.Scope) string {
	return fmt.Sprintf("%s s=%d e=%d", path, cx.SignalCount(), cx.EffectCount())
}

// Build mirrors the scope tree rooted at cx. Nodes are labelled with their
// path from the root ("0", "0.1", ...) and their signal and effect counts.
func Build(cx *reactive.Scope) *tree.Tree {
	t := tree.NewTree(tree.NodeString(Label("0", cx)))
	addChildren(t, "0", cx)
	return t
}

func addChildren(t *tree.Tree, path string, cx *reactive.Scope) {
	for i, child := range cx.Children() {
		childPath := fmt.Sprintf("%s.%d", path, i)
		addChildren(t.AddChild(tree.NodeString(Label(childPath, child))), childPath, child)
	}
}

// Render returns the drawing of the tree rooted at cx.
func Render(cx *reactive.Scope) string {
	return Build(cx).String()
}
