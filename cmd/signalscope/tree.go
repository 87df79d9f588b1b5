package main

import (
	"context"
	"fmt"
	"os"

	"github.com/delaneyj/signalscope/internal/scopetree"
	"github.com/delaneyj/signalscope/reactive"
	"github.com/urfave/cli/v3"
)

const (
	depthKey  = "depth"
	fanoutKey = "fanout"
)

func treeCommand() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Build a demo scope tree and draw it",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  depthKey,
				Value: 2,
			},
			&cli.IntFlag{
				Name:  fanoutKey,
				Value: 2,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			depth, fanout := int(cmd.Int(depthKey)), int(cmd.Int(fanoutKey))
			if depth < 0 || fanout < 0 {
				return fmt.Errorf("depth and fanout must not be negative")
			}
			reactive.CreateScopeImmediate(func(cx *reactive.Scope) {
				buildDemoTree(cx, depth, fanout)
				fmt.Fprintln(os.Stdout, scopetree.Render(cx))
			})
			return nil
		},
	}
}

// buildDemoTree gives every scope one signal per level below it and one
// effect reading them, then recurses into fanout children.
func buildDemoTree(cx *reactive.Scope, depth, fanout int) {
	signals := make([]*reactive.Signal[int], depth)
	for i := range signals {
		signals[i] = reactive.CreateSignal(cx, i)
	}
	if depth > 0 {
		cx.CreateEffect(func() {
			for _, s := range signals {
				s.Get()
			}
		})
	}
	if depth == 0 {
		return
	}
	for i := 0; i < fanout; i++ {
		cx.CreateChildScope(func(cx *reactive.Scope) {
			buildDemoTree(cx, depth-1, fanout)
		})
	}
}
