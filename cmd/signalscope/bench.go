package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/signalscope/reactive"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	sizesKey      = "sizes"
	itersKey      = "iters"
	formatKey     = "format"
	configKey     = "config"
	cpuProfileKey = "cpuprofile"
)

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Measure how long a signal write takes to propagate",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  sizesKey,
				Usage: "Comma separated widths and heights, crossed with each other",
				Value: "1,10,100",
			},
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Writes measured per scenario",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  formatKey,
				Usage: "Output format: text, markdown, csv or html",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file listing scenarios, overrides --sizes and --iters",
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: runBench,
	}
}

func runBench(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String(formatKey)
	if _, err := render(table.NewWriter(), format); err != nil {
		return err
	}

	var (
		cfg *benchConfig
		err error
	)
	if path := cmd.String(configKey); path != "" {
		cfg, err = loadBenchConfig(path)
	} else {
		var sizes []int
		sizes, err = parseSizes(cmd.String(sizesKey))
		cfg = defaultBenchConfig(sizes, int(cmd.Int(itersKey)))
		if err == nil {
			err = cfg.validate()
		}
	}
	if err != nil {
		return err
	}

	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	tbl := table.NewWriter()
	tbl.SetTitle("signalscope")
	tbl.AppendHeader(table.Row{"benchmark", "effect runs", "avg", "min", "p75", "p99", "max"})
	for _, s := range cfg.Scenarios {
		log.Printf("Running '%s'", s)
		tbl.AppendRow(benchScenario(s, cfg.Iterations))
	}

	out, err := render(tbl, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, out)
	return nil
}

func benchScenario(s scenario, iterations int) table.Row {
	w := buildWorkload(s)
	defer w.dispose()

	tach := tachymeter.New(&tachymeter.Config{Size: iterations})
	before := w.rt.Stats().EffectRuns
	for i := 0; i < iterations; i++ {
		start := time.Now()
		w.step(i)
		tach.AddTime(time.Since(start))
	}
	runs := w.rt.Stats().EffectRuns - before

	calc := tach.Calc()
	return table.Row{
		s.String(),
		humanize.Comma(int64(runs)),
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	}
}

func render(tbl table.Writer, format string) (string, error) {
	switch format {
	case "text":
		return tbl.Render(), nil
	case "markdown":
		return tbl.RenderMarkdown(), nil
	case "csv":
		return tbl.RenderCSV(), nil
	case "html":
		return tbl.RenderHTML(), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

type workload struct {
	rt      *reactive.Runtime
	step    func(i int)
	dispose func()
}

// buildWorkload wires one scenario into a fresh runtime. Every step writes
// the single source signal.
func buildWorkload(s scenario) *workload {
	rt := reactive.NewRuntime()
	w := &workload{rt: rt}

	d := rt.CreateScope(func(cx *reactive.Scope) {
		src := reactive.CreateSignal(cx, 0)
		w.step = src.Set

		switch s.Kind {
		case kindPropagate:
			// width chains of height memos, each ending in an effect
			for i := 0; i < s.Width; i++ {
				last := src.ReadOnly()
				for j := 0; j < s.Height; j++ {
					prev := last
					last = reactive.CreateMemo(cx, func() int {
						return prev.Get() + 1
					})
				}
				cx.CreateEffect(func() {
					last.Get()
				})
			}

		case kindScoped:
			// width scoped effects, each rebuilding height signals and
			// effects on every write
			for i := 0; i < s.Width; i++ {
				cx.CreateEffectScoped(func(cx *reactive.Scope) {
					v := src.Get()
					for j := 0; j < s.Height; j++ {
						n := reactive.CreateSignal(cx, v+j)
						cx.CreateEffect(func() {
							n.Get()
						})
					}
				})
			}

		case kindDynamic:
			// width effects that read height signals on even writes only
			pool := make([]*reactive.Signal[int], s.Height)
			for j := range pool {
				pool[j] = reactive.CreateSignal(cx, j)
			}
			for i := 0; i < s.Width; i++ {
				cx.CreateEffect(func() {
					if src.Get()%2 != 0 {
						return
					}
					for _, p := range pool {
						p.Get()
					}
				})
			}
		}
	})
	w.dispose = d.Dispose
	return w
}
