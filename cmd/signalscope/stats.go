package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/delaneyj/signalscope/promstats"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

const (
	widthKey  = "width"
	heightKey = "height"
	kindKey   = "kind"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Run one scenario and print the runtime counters",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  kindKey,
				Usage: "Scenario kind: propagate, scoped or dynamic",
				Value: string(kindScoped),
			},
			&cli.IntFlag{
				Name:  widthKey,
				Value: 10,
			},
			&cli.IntFlag{
				Name:  heightKey,
				Value: 10,
			},
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Writes to perform",
				Value: 100,
			},
		},
		Action: runStats,
	}
}

func runStats(ctx context.Context, cmd *cli.Command) error {
	cfg := &benchConfig{
		Iterations: int(cmd.Int(itersKey)),
		Scenarios: []scenario{{
			Kind:   scenarioKind(cmd.String(kindKey)),
			Width:  int(cmd.Int(widthKey)),
			Height: int(cmd.Int(heightKey)),
		}},
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	s := cfg.Scenarios[0]
	log.Printf("Running '%s' for %d writes", s, cfg.Iterations)

	w := buildWorkload(s)
	reg := prometheus.NewRegistry()
	if err := reg.Register(promstats.NewCollector(w.rt)); err != nil {
		return fmt.Errorf("registering collector: %w", err)
	}

	for i := 0; i < cfg.Iterations; i++ {
		w.step(i)
	}
	w.dispose()

	return writeStats(os.Stdout, reg)
}

func writeStats(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"metric", "value", "help"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			table.Append([]string{
				mf.GetName(),
				humanize.Comma(int64(m.GetCounter().GetValue())),
				mf.GetHelp(),
			})
		}
	}
	table.Render()
	return nil
}
