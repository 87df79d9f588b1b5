// Package promstats exports the counters of a reactive.Runtime to Prometheus.
package promstats

import (
	"github.com/delaneyj/signalscope/reactive"
	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	// Namespace is the metrics namespace (default: "signalscope").
	Namespace string
	// Subsystem is the metrics subsystem (default: "").
	Subsystem string
	// ConstLabels are added to every metric, e.g. to tell runtimes apart.
	ConstLabels prometheus.Labels
}

type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

type counter struct {
	desc  *prometheus.Desc
	value func(reactive.Stats) uint64
}

// Collector reads the runtime's stats on every scrape. Scrapes must happen on
// the goroutine that drives the runtime, or while it is idle.
type Collector struct {
	rt       *reactive.Runtime
	counters []counter
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(rt *reactive.Runtime, opts ...Option) *Collector {
	cfg := Config{Namespace: "signalscope"}
	for _, opt := range opts {
		opt(&cfg)
	}

	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, name),
			help, nil, cfg.ConstLabels,
		)
	}

	return &Collector{
		rt: rt,
		counters: []counter{
			{
				desc:  desc("signals_created_total", "Signals created, scoped or free."),
				value: func(s reactive.Stats) uint64 { return s.SignalsCreated },
			},
			{
				desc:  desc("effects_created_total", "Effects created."),
				value: func(s reactive.Stats) uint64 { return s.EffectsCreated },
			},
			{
				desc:  desc("effect_runs_total", "Effect executions, including the first run."),
				value: func(s reactive.Stats) uint64 { return s.EffectRuns },
			},
			{
				desc:  desc("notifications_total", "Signal writes that notified subscribers."),
				value: func(s reactive.Stats) uint64 { return s.Notifications },
			},
			{
				desc:  desc("scopes_created_total", "Scopes created, roots included."),
				value: func(s reactive.Stats) uint64 { return s.ScopesCreated },
			},
			{
				desc:  desc("scopes_disposed_total", "Scopes disposed, roots included."),
				value: func(s reactive.Stats) uint64 { return s.ScopesDisposed },
			},
		},
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.counters {
		ch <- m.desc
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.rt.Stats()
	for _, m := range c.counters {
		ch <- prometheus.MustNewConstMetric(m.desc, prometheus.CounterValue, float64(m.value(stats)))
	}
}
