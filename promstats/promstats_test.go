package promstats_test

import (
	"strings"
	"testing"

	"github.com/delaneyj/signalscope/promstats"
	"github.com/delaneyj/signalscope/reactive"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	rt := reactive.NewRuntime()
	rt.CreateScopeImmediate(func(cx *reactive.Scope) {
		s := reactive.CreateSignal(cx, 0)
		cx.CreateEffect(func() {
			s.Track()
		})
		s.Set(1)
	})

	c := promstats.NewCollector(rt)
	assert.Equal(t, 6, testutil.CollectAndCount(c))

	expected := `
# HELP signalscope_effect_runs_total Effect executions, including the first run.
# TYPE signalscope_effect_runs_total counter
signalscope_effect_runs_total 2
# HELP signalscope_scopes_disposed_total Scopes disposed, roots included.
# TYPE signalscope_scopes_disposed_total counter
signalscope_scopes_disposed_total 1
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"signalscope_effect_runs_total", "signalscope_scopes_disposed_total")
	assert.NoError(t, err)
}

func TestCollectorReadsLiveStats(t *testing.T) {
	rt := reactive.NewRuntime()
	c := promstats.NewCollector(rt, promstats.WithNamespace("app"), promstats.WithSubsystem("ui"))

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	rt.CreateScopeImmediate(func(cx *reactive.Scope) {})
	rt.CreateScopeImmediate(func(cx *reactive.Scope) {})

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		values[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue()
	}
	assert.Equal(t, 2.0, values["app_ui_scopes_created_total"])
	assert.Equal(t, 2.0, values["app_ui_scopes_disposed_total"])
	assert.Equal(t, 0.0, values["app_ui_signals_created_total"])
}

func TestCollectorConstLabels(t *testing.T) {
	rt := reactive.NewRuntime()
	c := promstats.NewCollector(rt, promstats.WithConstLabels(prometheus.Labels{"tree": "main"}))

	expected := `
# HELP signalscope_notifications_total Signal writes that notified subscribers.
# TYPE signalscope_notifications_total counter
signalscope_notifications_total{tree="main"} 0
`
	assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "signalscope_notifications_total"))
}
