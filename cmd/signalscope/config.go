package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type scenarioKind string

const (
	kindPropagate scenarioKind = "propagate"
	kindScoped    scenarioKind = "scoped"
	kindDynamic   scenarioKind = "dynamic"
)

type scenario struct {
	Kind   scenarioKind `yaml:"kind"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
}

func (s scenario) String() string {
	return fmt.Sprintf("%s: %d * %d", s.Kind, s.Width, s.Height)
}

type benchConfig struct {
	Iterations int        `yaml:"iterations"`
	Scenarios  []scenario `yaml:"scenarios"`
}

func loadBenchConfig(path string) (*benchConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bench config: %w", err)
	}
	cfg := &benchConfig{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing bench config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("bench config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *benchConfig) validate() error {
	if cfg.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", cfg.Iterations)
	}
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("no scenarios")
	}
	for i, s := range cfg.Scenarios {
		switch s.Kind {
		case kindPropagate, kindScoped, kindDynamic:
		default:
			return fmt.Errorf("scenario %d: unknown kind %q", i, s.Kind)
		}
		if s.Width < 1 || s.Height < 1 {
			return fmt.Errorf("scenario %d: width and height must be at least 1", i)
		}
	}
	return nil
}

// defaultBenchConfig crosses every size with itself for every scenario kind.
func defaultBenchConfig(sizes []int, iterations int) *benchConfig {
	cfg := &benchConfig{Iterations: iterations}
	for _, kind := range []scenarioKind{kindPropagate, kindScoped, kindDynamic} {
		for _, w := range sizes {
			for _, h := range sizes {
				cfg.Scenarios = append(cfg.Scenarios, scenario{Kind: kind, Width: w, Height: h})
			}
		}
	}
	return cfg
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("size must be at least 1, got %d", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}
