package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/interp"
)

// runConfig describes one parameter sweep: the calculation to run, the fixed
// arguments, and the swept parameter with its values.
type runConfig struct {
	Calculation  string
	Args         fieldcalc.Args
	Param        string
	Values       []float64
	FailSilently bool
}

type fileConfig struct {
	Calculation  string         `toml:"calculation"`
	FailSilently bool           `toml:"fail_silently"`
	Args         map[string]any `toml:"args"`
	Sweep        fileSweep      `toml:"sweep"`
}

type fileSweep struct {
	Param  string    `toml:"param"`
	Values []float64 `toml:"values"`
	Start  float64   `toml:"start"`
	Stop   float64   `toml:"stop"`
	Count  int       `toml:"count"`
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := runConfig{FailSilently: true}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load sweep config: %w", err)
	}

	cfg.Calculation = strings.TrimSpace(raw.Calculation)
	if cfg.Calculation == "" {
		return runConfig{}, fmt.Errorf("load sweep config: 'calculation' is required")
	}

	if meta.IsDefined("fail_silently") {
		cfg.FailSilently = raw.FailSilently
	}

	cfg.Args = make(fieldcalc.Args, len(raw.Args))
	for k, v := range raw.Args {
		// TOML integers decode as int64; the calculation layer works in
		// float64.
		if n, ok := v.(int64); ok {
			cfg.Args[k] = float64(n)
			continue
		}
		cfg.Args[k] = v
	}

	cfg.Param = strings.TrimSpace(raw.Sweep.Param)
	if cfg.Param == "" {
		return runConfig{}, fmt.Errorf("load sweep config: 'sweep.param' is required")
	}

	switch {
	case len(raw.Sweep.Values) > 0:
		if meta.IsDefined("sweep", "start") || meta.IsDefined("sweep", "stop") || meta.IsDefined("sweep", "count") {
			return runConfig{}, fmt.Errorf("load sweep config: 'sweep.values' and 'sweep.start/stop/count' are mutually exclusive")
		}
		cfg.Values = raw.Sweep.Values
	case meta.IsDefined("sweep", "start") && meta.IsDefined("sweep", "stop"):
		count := raw.Sweep.Count
		if count == 0 {
			count = 50
		}
		if count < 2 {
			return runConfig{}, fmt.Errorf("load sweep config: 'sweep.count' must be at least 2")
		}
		cfg.Values = interp.Linspace(raw.Sweep.Start, raw.Sweep.Stop, count)
	default:
		return runConfig{}, fmt.Errorf("load sweep config: supply 'sweep.values' or 'sweep.start' and 'sweep.stop'")
	}

	return cfg, nil
}
