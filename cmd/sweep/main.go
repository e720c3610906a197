// Command sweep runs one calculation over a range of values for a single
// parameter, as described by a TOML config, and prints one row per point.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/geotech"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/hydraulics"
)

func main() {
	configPath := flag.String("config", "sweep.toml", "path to the sweep config")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if err := run(*configPath, logger); err != nil {
		logger.Fatal().Err(err).Msg("sweep failed")
	}
}

func run(configPath string, logger zerolog.Logger) error {
	cfg, err := loadRunConfig(configPath)
	if err != nil {
		return err
	}

	engine := fieldcalc.NewEngine()
	engine.SetLogger(logger)
	if err := hydraulics.Register(engine); err != nil {
		return err
	}
	if err := geotech.Register(engine); err != nil {
		return err
	}

	calc, ok := engine.Get(cfg.Calculation)
	if !ok {
		return fmt.Errorf("unknown calculation %q", cfg.Calculation)
	}

	base := make(fieldcalc.Args, len(cfg.Args)+1)
	for k, v := range cfg.Args {
		base[k] = v
	}
	base[fieldcalc.KeyFailSilently] = cfg.FailSilently

	rows, err := engine.Sweep(cfg.Calculation, base, cfg.Param, cfg.Values)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s", cfg.Param)
	for _, out := range calc.Outputs {
		fmt.Fprintf(w, "\t%s", out.Key())
	}
	fmt.Fprintln(w)

	for i, row := range rows {
		fmt.Fprintf(w, "%g", cfg.Values[i])
		for _, out := range calc.Outputs {
			fmt.Fprintf(w, "\t%s", cell(row[out.Key()]))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case float64:
		if math.IsNaN(x) {
			return "-"
		}
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
