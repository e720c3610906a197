// Command demo registers every built-in calculation, runs a few of them with
// and without per-call bound overrides, and optionally serves the live
// dashboard.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/beams"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/dashboard"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/geometry"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/geotech"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/hydraulics"
)

func main() {
	dashboardPort := flag.Int("dashboard", 0, "serve the dashboard on this port (0 disables)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	engine := fieldcalc.NewEngine()
	engine.SetLogger(logger)
	if err := hydraulics.Register(engine); err != nil {
		logger.Fatal().Err(err).Msg("registering hydraulics")
	}
	if err := geotech.Register(engine); err != nil {
		logger.Fatal().Err(err).Msg("registering geotech")
	}
	logger.Info().Strs("calculations", engine.Calculations()).Msg("engine ready")

	var server *dashboard.Server
	if *dashboardPort > 0 {
		server = dashboard.NewServer(*dashboardPort)
		server.SetLogger(logger)
		server.SetCalculationLister(engine.Calculations)
		engine.SetEventSink(server)
		go func() {
			if err := server.Start(); err != nil {
				logger.Error().Err(err).Msg("dashboard stopped")
			}
		}()
		logger.Info().Int("port", *dashboardPort).Msg("dashboard available")
	}

	// A pressure drop in an old water main.
	res, err := engine.Invoke("pressuredrop_relativeroughness_moody", fieldcalc.Args{
		"reynolds_number": 1.0e6,
		"pipe_diameter":   0.3,
		"pipe_length":     100.0,
		"flow_velocity":   2.0,
		"fluid_density":   1025.0,
		"pipe_material":   "Water mains,old",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("moody invocation")
	}
	logger.Info().
		Float64("friction_factor", res.Float("friction_factor [-]")).
		Str("flow_regime", res.String("flow_regime [-]")).
		Float64("pressure_drop_pa", res.Float("pressure_drop [Pa]")).
		Msg("pressure drop")

	// The same calculation with a relaxed lower Reynolds bound for a laminar
	// check, scoped to this call only.
	res, err = engine.Invoke("pressuredrop_relativeroughness_moody", fieldcalc.Args{
		"reynolds_number":      1500.0,
		"reynolds_number__min": 0.0,
		"pipe_diameter":        0.3,
		"pipe_length":          100.0,
		"flow_velocity":        0.01,
		"fluid_density":        1025.0,
		"pipe_material":        "Drawn tubing",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("moody invocation with override")
	}
	logger.Info().
		Float64("friction_factor", res.Float("friction_factor [-]")).
		Msg("pressure drop with relaxed bound")

	// Bearing capacity factors swept over the friction angle.
	angles := []float64{25.0, 30.0, 35.0, 40.0}
	rows, err := engine.Sweep("ngamma_frictionangle_vesic",
		fieldcalc.Args{}, "friction_angle", angles)
	if err != nil {
		logger.Fatal().Err(err).Msg("sweeping Ngamma")
	}
	for i, row := range rows {
		logger.Info().
			Float64("friction_angle", angles[i]).
			Float64("ngamma", row.Float("Ngamma [-]")).
			Msg("bearing capacity factor")
	}

	// A reactive section: mutate the radius and the derived properties follow.
	circle, err := geometry.NewCircle(fieldcalc.Args{"radius": 0.15})
	if err != nil {
		logger.Fatal().Err(err).Msg("constructing circle")
	}
	logger.Info().
		Float64("area_m2", circle.Group(geometry.GroupCentroid).Float("area [m2]")).
		Msg("circle")
	if err := circle.Set("radius", 0.3); err != nil {
		logger.Fatal().Err(err).Msg("resizing circle")
	}
	logger.Info().
		Float64("area_m2", circle.Group(geometry.GroupCentroid).Float("area [m2]")).
		Msg("circle after resize")

	// A simply supported beam with a midspan load.
	beam, err := beams.NewPointLoadBeam(fieldcalc.Args{
		"beam_length":    6.0,
		"youngs_modulus": 210.0e6,
		"moment_inertia": 8.0e-5,
		"point_load":     30.0,
		"load_xmax":      3.0,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("constructing beam")
	}
	mid := len(beam.Deflection) / 2
	logger.Info().
		Float64("reaction_left_kn", beam.ReactionLeft).
		Float64("midspan_deflection_m", beam.Deflection[mid]).
		Msg("point-loaded beam")

	if server != nil {
		logger.Info().Msg("serving dashboard, Ctrl-C to stop")
		select {}
	}
}
