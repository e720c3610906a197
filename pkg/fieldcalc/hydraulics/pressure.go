// Package hydraulics provides pressure drop calculations for turbulent pipe
// flow.
package hydraulics

import (
	"math"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
)

// PipeRoughness maps pipe material descriptions to absolute roughness in
// meters, as read from the Moody chart.
var PipeRoughness = map[string]float64{
	"Drawn tubing":        1.5e-6,
	"Commercial steel":    4.5e-5,
	"Asphalted cast iron": 1.2e-4,
	"Galvanized iron":     1.5e-4,
	"Cast iron":           2.6e-4,
	"Wood stave":          4.5e-4,
	"Water mains,old":     9.0e-4,
	"Concrete":            1.5e-3,
	"Riveted steel":       3.0e-3,
}

func pipeMaterials() []string {
	return []string{
		"Drawn tubing",
		"Commercial steel",
		"Asphalted cast iron",
		"Galvanized iron",
		"Cast iron",
		"Wood stave",
		"Water mains,old",
		"Concrete",
		"Riveted steel",
	}
}

// PressureDropMoody calculates the friction factor for fully turbulent pipe
// flow using Moody's explicit approximation and the resulting pressure drop
// over the pipe length.
//
// The relative roughness is derived from the pipe material and diameter; a
// caller-supplied relative_roughness takes precedence over the material
// lookup. The flow regime is classified as complete turbulence when
// Re * (k/D) * sqrt(f) >= 200, transition region otherwise.
//
// Inputs:
//   - reynolds_number [-], suggested range 4000 <= Re <= 1e8
//   - pipe_diameter [m]
//   - pipe_material, one of the Moody chart materials
//   - pipe_length [m]
//   - flow_velocity [m/s]
//   - fluid_density [kg/m3]
//   - relative_roughness [-] (optional, overrides the material lookup)
//
// Outputs: 'friction_factor [-]', 'flow_regime [-]',
// 'relative_roughness [-]', 'pressure_drop [Pa]'.
var PressureDropMoody = &fieldcalc.Calculation{
	Name: "pressuredrop_relativeroughness_moody",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParam("reynolds_number", 4000.0, 1.0e8),
		fieldcalc.FloatParamMin("pipe_diameter", 0.0),
		fieldcalc.OptionParam("pipe_material", pipeMaterials()...),
		fieldcalc.FloatParamMin("pipe_length", 0.0),
		fieldcalc.FloatParamMin("flow_velocity", 0.0),
		fieldcalc.FloatParamMin("fluid_density", 0.0),
		// Optional: NaN means "derive from the pipe material".
		fieldcalc.FloatParamMin("relative_roughness", 0.0).WithDefault(math.NaN()),
	},
	Outputs: []fieldcalc.Output{
		{Name: "friction_factor", Unit: "-"},
		{Name: "flow_regime", Unit: "-", Kind: fieldcalc.Categorical},
		{Name: "relative_roughness", Unit: "-"},
		{Name: "pressure_drop", Unit: "Pa"},
	},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		re := in.Float("reynolds_number")
		diameter := in.Float("pipe_diameter")

		roughness := PipeRoughness[in.String("pipe_material")] / diameter
		if rr := in.Float("relative_roughness"); !math.IsNaN(rr) {
			roughness = rr
		}

		frictionFactor := 0.0055 * (1.0 + math.Cbrt(2.0e4*roughness+1.0e6/re))

		var regime string
		if re*roughness*math.Sqrt(frictionFactor) >= 200.0 {
			regime = "Complete turbulence"
		} else {
			regime = "Transition Region"
		}

		pressureDrop := frictionFactor * (in.Float("pipe_length") / diameter) *
			0.5 * in.Float("fluid_density") * in.Float("flow_velocity") * in.Float("flow_velocity")

		return fieldcalc.Results{
			"friction_factor [-]":    frictionFactor,
			"flow_regime [-]":        regime,
			"relative_roughness [-]": roughness,
			"pressure_drop [Pa]":     pressureDrop,
		}, nil
	},
}

// Register adds every calculation of this package to the engine.
func Register(e *fieldcalc.Engine) error {
	return e.Register(PressureDropMoody)
}
