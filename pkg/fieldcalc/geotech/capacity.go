// Package geotech provides geotechnical calculations: bearing capacity
// factors for shallow foundations, CPT and index correlations for sand and
// clay, soil classification and one-dimensional consolidation.
package geotech

import (
	"math"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/interp"
)

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func nqSand(frictionAngle float64) float64 {
	phi := radians(frictionAngle)
	return math.Exp(math.Pi*math.Tan(phi)) * math.Pow(math.Tan(radians(45.0+0.5*frictionAngle)), 2.0)
}

var frictionAngleParam = fieldcalc.FloatParam("friction_angle", 20.0, 50.0)

// NqFrictionAngleSand calculates the bearing capacity factor Nq from the peak
// effective friction angle.
//
//	Nq = exp(pi tan phi) tan^2(45 + phi/2)
//
// Reference - Budhu (2011) Introduction to soil mechanics and foundations.
var NqFrictionAngleSand = &fieldcalc.Calculation{
	Name:    "nq_frictionangle_sand",
	Params:  []fieldcalc.Param{frictionAngleParam},
	Outputs: []fieldcalc.Output{{Name: "Nq", Unit: "-"}},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		return fieldcalc.Results{
			"Nq [-]": nqSand(in.Float("friction_angle")),
		}, nil
	},
}

// NgammaFrictionAngleVesic calculates the bearing capacity factor Ngamma
// according to Vesic (1973):
//
//	Ngamma = 2 (Nq + 1) tan phi
var NgammaFrictionAngleVesic = &fieldcalc.Calculation{
	Name:    "ngamma_frictionangle_vesic",
	Params:  []fieldcalc.Param{frictionAngleParam},
	Outputs: []fieldcalc.Output{{Name: "Ngamma", Unit: "-"}},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		phi := in.Float("friction_angle")
		return fieldcalc.Results{
			"Ngamma [-]": 2.0 * (nqSand(phi) + 1.0) * math.Tan(radians(phi)),
		}, nil
	},
}

// NgammaFrictionAngleMeyerhof calculates the bearing capacity factor Ngamma
// according to Meyerhof (1976), more conservative than the Vesic formulation:
//
//	Ngamma = (Nq - 1) tan(1.4 phi)
var NgammaFrictionAngleMeyerhof = &fieldcalc.Calculation{
	Name: "ngamma_frictionangle_meyerhof",
	Params: []fieldcalc.Param{
		frictionAngleParam,
		fieldcalc.FloatParamUnbounded("frictionangle_multiplier").WithDefault(1.4),
	},
	Outputs: []fieldcalc.Output{{Name: "Ngamma", Unit: "-"}},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		phi := in.Float("friction_angle")
		return fieldcalc.Results{
			"Ngamma [-]": (nqSand(phi) - 1.0) * math.Tan(radians(in.Float("frictionangle_multiplier")*phi)),
		}, nil
	},
}

// NgammaFrictionAngleDavisBooker calculates the bearing capacity factor
// Ngamma according to Davis and Booker (1971), based on a refined plasticity
// method that accounts for footing roughness. Interpolates linearly between
// the fully smooth and fully rough solutions:
//
//	Ngamma_smooth = 0.0663 exp(9.3 phi)
//	Ngamma_rough  = 0.1054 exp(9.6 phi)    (phi in radians)
var NgammaFrictionAngleDavisBooker = &fieldcalc.Calculation{
	Name: "ngamma_frictionangle_davisbooker",
	Params: []fieldcalc.Param{
		frictionAngleParam,
		fieldcalc.FloatParam("roughness_factor", 0.0, 1.0),
		fieldcalc.FloatParamUnbounded("multiplier_smooth").WithDefault(0.0663),
		fieldcalc.FloatParamUnbounded("multiplier_rough").WithDefault(0.1054),
		fieldcalc.FloatParamUnbounded("multiplier_exp_smooth").WithDefault(9.3),
		fieldcalc.FloatParamUnbounded("multiplier_exp_rough").WithDefault(9.6),
	},
	Outputs: []fieldcalc.Output{
		{Name: "Ngamma", Unit: "-"},
		{Name: "Ngamma_smooth", Unit: "-"},
		{Name: "Ngamma_rough", Unit: "-"},
	},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		phi := radians(in.Float("friction_angle"))
		smooth := in.Float("multiplier_smooth") * math.Exp(in.Float("multiplier_exp_smooth")*phi)
		rough := in.Float("multiplier_rough") * math.Exp(in.Float("multiplier_exp_rough")*phi)
		ngamma, err := interp.Linear(in.Float("roughness_factor"),
			[]float64{0.0, 1.0}, []float64{smooth, rough})
		if err != nil {
			return nil, err
		}
		return fieldcalc.Results{
			"Ngamma [-]":        ngamma,
			"Ngamma_smooth [-]": smooth,
			"Ngamma_rough [-]":  rough,
		}, nil
	},
}
