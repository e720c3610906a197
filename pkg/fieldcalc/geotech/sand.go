package geotech

import (
	"math"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/interp"
)

// klevenCurves are the (slope, intercept) pairs of the straight-line fits
// through the Kleven chart at each mean effective stress level.
var klevenCurves = []struct {
	sigmaM    float64
	slope     float64
	intercept float64
}{
	{10.0, 0.2183, 25.667},
	{25.0, 0.2175, 24.75},
	{50.0, 0.22, 23.5},
	{100.0, 0.2175, 22.75},
	{200.0, 0.2, 23.0},
	{400.0, 0.1925, 22.75},
	{800.0, 0.195, 21.3},
}

// FrictionAngleOverburdenKleven calculates the peak drained friction angle of
// sand according to the chart proposed by Kleven (1986), accounting for the
// effective confining pressure and the relative density. The chart was
// calibrated on North Sea sand tests with confining pressures from 10 to
// 800 kPa; lower confinement leads to higher friction angles. The fit to the
// data is not excellent and results should be compared to site-specific
// testing or other correlations.
//
// Reference - Lunne, T., Robertson, P.K., Powell, J.J.M. (1997). Cone
// penetration testing in geotechnical practice. SPON press.
var FrictionAngleOverburdenKleven = &fieldcalc.Calculation{
	Name: "frictionangle_overburden_kleven",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParam("sigma_vo_eff", 10.0, 800.0),
		fieldcalc.FloatParam("relative_density", 40.0, 100.0),
		fieldcalc.FloatParam("Ko", 0.3, 2.0).WithDefault(0.5),
		fieldcalc.FloatParamUnbounded("max_friction_angle").WithDefault(45.0),
	},
	Outputs: []fieldcalc.Output{
		{Name: "phi", Unit: "deg"},
		{Name: "sigma_m", Unit: "kPa"},
	},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		sigmaM := ((1.0 + 2.0*in.Float("Ko")) / 3.0) * in.Float("sigma_vo_eff")
		dr := math.Min(in.Float("relative_density"), 100.0)

		curvePhi := func(i int) float64 {
			return klevenCurves[i].slope*dr + klevenCurves[i].intercept
		}
		// Below the first stress level the chart is read at 10 kPa, above
		// the last at 800 kPa.
		phi := curvePhi(len(klevenCurves) - 1)
		if sigmaM < klevenCurves[0].sigmaM {
			phi = curvePhi(0)
		}
		for i := 0; i < len(klevenCurves)-1; i++ {
			lo, hi := klevenCurves[i].sigmaM, klevenCurves[i+1].sigmaM
			if sigmaM >= lo && sigmaM < hi {
				phi = curvePhi(i) + ((curvePhi(i+1)-curvePhi(i))/(hi-lo))*(sigmaM-lo)
				break
			}
		}
		phi = math.Min(phi, in.Float("max_friction_angle"))

		return fieldcalc.Results{
			"phi [deg]":     phi,
			"sigma_m [kPa]": sigmaM,
		}, nil
	},
}

// LateralEarthPressureRelativeDensityBellotti calculates the coefficient of
// lateral earth pressure at rest from sand relative density, based on
// calibration chamber testing on sands of different relative density.
//
// Reference - Bellotti et al. (1985). Laboratory validation of in-situ tests.
// Italian Geotechnical Society Jubilee Volume, XI ICSMFE, San Francisco.
var LateralEarthPressureRelativeDensityBellotti = &fieldcalc.Calculation{
	Name: "lateralearthpressure_relativedensity_bellotti",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParam("relative_density", 20.0, 100.0),
	},
	Outputs: []fieldcalc.Output{{Name: "Ko", Unit: "-"}},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		ko, err := interp.Linear(in.Float("relative_density"),
			[]float64{
				19.3421756638788, 21.026724113654915, 22.858269268677304, 24.98493424572667,
				27.41347751400974, 29.989017487539066, 32.86193010616428, 35.884092253104676,
				38.75249922559207, 41.16752555546169, 43.73405423671538, 45.99645180366647,
				49.16223142124975, 52.025006336064884, 55.18965954211371, 57.75055616569515,
				60.76145419729098, 64.67573427951902, 67.83588183943004, 70.99940863394443,
				74.46143448508914, 77.0189518740672, 80.47985131367744, 84.24262904452144,
				87.70352848413168, 90.86254963250826, 94.47495142350257, 98.23547633127762,
				99.43961026160909,
			},
			[]float64{
				0.6584269662921348, 0.6280898876404495, 0.601123595505618, 0.5797752808988764,
				0.5573033707865169, 0.5382022471910113, 0.5224719101123596, 0.5078651685393258,
				0.4966292134831461, 0.4876404494382023, 0.4775280898876405, 0.47078651685393264,
				0.46292134831460674, 0.45730337078651684, 0.450561797752809, 0.4460674157303371,
				0.4426966292134832, 0.43820224719101125, 0.4359550561797753, 0.43033707865168547,
				0.4269662921348315, 0.42584269662921354, 0.42359550561797754, 0.42022471910112363,
				0.41797752808988764, 0.41685393258426967, 0.41348314606741576, 0.41235955056179774,
				0.41123595505617977,
			})
		if err != nil {
			return nil, err
		}
		return fieldcalc.Results{"Ko [-]": ko}, nil
	},
}
