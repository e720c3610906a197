package geotech

import (
	"math"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/interp"
)

const secondsPerYear = 365.0 * 24.0 * 3600.0

// Digitized Janbu (1956) solution curves: log10 of the time factor against
// average degree of consolidation in percent. For a constant initial stress
// distribution the single- and double-drainage solutions coincide.
var (
	janbuConstantLogTv = []float64{
		-3.02247191011236, -2.75280898876405, -2.48876404494382, -2.32022471910112,
		-2.13483146067416, -1.9438202247191, -1.76404494382023, -1.55056179775281,
		-1.32022471910112, -1.14044943820225, -0.966292134831463, -0.808988764044945,
		-0.691011235955056, -0.606741573033708, -0.516853932584271, -0.387640449438202,
		-0.280898876404495, -0.179775280898877, -7.86516853932586e-02, 5.05617977528079e-02,
		0.191011235955055, 0.348314606741571, 0.494382022471909,
	}
	janbuConstantDegree = []float64{
		2.95554469956033, 4.91548607718612, 6.87445041524182, 8.81680508060576,
		10.4142647777235, 13.0561797752809, 15.696140693698, 19.9071812408402,
		25.3385442110405, 31.4567659990229, 38.2696629213483, 44.905715681485,
		51.7088422081094, 56.7669760625305, 62.8695652173913, 71.2398632144601,
		77.867122618466, 84.3194919394235, 89.9022960429897, 93.9247679531021,
		97.2535417684416, 99.3678553981436, 100.0,
	}

	janbuTriangularIncreasingLogTv = []float64{
		-2.07303370786517, -1.79213483146068, -1.52808988764045, -1.33707865168539,
		-1.1685393258427, -1.01123595505618, -0.876404494382024, -0.764044943820226,
		-0.679775280898877, -0.601123595505619, -0.51123595505618, -0.432584269662921,
		-0.342696629213483, -0.264044943820225, -0.179775280898877, -0.106741573033708,
		0, 0.117977528089886, 0.241573033707864, 0.365168539325842, 0.499999999999999,
	}
	janbuTriangularIncreasingDegree = []float64{
		0.511968734733757, 3.34342940889106, 6.69369809477284, 10.3790913531998,
		14.7562286272594, 20.6966292134831, 26.8070346849047, 32.9135319980459,
		39.5368832437713, 45.4636052760136, 52.609672691744, 58.8842208109428,
		66.3781143136297, 72.4787493893502, 78.9281875915974, 85.0278456277479,
		90.7855398143624, 94.6321446018563, 97.2623351245725, 99.1968734733756, 100.0,
	}

	janbuTriangularDecreasingLogTv = []float64{
		-3.01685393258427, -2.75280898876405, -2.53932584269663, -2.3314606741573,
		-2.09550561797753, -1.89887640449438, -1.62921348314607, -1.38202247191011,
		-1.13483146067416, -0.955056179775282, -0.769662921348315, -0.629213483146068,
		-0.48876404494382, -0.303370786516854, -0.185393258426966, -6.17977528089892e-02,
		0.056179775280898, 0.151685393258425, 0.264044943820223,
	}
	janbuTriangularDecreasingDegree = []float64{
		9.56521739130434, 11.3502686858817, 13.648265754763, 16.2931118710307,
		20.1602344894968, 24.3683439179286, 30.6761113825109, 38.0234489496824,
		46.2403517342452, 53.923790913532, 61.4342940889105, 68.4152418172935,
		75.04836345872, 83.0806057645334, 88.3185148998534, 93.0356619443087,
		96.3605276013678, 98.8119198827552, 100.0,
	}
)

// ConsolidationDrainageJanbu calculates the average degree of consolidation
// for different drainage characteristics and initial stress distributions.
// For a triangular stress distribution and double drainage the constant
// distribution solution applies; for one-sided drainage and triangular
// stress distributions the chart according to Janbu (1956) is interpolated.
//
// In a thin layer of partially drained soil a uniform stress distribution
// applies. In deep homogeneous clay a triangular stress distribution,
// decreasing with depth, applies. The drainage path length is half the layer
// thickness for double drainage and the full layer thickness for single-sided
// drainage.
//
//	Tv = cv t / Hdr^2    (cv converted from m2/yr to m2/s)
//
// Reference - Janbu (1956).
var ConsolidationDrainageJanbu = &fieldcalc.Calculation{
	Name: "consolidation_drainage_janbu",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("time", 0.0),
		fieldcalc.FloatParam("consolidation_coefficient", 0.1, 10000.0),
		fieldcalc.FloatParamMin("drainage_path_length", 0.0),
		fieldcalc.OptionParam("drainage_type", "single", "double").WithDefault("double"),
		fieldcalc.OptionParam("stress_distribution",
			"constant", "triangular increasing", "triangular decreasing").WithDefault("constant"),
	},
	Outputs: []fieldcalc.Output{
		{Name: "consolidation_degree", Unit: "%"},
		{Name: "time_factor", Unit: "-"},
	},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		timeFactor := (in.Float("consolidation_coefficient") / secondsPerYear) *
			in.Float("time") / math.Pow(in.Float("drainage_path_length"), 2.0)

		logTv := math.Log10(timeFactor)
		var (
			degree float64
			err    error
		)
		if in.String("drainage_type") == "double" {
			degree, err = interp.Linear(logTv, janbuConstantLogTv, janbuConstantDegree)
		} else {
			switch in.String("stress_distribution") {
			case "constant":
				degree, err = interp.Linear(logTv, janbuConstantLogTv, janbuConstantDegree)
			case "triangular increasing":
				degree, err = interp.Linear(logTv, janbuTriangularIncreasingLogTv, janbuTriangularIncreasingDegree)
			case "triangular decreasing":
				degree, err = interp.Linear(logTv, janbuTriangularDecreasingLogTv, janbuTriangularDecreasingDegree)
			}
		}
		if err != nil {
			return nil, err
		}

		return fieldcalc.Results{
			"consolidation_degree [%]": degree,
			"time_factor [-]":          timeFactor,
		}, nil
	},
}
