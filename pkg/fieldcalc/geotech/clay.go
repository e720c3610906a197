package geotech

import (
	"math"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/interp"
)

// LateralEarthPressurePlasticityMassarsch calculates the coefficient of
// lateral earth pressure at rest from the plasticity index for a normally
// consolidated clay, based on tests on normally consolidated Italian clays.
// For PI below 20 percent the correlation overestimates Ko.
//
// Reference - Massarsch K.R. (1979). Lateral earth pressure in normally
// consolidated clay. 8th ECSMFE, Brighton, 2: 245-249.
var LateralEarthPressurePlasticityMassarsch = &fieldcalc.Calculation{
	Name: "lateralearthpressure_plasticity_massarsch",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParam("plasticity_index", 20.0, 70.0),
	},
	Outputs: []fieldcalc.Output{{Name: "Ko", Unit: "-"}},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		ko, err := interp.Linear(in.Float("plasticity_index"),
			[]float64{0.0, 110.0},
			[]float64{0.4668587896253603, 0.8631123919308359})
		if err != nil {
			return nil, err
		}
		return fieldcalc.Results{"Ko [-]": ko}, nil
	},
}

// SecondaryCompressionRatioWaterContentMesri correlates the secondary
// compression ratio of a clay with its natural water content; the logarithms
// of the two quantities correlate linearly. Note that the secondary
// compression ratio is NOT the ratio of the secondary compression index to
// the compression index.
//
// Reference - Mesri G, Godlewski P.M. (1977). Time and stress-compressibility
// interrelationship. Journal of Geotechnical Eng. Division, ASCE, GT5.
var SecondaryCompressionRatioWaterContentMesri = &fieldcalc.Calculation{
	Name: "secondarycompressionratio_watercontent_mesri",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParam("water_content", 10.0, 2000.0),
	},
	Outputs: []fieldcalc.Output{{Name: "secondary_compression_ratio", Unit: "%"}},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		ratio, err := interp.LogLog(in.Float("water_content"),
			[]float64{9.999703334951846, 3822.2040801773114},
			[]float64{0.10000890047953175, 39.942386556889026})
		if err != nil {
			return nil, err
		}
		return fieldcalc.Results{"secondary_compression_ratio [%]": ratio}, nil
	},
}

// GmaxCPTClayMayneRix95 calculates the small-strain shear modulus of intact
// and fissured clays from cone tip resistance, used when the initial void
// ratio is difficult to estimate:
//
//	Vs = 1.75 (1000 qc)^0.627
//	Gmax = rho Vs^2 / 1000
//
// Reference - Ameratunga, J., Sivakugan, N., Das, B.M. (2016). Correlations
// of Soil and Rock Properties in Geotechnical Engineering. Springer, India.
var GmaxCPTClayMayneRix95 = &fieldcalc.Calculation{
	Name: "gmax_cptclay_maynerix95",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParam("cone_resistance", 0.0, 120.0),
		fieldcalc.FloatParam("density", 1000.0, 3000.0),
		fieldcalc.FloatParamUnbounded("coefficient_1").WithDefault(1.75),
		fieldcalc.FloatParamUnbounded("coefficient_2").WithDefault(0.627),
	},
	Outputs: []fieldcalc.Output{
		{Name: "Vs", Unit: "m/s"},
		{Name: "Gmax", Unit: "kPa"},
	},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		vs := in.Float("coefficient_1") * math.Pow(1.0e3*in.Float("cone_resistance"), in.Float("coefficient_2"))
		gmax := in.Float("density") * vs * vs * 1.0e-3
		return fieldcalc.Results{
			"Vs [m/s]":   vs,
			"Gmax [kPa]": gmax,
		}, nil
	},
}

// PermeabilityRemouldedClayCarrierBeckman calculates the permeability of a
// remoulded clay from its void ratio and Atterberg limits:
//
//	k = (0.0174 / (1 + e)) * [(e - 0.027 (PL - 0.242 PI)) / PI]^4.29
//
// Reference - Carrier WD III, Beckman JF (1984). Correlations between index
// tests and the properties of remolded clays. Geotechnique 34(2).
var PermeabilityRemouldedClayCarrierBeckman = &fieldcalc.Calculation{
	Name: "permeability_remouldedclay_carrierbeckman",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParam("void_ratio", 0.0, 4.0),
		fieldcalc.FloatParam("plastic_limit", 0.0, 100.0),
		fieldcalc.FloatParam("plasticity_index", 0.0, 100.0),
		fieldcalc.FloatParamUnbounded("coefficient_1").WithDefault(0.0174),
		fieldcalc.FloatParamUnbounded("coefficient_2").WithDefault(0.027),
		fieldcalc.FloatParamUnbounded("coefficient_3").WithDefault(0.242),
		fieldcalc.FloatParamUnbounded("coefficient_4").WithDefault(4.29),
	},
	Outputs: []fieldcalc.Output{{Name: "k", Unit: "m/s"}},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		e := in.Float("void_ratio")
		pl := in.Float("plastic_limit")
		pi := in.Float("plasticity_index")
		k := (in.Float("coefficient_1") / (1.0 + e)) *
			math.Pow((e-in.Float("coefficient_2")*(pl-in.Float("coefficient_3")*pi))/pi, in.Float("coefficient_4"))
		return fieldcalc.Results{"k [m/s]": k}, nil
	},
}
