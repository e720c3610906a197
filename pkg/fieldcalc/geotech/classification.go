package geotech

import (
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
)

// PlasticityChart classifies fine-grained soils according to their plasticity
// using the Casagrande chart. The chart comprises six regions divided by the
// A-line; soils above the A-line are inorganic clays, soils below it are
// inorganic silts, organic silts or organic clays.
//
//	PI_Aline = 0.73 (wL - 20)
//
// Reference - Casagrande, A. (1948). Classification and Identification of
// Soils. Transaction, ASCE, vol. 113, 901-930.
var PlasticityChart = &fieldcalc.Calculation{
	Name: "plasticity_chart",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParam("liquid_limit", 0.0, 100.0),
		fieldcalc.FloatParam("plasticity_index", 0.0, 70.0),
	},
	Outputs: []fieldcalc.Output{
		{Name: "classification", Unit: "-", Kind: fieldcalc.Categorical},
		{Name: "aline_PI", Unit: "%"},
	},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		liquidLimit := in.Float("liquid_limit")
		plasticityIndex := in.Float("plasticity_index")

		alinePI := 0.0
		if liquidLimit >= 20.0 {
			alinePI = 0.73 * (liquidLimit - 20.0)
		}

		var classification string
		switch {
		case liquidLimit < 30.0:
			if plasticityIndex < alinePI {
				classification = "Inorganic Silts of Low Compressibility"
			} else {
				classification = "Inorganic Clays of Low Plasticity"
			}
		case liquidLimit < 50.0:
			if plasticityIndex < alinePI {
				classification = "Inorganic Silts of Medium Comprssibility and Organic Silts"
			} else {
				classification = "Inorganic Clays of Medium Plasticity"
			}
		default:
			if plasticityIndex < alinePI {
				classification = "Inorganic Silts of High Comprssibility and Organic Clays"
			} else {
				classification = "Inorganic Clays of High Plasticity"
			}
		}

		return fieldcalc.Results{
			"classification [-]": classification,
			"aline_PI [%]":       alinePI,
		}, nil
	},
}
