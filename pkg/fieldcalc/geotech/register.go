package geotech

import "github.com/fieldcalc/fieldcalc/pkg/fieldcalc"

// Register adds every calculation of this package to the engine.
func Register(e *fieldcalc.Engine) error {
	for _, c := range []*fieldcalc.Calculation{
		NqFrictionAngleSand,
		NgammaFrictionAngleVesic,
		NgammaFrictionAngleMeyerhof,
		NgammaFrictionAngleDavisBooker,
		FrictionAngleOverburdenKleven,
		LateralEarthPressureRelativeDensityBellotti,
		LateralEarthPressurePlasticityMassarsch,
		SecondaryCompressionRatioWaterContentMesri,
		GmaxCPTClayMayneRix95,
		PermeabilityRemouldedClayCarrierBeckman,
		PlasticityChart,
		ConsolidationDrainageJanbu,
	} {
		if err := e.Register(c); err != nil {
			return err
		}
	}
	return nil
}
