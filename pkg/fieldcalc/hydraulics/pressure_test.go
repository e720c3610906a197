package hydraulics

import (
	"math"
	"testing"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
)

func moodyArgs(diameter float64) fieldcalc.Args {
	return fieldcalc.Args{
		"reynolds_number": 1.0e6,
		"pipe_diameter":   diameter,
		"pipe_material":   "Water mains,old",
		"pipe_length":     10.0,
		"flow_velocity":   5.0,
		"fluid_density":   1050.0,
	}
}

func TestPressureDropMoodyFrictionFactor(t *testing.T) {
	res, err := PressureDropMoody.Invoke(moodyArgs(1.0))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Float("friction_factor [-]"); math.Abs(got-0.02) > 0.005 {
		t.Errorf("friction_factor = %v, want ~0.02", got)
	}
	if got := res.Float("relative_roughness [-]"); math.Abs(got-9.0e-4) > 1e-12 {
		t.Errorf("relative_roughness = %v, want 9e-4", got)
	}
	// dp = f * (L/D) * rho v^2 / 2
	f := res.Float("friction_factor [-]")
	wantDP := f * 10.0 * 0.5 * 1050.0 * 25.0
	if got := res.Float("pressure_drop [Pa]"); math.Abs(got-wantDP) > 1e-9 {
		t.Errorf("pressure_drop = %v, want %v", got, wantDP)
	}
}

func TestPressureDropMoodyExplicitRoughness(t *testing.T) {
	args := moodyArgs(1.0)
	args["relative_roughness"] = 0.001
	res, err := PressureDropMoody.Invoke(args)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Float("friction_factor [-]"); math.Abs(got-0.02) > 0.005 {
		t.Errorf("friction_factor = %v, want ~0.02", got)
	}
	if got := res.Float("relative_roughness [-]"); got != 0.001 {
		t.Errorf("relative_roughness = %v, want the supplied 0.001", got)
	}
}

func TestPressureDropMoodyFlowRegime(t *testing.T) {
	res, err := PressureDropMoody.Invoke(moodyArgs(0.3))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.String("flow_regime [-]"); got != "Complete turbulence" {
		t.Errorf("flow_regime = %q, want Complete turbulence", got)
	}

	res, err = PressureDropMoody.Invoke(moodyArgs(2.0))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.String("flow_regime [-]"); got != "Transition Region" {
		t.Errorf("flow_regime = %q, want Transition Region", got)
	}
}

func TestPressureDropMoodyValidation(t *testing.T) {
	args := moodyArgs(1.0)
	args["reynolds_number"] = 100.0

	res, err := PressureDropMoody.Invoke(args)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsSentinel("friction_factor [-]") || !res.IsSentinel("flow_regime [-]") {
		t.Error("out-of-range Reynolds number must produce sentinel outputs")
	}

	args["fail_silently"] = false
	if _, err := PressureDropMoody.Invoke(args); err == nil {
		t.Fatal("strict mode must raise for an out-of-range Reynolds number")
	}

	// A laminar-range Reynolds number is admissible with a relaxed bound.
	args["reynolds_number__min"] = 0.0
	if _, err := PressureDropMoody.Invoke(args); err != nil {
		t.Fatalf("relaxed bound: %v", err)
	}
}

func TestPressureDropMoodyUnknownMaterial(t *testing.T) {
	args := moodyArgs(1.0)
	args["pipe_material"] = "Unobtainium"
	res, err := PressureDropMoody.Invoke(args)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsSentinel("pressure_drop [Pa]") {
		t.Error("unknown material must produce sentinel outputs")
	}
}
