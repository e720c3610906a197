package beams

import (
	"errors"
	"math"
	"testing"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
)

func checkClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("got %v, want %v (tol %v)", got, want, tol)
	}
}

// unitBeam builds a beam with unit length, stiffness and load, so that the
// end conditions can be checked against the closed-form expressions directly.
func unitBeam(t *testing.T, left, right string, extra fieldcalc.Args) *PointLoadBeam {
	t.Helper()
	args := fieldcalc.Args{
		"beam_length":       1.0,
		"youngs_modulus":    1.0,
		"moment_inertia":    1.0,
		"point_load":        1.0,
		"load_xmax":         0.4,
		"supporttype_left":  left,
		"supporttype_right": right,
	}
	for k, v := range extra {
		args[k] = v
	}
	beam, err := NewPointLoadBeam(args)
	if err != nil {
		t.Fatal(err)
	}
	return beam
}

func TestPointLoadBeamEndConditions(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		check       func(t *testing.T, b *PointLoadBeam)
	}{
		{
			name: "free clamped", left: SupportFree, right: SupportClamped,
			check: func(t *testing.T, b *PointLoadBeam) {
				checkClose(t, b.ShearForce[len(b.ShearForce)-1], -1.0, 1e-9)
				checkClose(t, b.DeflectionLeft, -0.864/6.0, 1e-9)
				checkClose(t, b.Deflection[len(b.Deflection)-1], 0.0, 1e-9)
			},
		},
		{
			name: "guided clamped", left: SupportGuided, right: SupportClamped,
			check: func(t *testing.T, b *PointLoadBeam) {
				checkClose(t, b.MomentLeft, 0.18, 1e-9)
				checkClose(t, b.BendingMoment[len(b.BendingMoment)-1], -(1.0-0.16)/2.0, 1e-9)
			},
		},
		{
			name: "support clamped", left: SupportSupport, right: SupportClamped,
			check: func(t *testing.T, b *PointLoadBeam) {
				checkClose(t, b.ReactionLeft, 0.432, 1e-9)
				checkClose(t, b.ShearForce[len(b.ShearForce)-1], -0.568, 1e-9)
				checkClose(t, b.Deflection[len(b.Deflection)-1], 0.0, 1e-9)
			},
		},
		{
			name: "clamped clamped", left: SupportClamped, right: SupportClamped,
			check: func(t *testing.T, b *PointLoadBeam) {
				checkClose(t, b.ShearForce[len(b.ShearForce)-1], -0.352, 1e-9)
				checkClose(t, b.Slope[0], 0.0, 1e-9)
				checkClose(t, b.Deflection[len(b.Deflection)-1], 0.0, 1e-9)
			},
		},
		{
			name: "support support", left: SupportSupport, right: SupportSupport,
			check: func(t *testing.T, b *PointLoadBeam) {
				checkClose(t, b.SlopeLeft, -0.064, 1e-9)
				checkClose(t, b.Slope[len(b.Slope)-1], (0.4/6.0)*(1.0-0.16), 1e-9)
				checkClose(t, b.Deflection[0], 0.0, 1e-9)
				checkClose(t, b.Deflection[len(b.Deflection)-1], 0.0, 1e-9)
			},
		},
		{
			name: "guided support", left: SupportGuided, right: SupportSupport,
			check: func(t *testing.T, b *PointLoadBeam) {
				checkClose(t, b.MomentLeft, 0.6, 1e-9)
				checkClose(t, b.Slope[len(b.Slope)-1], 0.5*(1.0-0.16), 1e-9)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, unitBeam(t, tc.left, tc.right, nil))
		})
	}
}

func TestPointLoadBeamProfileLengths(t *testing.T) {
	b := unitBeam(t, SupportSupport, SupportSupport, fieldcalc.Args{"seed": 101.0})
	if len(b.X) != 101 {
		t.Fatalf("len(X) = %d, want 101", len(b.X))
	}
	for _, prof := range [][]float64{b.ShearForce, b.BendingMoment, b.Slope, b.Deflection} {
		if len(prof) != 101 {
			t.Errorf("profile length = %d, want 101", len(prof))
		}
	}
	checkClose(t, b.X[0], 0.0, 1e-12)
	checkClose(t, b.X[100], 1.0, 1e-12)
}

func TestPointLoadBeamMirroredOrientation(t *testing.T) {
	canon := unitBeam(t, SupportFree, SupportClamped, nil)
	mirror := unitBeam(t, SupportClamped, SupportFree, fieldcalc.Args{"load_xmax": 0.6})

	n := len(canon.Deflection)
	if len(mirror.Deflection) != n {
		t.Fatalf("profile lengths differ: %d vs %d", len(mirror.Deflection), n)
	}
	for i := 0; i < n; i++ {
		checkClose(t, mirror.Deflection[i], canon.Deflection[n-1-i], 1e-9)
		checkClose(t, mirror.BendingMoment[i], canon.BendingMoment[n-1-i], 1e-9)
	}
	// X stays ascending regardless of orientation.
	checkClose(t, mirror.X[0], 0.0, 1e-12)
	checkClose(t, mirror.X[n-1], 1.0, 1e-12)
}

func TestPointLoadBeamSetRecalculates(t *testing.T) {
	b := unitBeam(t, SupportFree, SupportClamped, nil)
	before := b.DeflectionLeft
	if err := b.Set("point_load", 2.0); err != nil {
		t.Fatal(err)
	}
	checkClose(t, b.DeflectionLeft, 2.0*before, 1e-9)
}

func TestPointLoadBeamSilentFailure(t *testing.T) {
	b, err := NewPointLoadBeam(fieldcalc.Args{
		"beam_length":    -1.0,
		"youngs_modulus": 1.0,
		"moment_inertia": 1.0,
		"point_load":     1.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(b.ReactionLeft) {
		t.Errorf("ReactionLeft = %v, want NaN sentinel", b.ReactionLeft)
	}
	if b.Deflection != nil {
		t.Error("profiles must stay nil on silent failure")
	}
}

func TestPointLoadBeamStrictFailure(t *testing.T) {
	_, err := NewPointLoadBeam(fieldcalc.Args{
		"beam_length":    -1.0,
		"youngs_modulus": 1.0,
		"moment_inertia": 1.0,
		"point_load":     1.0,
		"fail_silently":  false,
	})
	var verr *fieldcalc.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Violations[0].Param != "beam_length" {
		t.Errorf("violation names %s, want beam_length", verr.Violations[0].Param)
	}
}

func TestPointLoadBeamUnsupportedCombination(t *testing.T) {
	b := unitBeam(t, SupportFree, SupportFree, nil)
	if !math.IsNaN(b.ReactionLeft) || b.Deflection != nil {
		t.Error("an unsolvable support combination must leave the beam in its sentinel state")
	}

	b.SetFailSilently(false)
	err := b.Set("point_load", 2.0)
	var verr *fieldcalc.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
}

func TestPointLoadBeamSetRollsBackOnStrictFailure(t *testing.T) {
	b := unitBeam(t, SupportSupport, SupportSupport, fieldcalc.Args{"fail_silently": false})
	if err := b.Set("beam_length", -2.0); err == nil {
		t.Fatal("want error for negative length")
	}
	// The failed mutation must not stick.
	checkClose(t, b.Deflection[0], 0.0, 1e-9)
	checkClose(t, b.SlopeLeft, -0.064, 1e-9)
}
