package fieldcalc

import (
	"errors"
	"math"
	"testing"
)

// boxDef is a two-attribute entity with one derived group, enough to exercise
// construction, mutation and recomputation.
func boxDef() EntityDef {
	return EntityDef{
		Name: "box",
		Params: []Param{
			FloatParamMin("width", 0.0),
			FloatParamMin("height", 0.0),
		},
		Constraints: []Constraint{
			func(in Inputs) *Violation {
				if in.Float("height") > 10.0*in.Float("width") {
					return &Violation{Param: "height", Value: in.Float("height"),
						Detail: "cannot exceed ten times the width"}
				}
				return nil
			},
		},
		Groups: []DerivedGroup{{
			Name: "size",
			Outputs: []Output{
				{Name: "area", Unit: "m2"},
				{Name: "perimeter", Unit: "m"},
			},
		}},
		Derive: func(in Inputs) (map[string]Results, error) {
			w, h := in.Float("width"), in.Float("height")
			return map[string]Results{
				"size": {
					"area [m2]":     w * h,
					"perimeter [m]": 2.0 * (w + h),
				},
			}, nil
		},
	}
}

func TestNewEntityComputesDerivedGroups(t *testing.T) {
	e, err := NewEntity(boxDef(), Args{"width": 2.0, "height": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Group("size").Float("area [m2]"); got != 6.0 {
		t.Errorf("area = %v, want 6", got)
	}
	if got := e.Group("size").Float("perimeter [m]"); got != 10.0 {
		t.Errorf("perimeter = %v, want 10", got)
	}
}

func TestNewEntitySilentFailure(t *testing.T) {
	e, err := NewEntity(boxDef(), Args{"width": -2.0, "height": 3.0})
	if err != nil {
		t.Fatalf("silent construction must not error, got %v", err)
	}
	if !math.IsNaN(e.Float("width")) {
		t.Errorf("width = %v, want NaN sentinel", e.Float("width"))
	}
	// The valid attribute keeps its value.
	if got := e.Float("height"); got != 3.0 {
		t.Errorf("height = %v, want 3", got)
	}
	if !e.Group("size").IsSentinel("area [m2]") {
		t.Error("derived group must hold sentinels after a silent failure")
	}
}

func TestNewEntityStrictFailure(t *testing.T) {
	_, err := NewEntity(boxDef(), Args{"width": -2.0, "height": 3.0, "fail_silently": false})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
}

func TestSetRecomputesAllDerivedGroups(t *testing.T) {
	e, err := NewEntity(boxDef(), Args{"width": 2.0, "height": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Set("width", 4.0); err != nil {
		t.Fatal(err)
	}
	if got := e.Group("size").Float("area [m2]"); got != 12.0 {
		t.Errorf("area = %v, want 12 after mutation", got)
	}
	if got := e.Group("size").Float("perimeter [m]"); got != 14.0 {
		t.Errorf("perimeter = %v, want 14 after mutation", got)
	}
}

func TestSetSilentFailureStoresSentinel(t *testing.T) {
	e, err := NewEntity(boxDef(), Args{"width": 2.0, "height": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Set("width", -1.0); err != nil {
		t.Fatalf("silent mutation must not error, got %v", err)
	}
	if !math.IsNaN(e.Float("width")) {
		t.Errorf("width = %v, want NaN sentinel", e.Float("width"))
	}
	if !e.Group("size").IsSentinel("perimeter [m]") {
		t.Error("derived group must hold sentinels after a failed mutation")
	}
}

func TestSetStrictFailureLeavesEntityUnchanged(t *testing.T) {
	e, err := NewEntity(boxDef(), Args{"width": 2.0, "height": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	e.SetFailSilently(false)
	err = e.Set("width", -1.0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if got := e.Float("width"); got != 2.0 {
		t.Errorf("width = %v, want 2 (unchanged)", got)
	}
	if got := e.Group("size").Float("area [m2]"); got != 6.0 {
		t.Errorf("area = %v, want 6 (unchanged)", got)
	}
}

func TestSetCrossAttributeConstraint(t *testing.T) {
	e, err := NewEntity(boxDef(), Args{"width": 2.0, "height": 3.0, "fail_silently": false})
	if err != nil {
		t.Fatal(err)
	}
	// 30 > 10*2: rejected by the cross-attribute rule, not by the bound.
	err = e.Set("height", 30.0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Violations[0].Param != "height" {
		t.Errorf("violation names %s, want height", verr.Violations[0].Param)
	}
}

func TestSetUnknownAttributeAlwaysErrors(t *testing.T) {
	e, err := NewEntity(boxDef(), Args{"width": 2.0, "height": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Set("depth", 1.0); err == nil {
		t.Fatal("unknown attribute must error even in silent mode")
	}
}

func TestRecalculateAndRepair(t *testing.T) {
	e, err := NewEntity(boxDef(), Args{"width": -2.0, "height": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	// The NaN sentinel passes range checks, so recalculation propagates it
	// into the derived values instead of raising.
	if err := e.Recalculate(); err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(e.Group("size").Float("area [m2]")) {
		t.Error("recalculated area must stay NaN while width holds the sentinel")
	}

	// Repairing the attribute restores the groups.
	if err := e.Set("width", 2.0); err != nil {
		t.Fatal(err)
	}
	if got := e.Group("size").Float("area [m2]"); got != 6.0 {
		t.Errorf("area = %v, want 6 after repair", got)
	}
}

func TestNewEntityRequiresDerive(t *testing.T) {
	def := boxDef()
	def.Derive = nil
	if _, err := NewEntity(def, Args{"width": 1.0, "height": 1.0}); err == nil {
		t.Fatal("expected an error for a definition without a derive function")
	}
}
