// Package beams provides deflection calculations for thin linear elastic
// beams under point loading.
package beams

import (
	"errors"
	"math"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/interp"
)

// Support types at either end of the beam.
const (
	SupportFree    = "Free"
	SupportSupport = "Support"
	SupportClamped = "Clamped"
	SupportGuided  = "Guided"
)

// endConditions produces the reaction force, moment, slope and deflection at
// the left end of the beam for the supported combinations of end conditions.
// Asymmetric combinations are solved in their canonical orientation; the
// caller mirrors the profiles when the supplied orientation is the reverse.
var endConditions = &fieldcalc.Calculation{
	Name: "beam_pointload_endconditions",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("beam_length", 0.0),
		fieldcalc.FloatParamMin("youngs_modulus", 0.0),
		fieldcalc.FloatParamMin("moment_inertia", 0.0),
		fieldcalc.FloatParamUnbounded("point_load"),
		fieldcalc.FloatParamUnbounded("load_xmax").WithDefault(0.0),
		fieldcalc.OptionParam("supporttype_left",
			SupportFree, SupportSupport, SupportClamped, SupportGuided).WithDefault(SupportSupport),
		fieldcalc.OptionParam("supporttype_right",
			SupportFree, SupportSupport, SupportClamped, SupportGuided).WithDefault(SupportSupport),
		fieldcalc.FloatParamMin("seed", 1.0).WithDefault(50.0),
	},
	Constraints: []fieldcalc.Constraint{
		func(in fieldcalc.Inputs) *fieldcalc.Violation {
			left, right := in.String("supporttype_left"), in.String("supporttype_right")
			if _, _, ok := canonical(left, right); !ok {
				return &fieldcalc.Violation{
					Param:  "supporttype_left",
					Value:  left + "/" + right,
					Detail: "is not a statically solvable support combination",
				}
			}
			return nil
		},
	},
	Outputs: []fieldcalc.Output{
		{Name: "reaction_left", Unit: "kN"},
		{Name: "moment_left", Unit: "kNm"},
		{Name: "slope_left", Unit: "rad"},
		{Name: "deflection_left", Unit: "m"},
	},
	Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
		length := in.Float("beam_length")
		load := in.Float("point_load")
		rigidity := in.Float("youngs_modulus") * in.Float("moment_inertia")

		kind, flipped, _ := canonical(in.String("supporttype_left"), in.String("supporttype_right"))
		a := in.Float("load_xmax")
		if flipped {
			a = length - a
		}

		var reaction, moment, slope, deflection float64
		switch kind {
		case caseFreeClamped:
			reaction = 0.0
			moment = 0.0
			slope = load * math.Pow(length-a, 2.0) / (2.0 * rigidity)
			deflection = (-load / (6.0 * rigidity)) *
				(2.0*math.Pow(length, 3.0) - 3.0*length*length*a + math.Pow(a, 3.0))
		case caseSupportClamped:
			reaction = (load / (2.0 * math.Pow(length, 3.0))) *
				math.Pow(length-a, 2.0) * (2.0*length + a)
			moment = 0.0
			slope = ((-load * a) / (4.0 * rigidity * length)) * math.Pow(length-a, 2.0)
			deflection = 0.0
		case caseGuidedClamped:
			reaction = 0.0
			moment = load * math.Pow(length-a, 2.0) / (2.0 * length)
			slope = 0.0
			deflection = (-load / (12.0 * rigidity)) *
				math.Pow(length-a, 2.0) * (length + 2.0*a)
		case caseClampedClamped:
			reaction = (load / math.Pow(length, 3.0)) *
				math.Pow(length-a, 2.0) * (length + 2.0*a)
			moment = ((-load * a) / (length * length)) * math.Pow(length-a, 2.0)
			slope = 0.0
			deflection = 0.0
		case caseSupportSupport:
			reaction = (load / length) * (length - a)
			moment = 0.0
			slope = ((-load * a) / (6.0 * rigidity * length)) *
				(2.0*length - a) * (length - a)
			deflection = 0.0
		case caseGuidedSupport:
			reaction = 0.0
			moment = load * (length - a)
			slope = 0.0
			deflection = ((-load * (length - a)) / (6.0 * rigidity)) *
				(2.0*length*length + 2.0*a*length - a*a)
		}

		return fieldcalc.Results{
			"reaction_left [kN]":  reaction,
			"moment_left [kNm]":   moment,
			"slope_left [rad]":    slope,
			"deflection_left [m]": deflection,
		}, nil
	},
}

type supportCase int

const (
	caseFreeClamped supportCase = iota
	caseSupportClamped
	caseGuidedClamped
	caseClampedClamped
	caseSupportSupport
	caseGuidedSupport
)

// canonical maps a left/right support pair onto its canonical case and
// reports whether the supplied orientation is the mirror image of it.
func canonical(left, right string) (kind supportCase, flipped bool, ok bool) {
	switch {
	case left == SupportFree && right == SupportClamped:
		return caseFreeClamped, false, true
	case left == SupportClamped && right == SupportFree:
		return caseFreeClamped, true, true
	case left == SupportSupport && right == SupportClamped:
		return caseSupportClamped, false, true
	case left == SupportClamped && right == SupportSupport:
		return caseSupportClamped, true, true
	case left == SupportGuided && right == SupportClamped:
		return caseGuidedClamped, false, true
	case left == SupportClamped && right == SupportGuided:
		return caseGuidedClamped, true, true
	case left == SupportClamped && right == SupportClamped:
		return caseClampedClamped, false, true
	case left == SupportSupport && right == SupportSupport:
		return caseSupportSupport, false, true
	case left == SupportGuided && right == SupportSupport:
		return caseGuidedSupport, false, true
	case left == SupportSupport && right == SupportGuided:
		return caseGuidedSupport, true, true
	}
	return 0, false, false
}

// PointLoadBeam represents a thin linear elastic beam with a single point
// load, for which shear forces, bending moments, slopes and deflections are
// calculated numerically along the beam length.
//
// The underlying theory assumes the beam is originally straight, deforms only
// linear-elastically, is slender (length to height ratio above 10) and
// deflects by less than a tenth of the span. Under those conditions the
// deflection w is governed by w'' = M(x) / (E I).
//
// Profiles are recomputed on construction and after every successful Set.
// Under the default fail-silent mode an invalid dimension leaves every scalar
// NaN and every profile nil. For combined loading, superposition applies:
// create one beam per load case and sum the deflection profiles.
//
// Reference - Wikipedia: https://en.wikipedia.org/wiki/Deflection_(engineering)
type PointLoadBeam struct {
	args         fieldcalc.Args
	failSilently bool

	// Left-end state resulting from the support conditions.
	ReactionLeft   float64
	MomentLeft     float64
	SlopeLeft      float64
	DeflectionLeft float64

	// Profiles along the beam, one entry per node. X is always ascending;
	// the other profiles are mirrored for mirrored support combinations.
	X             []float64
	ShearForce    []float64
	BendingMoment []float64
	Slope         []float64
	Deflection    []float64
}

// NewPointLoadBeam constructs a beam and calculates its profiles. Args:
// 'beam_length' [m], 'youngs_modulus' [kPa], 'moment_inertia' [m4],
// 'point_load' [kN], 'load_xmax' [m] (default 0), 'supporttype_left' and
// 'supporttype_right' (default "Support"), 'seed' node count (default 50),
// plus the usual control keys.
func NewPointLoadBeam(args fieldcalc.Args) (*PointLoadBeam, error) {
	ctl := fieldcalc.Args{}
	kept := fieldcalc.Args{}
	for k, v := range args {
		if k == fieldcalc.KeyFailSilently {
			ctl[k] = v
			continue
		}
		kept[k] = v
	}
	failSilently := true
	if v, ok := ctl[fieldcalc.KeyFailSilently]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, &invalidFlagError{}
		}
		failSilently = b
	}
	beam := &PointLoadBeam{args: kept, failSilently: failSilently}
	if err := beam.Calculate(); err != nil {
		return nil, err
	}
	return beam, nil
}

type invalidFlagError struct{}

func (*invalidFlagError) Error() string {
	return "beams: fail_silently must be a bool"
}

// Set assigns a new value to one constructor argument and recalculates.
func (b *PointLoadBeam) Set(name string, value any) error {
	old, had := b.args[name]
	b.args[name] = value
	if err := b.Calculate(); err != nil {
		if had {
			b.args[name] = old
		} else {
			delete(b.args, name)
		}
		// Restore the profiles of the last valid state.
		if rerr := b.Calculate(); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	return nil
}

// FailSilently reports the beam's failure mode.
func (b *PointLoadBeam) FailSilently() bool { return b.failSilently }

// SetFailSilently switches the failure mode applied to later recalculations.
func (b *PointLoadBeam) SetFailSilently(v bool) { b.failSilently = v }

// Calculate revalidates the beam arguments and rebuilds all profiles. Under
// the silent failure mode an invalid argument set leaves the beam in its
// sentinel state with a nil error.
func (b *PointLoadBeam) Calculate() error {
	b.reset()

	args := make(fieldcalc.Args, len(b.args)+1)
	for k, v := range b.args {
		args[k] = v
	}
	args[fieldcalc.KeyFailSilently] = b.failSilently

	res, err := endConditions.Invoke(args)
	if err != nil {
		return err
	}
	if res.IsSentinel("reaction_left [kN]") {
		return nil
	}
	b.ReactionLeft = res.Float("reaction_left [kN]")
	b.MomentLeft = res.Float("moment_left [kNm]")
	b.SlopeLeft = res.Float("slope_left [rad]")
	b.DeflectionLeft = res.Float("deflection_left [m]")

	length := floatArg(b.args, "beam_length", 0.0)
	load := floatArg(b.args, "point_load", 0.0)
	rigidity := floatArg(b.args, "youngs_modulus", 0.0) * floatArg(b.args, "moment_inertia", 0.0)
	seed := int(floatArg(b.args, "seed", 50.0))

	left := stringArg(b.args, "supporttype_left", SupportSupport)
	right := stringArg(b.args, "supporttype_right", SupportSupport)
	_, flipped, _ := canonical(left, right)
	a := floatArg(b.args, "load_xmax", 0.0)
	if flipped {
		a = length - a
	}

	b.X = interp.Linspace(0.0, length, seed)
	b.ShearForce = make([]float64, seed)
	b.BendingMoment = make([]float64, seed)
	b.Slope = make([]float64, seed)
	b.Deflection = make([]float64, seed)

	for i, x := range b.X {
		mult := 0.0
		if x >= a {
			mult = 1.0
		}
		b.ShearForce[i] = b.ReactionLeft - load
		b.BendingMoment[i] = b.MomentLeft + b.ReactionLeft*x - load*mult*(x-a)
		b.Slope[i] = b.SlopeLeft + b.MomentLeft*x/rigidity +
			b.ReactionLeft*x*x/(2.0*rigidity) -
			load*math.Pow(mult*(x-a), 2.0)/(2.0*rigidity)
		b.Deflection[i] = b.DeflectionLeft + b.SlopeLeft*x +
			b.MomentLeft*x*x/(2.0*rigidity) +
			b.ReactionLeft*math.Pow(x, 3.0)/(6.0*rigidity) -
			load*math.Pow(mult*(x-a), 3.0)/(6.0*rigidity)
	}

	if flipped {
		reverse(b.ShearForce)
		reverse(b.BendingMoment)
		reverse(b.Slope)
		reverse(b.Deflection)
	}
	return nil
}

func (b *PointLoadBeam) reset() {
	b.ReactionLeft = math.NaN()
	b.MomentLeft = math.NaN()
	b.SlopeLeft = math.NaN()
	b.DeflectionLeft = math.NaN()
	b.X = nil
	b.ShearForce = nil
	b.BendingMoment = nil
	b.Slope = nil
	b.Deflection = nil
}

func reverse(values []float64) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}

func floatArg(args fieldcalc.Args, name string, fallback float64) float64 {
	if v, ok := args[name]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

func stringArg(args fieldcalc.Args, name, fallback string) string {
	if s, ok := args[name].(string); ok {
		return s
	}
	return fallback
}
