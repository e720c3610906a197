// Package fieldcalc provides a validation-and-execution framework for
// engineering calculation routines. Every calculation declares a static table
// of parameter descriptors (admissible ranges for numeric inputs, admissible
// value sets for categorical inputs), and the framework intercepts each
// invocation to validate the supplied arguments before the underlying formula
// runs.
//
// # Quick Start
//
// Declare a calculation with its parameter contract and invoke it:
//
//	calc := &fieldcalc.Calculation{
//		Name: "circle_area",
//		Params: []fieldcalc.Param{
//			fieldcalc.FloatParamMin("radius", 0.0),
//		},
//		Outputs: []fieldcalc.Output{
//			{Name: "area", Unit: "m2", Kind: fieldcalc.Numeric},
//		},
//		Body: func(in fieldcalc.Inputs) (fieldcalc.Results, error) {
//			r := in.Float("radius")
//			return fieldcalc.Results{"area [m2]": math.Pi * r * r}, nil
//		},
//	}
//
//	results, err := calc.Invoke(fieldcalc.Args{"radius": 2.0})
//
// # Failure Modes
//
// Validation failures are handled in one of two ways, selected per call with
// the reserved "fail_silently" key (default true):
//
//   - silent: the call returns a same-shaped result mapping whose numeric
//     entries are NaN and whose categorical entries are nil, so batch sweeps
//     are never interrupted;
//   - strict: the call returns a *ValidationError naming every offending
//     parameter, its supplied value, and the effective admissible bound/set.
//
// Errors raised by the calculation body itself are never silenced; they
// propagate to the caller regardless of fail_silently.
//
// # Per-Call Overrides
//
// The declared bounds of a numeric parameter can be widened or narrowed for a
// single invocation with the reserved "<name>__min" / "<name>__max" keys:
//
//	calc.Invoke(fieldcalc.Args{"radius": -1.0, "radius__min": -2.0})
//
// Overrides never persist across calls. The reserved "validate" key (default
// true) skips validation entirely; this is an explicit escape hatch and is
// unsafe for untrusted input.
//
// # Reactive Entities
//
// Entity applies the same validation contract to stateful objects such as
// geometric shapes: raw attributes are validated on construction and on every
// mutation through Set, and all derived attribute groups are recomputed after
// each successful mutation. See the geometry and beams subpackages.
//
// # Concurrency
//
// Calculations and their descriptors are immutable after definition, so
// concurrent invocation is safe without locking. Entities are not safe for
// concurrent mutation; treat each instance as exclusively owned.
package fieldcalc
