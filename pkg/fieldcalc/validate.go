package fieldcalc

import (
	"fmt"
	"strings"
)

// Violation records one parameter that failed its admissibility check: the
// parameter name, the value the caller supplied, the effective admissible
// bound or set for this call (declared bounds adjusted by any overrides), and
// a human-readable detail.
type Violation struct {
	Param      string
	Value      any
	Constraint string
	Detail     string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s (%v) %s", v.Param, v.Value, v.Detail)
}

// ValidationError reports every parameter of one invocation that failed
// validation. It is returned only under fail_silently=false; the default
// silent mode substitutes sentinel outputs instead.
type ValidationError struct {
	Calculation string
	Violations  []Violation
}

func (e *ValidationError) Error() string {
	details := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		details[i] = v.String()
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Calculation, strings.Join(details, "; "))
}

// Constraint is a cross-parameter admissibility rule evaluated during the
// validation stage, after every per-parameter check has passed. It returns
// nil when the rule holds. Constraints share the validation failure policy:
// silent mode substitutes sentinels, strict mode raises.
type Constraint func(in Inputs) *Violation

// resolveEffectiveBounds returns the admissible bounds for a numeric
// parameter in this call: the declared bounds unless the call carries
// "<name>__min" / "<name>__max" override keys, in which case the overridden
// bound replaces the declared one for this invocation only. A nil override
// value clears the bound. Categorical parameters have no override mechanism;
// their admissible set is returned unchanged by the caller using
// Param.Options directly.
func resolveEffectiveBounds(p Param, args Args) (min, max *float64) {
	min, max = p.Min, p.Max
	if v, ok := args[p.overrideMinKey()]; ok {
		if v == nil {
			min = nil
		} else if f, ok := toFloat(v); ok {
			min = &f
		}
	}
	if v, ok := args[p.overrideMaxKey()]; ok {
		if v == nil {
			max = nil
		} else if f, ok := toFloat(v); ok {
			max = &f
		}
	}
	return min, max
}

// validateParam checks one merged argument against its descriptor using the
// effective bounds for this call. A missing value (required parameter with no
// default) is itself a violation so that silent mode can absorb it.
//
// A supplied NaN passes numeric range checks: NaN marks an upstream silent
// failure and must be able to flow through chained calculations without
// raising.
func validateParam(p Param, value any, present bool, args Args) *Violation {
	if p.Kind == Categorical {
		constraint := constraintString(Categorical, nil, nil, p.Options)
		if !present {
			return &Violation{Param: p.Name, Constraint: constraint,
				Detail: "is required but was not supplied"}
		}
		s, ok := value.(string)
		if !ok {
			return &Violation{Param: p.Name, Value: value, Constraint: constraint,
				Detail: fmt.Sprintf("is not a string (got %T)", value)}
		}
		for _, option := range p.Options {
			if s == option {
				return nil
			}
		}
		return &Violation{Param: p.Name, Value: value, Constraint: constraint,
			Detail: "not included in admissible set " + constraint}
	}

	min, max := resolveEffectiveBounds(p, args)
	constraint := constraintString(Numeric, min, max, nil)
	if !present {
		return &Violation{Param: p.Name, Constraint: constraint,
			Detail: "is required but was not supplied"}
	}
	f, ok := toFloat(value)
	if !ok {
		return &Violation{Param: p.Name, Value: value, Constraint: constraint,
			Detail: fmt.Sprintf("is not a floating point number (got %T)", value)}
	}
	if min != nil && f < *min {
		return &Violation{Param: p.Name, Value: value, Constraint: constraint,
			Detail: fmt.Sprintf("cannot be smaller than %v", *min)}
	}
	if max != nil && f > *max {
		return &Violation{Param: p.Name, Value: value, Constraint: constraint,
			Detail: fmt.Sprintf("cannot be greater than %v", *max)}
	}
	return nil
}

// validateAll evaluates every descriptor against its merged argument and
// collects all violations rather than stopping at the first, which is the
// more useful diagnostic for strict-mode callers and changes nothing in
// silent mode. Cross-parameter constraints run only once every per-parameter
// check has passed, so they can assume complete, admissible inputs.
// Validation is a pure function of (descriptors, arguments, overrides).
func validateAll(params []Param, constraints []Constraint, merged map[string]any, args Args) []Violation {
	var violations []Violation
	for _, p := range params {
		value, present := merged[p.Name]
		if v := validateParam(p, value, present, args); v != nil {
			violations = append(violations, *v)
		}
	}
	if len(violations) > 0 {
		return violations
	}
	in := Inputs{values: merged}
	for _, check := range constraints {
		if v := check(in); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}
