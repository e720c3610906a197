package fieldcalc

import (
	"fmt"
)

// Body is the pluggable computation wrapped by the framework. It receives the
// merged, validated argument set with every framework-reserved key stripped,
// and returns the output mapping. Errors returned by a Body are domain
// failures (division by zero, out-of-chart interpolation, ...) and are never
// converted to sentinels by the framework.
type Body func(in Inputs) (Results, error)

// Calculation binds a computation body to its static parameter contract.
// A Calculation is immutable after definition, so concurrent invocation is
// safe without locking.
type Calculation struct {
	// Name identifies the calculation, e.g. for engine registration and
	// diagnostics.
	Name string

	// Params declares the validation contract of every input, in the
	// positional order accepted by Call.
	Params []Param

	// Outputs declares the shape of the result mapping, used to build the
	// sentinel-shaped error return under fail-silent mode.
	Outputs []Output

	// Constraints holds optional cross-parameter admissibility rules.
	Constraints []Constraint

	Body Body
}

// Invoke runs one validated invocation. The supplied Args may carry, next to
// the declared parameter names, the reserved control keys "validate" and
// "fail_silently" and per-parameter "<name>__min" / "<name>__max" bound
// overrides; all reserved keys are stripped before the body runs and none of
// them persist beyond this call.
//
// Outcomes:
//   - arguments valid: the body's results and error are returned unmodified;
//   - validation failure, fail_silently true (default): the sentinel-shaped
//     error return is produced with a nil error;
//   - validation failure, fail_silently false: a *ValidationError naming
//     every offending parameter and its effective bound/set;
//   - contract misuse (unknown keys, malformed control keys or overrides):
//     an error regardless of fail_silently.
func (c *Calculation) Invoke(args Args) (Results, error) {
	if c.Body == nil {
		return nil, fmt.Errorf("fieldcalc: calculation %s has no body", c.Name)
	}
	ctl, err := extractControls(args)
	if err != nil {
		return nil, err
	}
	merged, err := mergeArgs(c.Params, args)
	if err != nil {
		return nil, err
	}
	if ctl.validate {
		if violations := validateAll(c.Params, c.Constraints, merged, args); len(violations) > 0 {
			if ctl.failSilently {
				return c.ErrorReturn(), nil
			}
			return nil, &ValidationError{Calculation: c.Name, Violations: violations}
		}
	}
	return c.Body(Inputs{values: merged})
}

// Call invokes the calculation with positional values mapped onto the
// declared parameters in order. Trailing optional parameters may be omitted.
func (c *Calculation) Call(values ...any) (Results, error) {
	args, err := positionalArgs(c.Params, values)
	if err != nil {
		return nil, fmt.Errorf("fieldcalc: %s: %w", c.Name, err)
	}
	return c.Invoke(args)
}

// ErrorReturn is the sentinel-shaped result mapping for this calculation:
// every declared output key present, numeric entries NaN, categorical entries
// nil. It is what fail-silent invocations return on validation failure.
func (c *Calculation) ErrorReturn() Results {
	return errorReturn(c.Outputs)
}

// checkDefinition verifies the static contract is well formed: unique
// parameter names, bounds/options matching each parameter's kind, and unique
// output keys. Run at registration time so misdeclared contracts surface at
// definition, not at first invocation.
func (c *Calculation) checkDefinition() error {
	if c.Name == "" {
		return fmt.Errorf("fieldcalc: calculation has no name")
	}
	if c.Body == nil {
		return fmt.Errorf("fieldcalc: calculation %s has no body", c.Name)
	}
	seen := make(map[string]bool, len(c.Params))
	for _, p := range c.Params {
		if p.Name == "" {
			return fmt.Errorf("fieldcalc: %s declares an unnamed parameter", c.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("fieldcalc: %s declares parameter %s twice", c.Name, p.Name)
		}
		seen[p.Name] = true
		switch p.Kind {
		case Numeric:
			if len(p.Options) > 0 {
				return fmt.Errorf("fieldcalc: %s: numeric parameter %s declares an admissible set", c.Name, p.Name)
			}
		case Categorical:
			if p.Min != nil || p.Max != nil {
				return fmt.Errorf("fieldcalc: %s: categorical parameter %s declares numeric bounds", c.Name, p.Name)
			}
			if len(p.Options) == 0 {
				return fmt.Errorf("fieldcalc: %s: categorical parameter %s has an empty admissible set", c.Name, p.Name)
			}
		}
	}
	keys := make(map[string]bool, len(c.Outputs))
	for _, o := range c.Outputs {
		if keys[o.Key()] {
			return fmt.Errorf("fieldcalc: %s declares output key %s twice", c.Name, o.Key())
		}
		keys[o.Key()] = true
	}
	return nil
}
