package fieldcalc

import (
	"fmt"
	"sort"
	"strings"
)

// Reserved control keywords recognized and stripped by the invocation wrapper
// before arguments reach a calculation body.
const (
	// KeyValidate skips the validation stage entirely when set to false.
	// Unsafe: every supplied argument is passed through unchecked.
	KeyValidate = "validate"

	// KeyFailSilently selects the failure mode for validation errors:
	// true (the default) substitutes sentinel outputs, false raises a
	// *ValidationError.
	KeyFailSilently = "fail_silently"

	overrideMinSuffix = "__min"
	overrideMaxSuffix = "__max"
)

// Args carries the keyword arguments of one invocation: declared parameter
// names to values, plus the reserved control keys and per-parameter
// "<name>__min" / "<name>__max" bound overrides.
type Args map[string]any

// controls are the call-scoped flags extracted from Args before validation.
type controls struct {
	validate     bool
	failSilently bool
}

// extractControls reads and type-checks the reserved flag keys. A flag of the
// wrong type is a caller contract error, not a validation failure.
func extractControls(args Args) (controls, error) {
	ctl := controls{validate: true, failSilently: true}
	if v, ok := args[KeyValidate]; ok {
		b, ok := v.(bool)
		if !ok {
			return ctl, fmt.Errorf("fieldcalc: %s must be a bool, got %T", KeyValidate, v)
		}
		ctl.validate = b
	}
	if v, ok := args[KeyFailSilently]; ok {
		b, ok := v.(bool)
		if !ok {
			return ctl, fmt.Errorf("fieldcalc: %s must be a bool, got %T", KeyFailSilently, v)
		}
		ctl.failSilently = b
	}
	return ctl, nil
}

// isOverrideKey reports whether the key carries a bound override and, if so,
// the parameter name it targets.
func isOverrideKey(key string) (param string, isMin, ok bool) {
	if name, found := strings.CutSuffix(key, overrideMinSuffix); found && name != "" {
		return name, true, true
	}
	if name, found := strings.CutSuffix(key, overrideMaxSuffix); found && name != "" {
		return name, false, true
	}
	return "", false, false
}

// mergeArgs builds the per-call argument set: every declared parameter mapped
// to its supplied value or its default, with the reserved keys stripped.
// Unknown keys, overrides targeting unknown or categorical parameters, and
// non-numeric override values are caller contract errors and always fail the
// call, independent of fail_silently. Parameters that end up with no value
// are left absent from the merged set; the validation stage reports them.
func mergeArgs(params []Param, args Args) (map[string]any, error) {
	byName := make(map[string]*Param, len(params))
	for i := range params {
		byName[params[i].Name] = &params[i]
	}

	merged := make(map[string]any, len(params))
	for i := range params {
		if params[i].HasDefault {
			merged[params[i].Name] = params[i].Default
		}
	}

	var unknown []string
	for key, value := range args {
		if key == KeyValidate || key == KeyFailSilently {
			continue
		}
		if target, _, ok := isOverrideKey(key); ok {
			p, declared := byName[target]
			if !declared {
				return nil, fmt.Errorf("fieldcalc: override %s targets undeclared parameter %q", key, target)
			}
			if p.Kind != Numeric {
				return nil, fmt.Errorf("fieldcalc: override %s targets categorical parameter %q; no override mechanism exists for admissible sets", key, target)
			}
			if value != nil {
				if _, ok := toFloat(value); !ok {
					return nil, fmt.Errorf("fieldcalc: override %s must be numeric or nil, got %T", key, value)
				}
			}
			continue
		}
		if _, declared := byName[key]; !declared {
			unknown = append(unknown, key)
			continue
		}
		merged[key] = value
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("fieldcalc: unknown argument(s): %s", strings.Join(unknown, ", "))
	}
	return merged, nil
}

// positionalArgs maps positional values onto parameter names by declaration
// order.
func positionalArgs(params []Param, values []any) (Args, error) {
	if len(values) > len(params) {
		return nil, fmt.Errorf("fieldcalc: %d positional values supplied for %d declared parameters", len(values), len(params))
	}
	args := make(Args, len(values))
	for i, v := range values {
		args[params[i].Name] = v
	}
	return args, nil
}

// Inputs is the merged, validated, framework-key-stripped argument set handed
// to a calculation body.
type Inputs struct {
	values map[string]any
}

// Float returns the numeric value of the named parameter. Calling it for a
// parameter that was not declared Numeric is a programming error in the
// calculation body; NaN is returned rather than panicking.
func (in Inputs) Float(name string) float64 {
	if f, ok := toFloat(in.values[name]); ok {
		return f
	}
	return nanValue
}

// Int returns the named numeric parameter truncated to an int.
func (in Inputs) Int(name string) int {
	return int(in.Float(name))
}

// String returns the categorical value of the named parameter, or "" when the
// parameter is absent.
func (in Inputs) String(name string) string {
	if s, ok := in.values[name].(string); ok {
		return s
	}
	return ""
}

// Has reports whether the named parameter carries a value in this call.
func (in Inputs) Has(name string) bool {
	_, ok := in.values[name]
	return ok
}
