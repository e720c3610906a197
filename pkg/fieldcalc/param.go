package fieldcalc

import (
	"fmt"
	"strings"
)

// Kind distinguishes numeric parameters (validated against an admissible
// range) from categorical parameters (validated against an admissible set).
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Param is the static validation contract for one named input of a
// calculation: its kind, its admissible range or set, and an optional default
// used when the caller omits the parameter. Params are plain data and are
// read-only after definition.
type Param struct {
	// Name is the identifier of the parameter, unique within one
	// calculation's signature.
	Name string

	Kind Kind

	// Min and Max are the inclusive admissible bounds for Numeric
	// parameters. A nil bound is unbounded. Ignored for Categorical
	// parameters.
	Min *float64
	Max *float64

	// Options is the admissible value set for Categorical parameters.
	// Membership is a case-sensitive exact match.
	Options []string

	// Default is used when the caller omits the parameter. A parameter
	// without a default is required.
	Default    any
	HasDefault bool
}

// FloatParam declares a numeric parameter with inclusive lower and upper
// bounds.
func FloatParam(name string, min, max float64) Param {
	return Param{Name: name, Kind: Numeric, Min: &min, Max: &max}
}

// FloatParamMin declares a numeric parameter bounded from below only.
func FloatParamMin(name string, min float64) Param {
	return Param{Name: name, Kind: Numeric, Min: &min}
}

// FloatParamMax declares a numeric parameter bounded from above only.
func FloatParamMax(name string, max float64) Param {
	return Param{Name: name, Kind: Numeric, Max: &max}
}

// FloatParamUnbounded declares a numeric parameter with no admissible range
// restriction beyond being a finite number.
func FloatParamUnbounded(name string) Param {
	return Param{Name: name, Kind: Numeric}
}

// OptionParam declares a categorical parameter restricted to the given set of
// literal values.
func OptionParam(name string, options ...string) Param {
	return Param{Name: name, Kind: Categorical, Options: options}
}

// WithDefault returns a copy of the parameter carrying a default value, which
// makes the parameter optional.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	p.HasDefault = true
	return p
}

// overrideMinKey and overrideMaxKey are the reserved per-call keyword names
// that replace this parameter's declared bounds for a single invocation.
func (p Param) overrideMinKey() string { return p.Name + "__min" }
func (p Param) overrideMaxKey() string { return p.Name + "__max" }

// constraintString renders the effective admissible range or set for
// diagnostics, e.g. "4000 <= value <= 1e+08" or `one of ("single", "double")`.
func constraintString(kind Kind, min, max *float64, options []string) string {
	if kind == Categorical {
		quoted := make([]string, len(options))
		for i, o := range options {
			quoted[i] = fmt.Sprintf("%q", o)
		}
		return fmt.Sprintf("one of (%s)", strings.Join(quoted, ", "))
	}
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("%v <= value <= %v", *min, *max)
	case min != nil:
		return fmt.Sprintf("%v <= value", *min)
	case max != nil:
		return fmt.Sprintf("value <= %v", *max)
	default:
		return "unbounded"
	}
}
