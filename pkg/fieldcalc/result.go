package fieldcalc

import "math"

// nanValue is the numeric failure sentinel.
var nanValue = math.NaN()

// Output declares one entry of a calculation's result mapping. The composite
// key combines the human-readable name with its unit annotation, matching the
// convention used throughout the domain packages, e.g. "friction_factor [-]"
// or "area [m2]".
type Output struct {
	Name string
	Unit string
	Kind Kind
}

// Key returns the composite "name [unit]" key under which this output appears
// in a Results mapping.
func (o Output) Key() string { return o.Name + " [" + o.Unit + "]" }

// Results is the uniform output mapping returned by every calculation
// invocation: composite "name [unit]" keys to numeric (float64) or
// categorical (string) values. When validation failed under fail-silent mode,
// numeric entries hold NaN and categorical entries hold nil.
type Results map[string]any

// Float returns the numeric value stored under the given composite key, or
// NaN when the key is absent or holds a non-numeric value.
func (r Results) Float(key string) float64 {
	if v, ok := r[key]; ok {
		if f, ok := toFloat(v); ok {
			return f
		}
	}
	return math.NaN()
}

// String returns the categorical value stored under the given composite key,
// or the empty string when the key is absent or holds the nil sentinel.
func (r Results) String(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsSentinel reports whether the entry under the given key holds the failure
// sentinel (NaN for numeric entries, nil for categorical entries).
func (r Results) IsSentinel(key string) bool {
	v, ok := r[key]
	if !ok {
		return false
	}
	if v == nil {
		return true
	}
	if f, ok := toFloat(v); ok {
		return math.IsNaN(f)
	}
	return false
}

// errorReturn builds the sentinel-shaped result mapping for the declared
// outputs: the same keys a successful invocation would produce, with NaN for
// numeric outputs and nil for categorical outputs.
func errorReturn(outputs []Output) Results {
	res := make(Results, len(outputs))
	for _, o := range outputs {
		if o.Kind == Categorical {
			res[o.Key()] = nil
		} else {
			res[o.Key()] = math.NaN()
		}
	}
	return res
}

// toFloat coerces the numeric types a caller may plausibly supply into
// float64. Strings and booleans are deliberately not coerced.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
