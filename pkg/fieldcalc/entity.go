package fieldcalc

import (
	"fmt"
)

// DerivedGroup declares one named group of derived attributes exposed by an
// entity, e.g. a shape's "centroid" or "areamoment_inertia" group. Each group
// is an output mapping with the same composite-key convention as Results.
type DerivedGroup struct {
	Name    string
	Outputs []Output
}

// Derive recomputes every derived group of an entity from its current raw
// attribute set. Recomputation is total: all groups are rebuilt on every
// successful mutation, never incrementally.
type Derive func(in Inputs) (map[string]Results, error)

// EntityDef is the static contract of a stateful entity: raw attribute
// descriptors, cross-attribute constraints, the derived groups it exposes,
// and the derivation function that computes them.
type EntityDef struct {
	Name        string
	Params      []Param
	Constraints []Constraint
	Groups      []DerivedGroup
	Derive      Derive
}

// Entity applies the calculation validation contract to a stateful object.
// Raw attributes are validated through the same path as Calculation.Invoke;
// derived groups are recomputed after construction and after every successful
// mutation. On a silent validation failure the offending raw attribute and
// all derived groups hold failure sentinels.
//
// An Entity is not safe for concurrent mutation; treat each instance as
// exclusively owned by one caller.
type Entity struct {
	def          EntityDef
	failSilently bool
	raw          map[string]any
	groups       map[string]Results
}

// NewEntity constructs an entity, assigning all raw attributes through the
// validation path and computing every derived group. Args may carry the same
// reserved control keys as Calculation.Invoke; fail_silently (default true)
// is retained as the entity's failure mode for later mutations.
func NewEntity(def EntityDef, args Args) (*Entity, error) {
	if def.Derive == nil {
		return nil, fmt.Errorf("fieldcalc: entity %s has no derive function", def.Name)
	}
	ctl, err := extractControls(args)
	if err != nil {
		return nil, err
	}
	e := &Entity{def: def, failSilently: ctl.failSilently}

	merged, err := mergeArgs(def.Params, args)
	if err != nil {
		return nil, err
	}
	if ctl.validate {
		if violations := validateAll(def.Params, def.Constraints, merged, args); len(violations) > 0 {
			if !ctl.failSilently {
				return nil, &ValidationError{Calculation: def.Name, Violations: violations}
			}
			e.raw = sentinelRaw(def.Params, merged, violations)
			e.groups = e.sentinelGroups()
			return e, nil
		}
	}
	e.raw = merged
	if err := e.recompute(); err != nil {
		return nil, err
	}
	return e, nil
}

// Set assigns a new value to one raw attribute, revalidating the full
// attribute set and recomputing every derived group on success. Under the
// entity's silent mode a validation failure stores the failure sentinel on
// the attribute, propagates sentinels into all derived groups, and returns
// nil; under strict mode the entity is left unchanged and the
// *ValidationError is returned. Errors from the derivation itself always
// propagate.
func (e *Entity) Set(name string, value any) error {
	p, ok := e.param(name)
	if !ok {
		return fmt.Errorf("fieldcalc: entity %s has no attribute %s", e.def.Name, name)
	}
	candidate := make(map[string]any, len(e.raw)+1)
	for k, v := range e.raw {
		candidate[k] = v
	}
	candidate[name] = value

	if violations := validateAll(e.def.Params, e.def.Constraints, candidate, nil); len(violations) > 0 {
		if !e.failSilently {
			return &ValidationError{Calculation: e.def.Name, Violations: violations}
		}
		if p.Kind == Categorical {
			candidate[name] = nil
		} else {
			candidate[name] = nanValue
		}
		e.raw = candidate
		e.groups = e.sentinelGroups()
		return nil
	}
	e.raw = candidate
	return e.recompute()
}

// Recalculate revalidates the current raw attribute set and recomputes all
// derived groups, applying the entity's failure mode. Sentinel-valued numeric
// attributes pass revalidation and propagate NaN into the derived values.
func (e *Entity) Recalculate() error {
	if violations := validateAll(e.def.Params, e.def.Constraints, e.raw, nil); len(violations) > 0 {
		if !e.failSilently {
			return &ValidationError{Calculation: e.def.Name, Violations: violations}
		}
		e.groups = e.sentinelGroups()
		return nil
	}
	return e.recompute()
}

// Float returns the current value of a numeric raw attribute (NaN when the
// attribute holds the failure sentinel).
func (e *Entity) Float(name string) float64 {
	if f, ok := toFloat(e.raw[name]); ok {
		return f
	}
	return nanValue
}

// String returns the current value of a categorical raw attribute ("" when
// the attribute holds the failure sentinel).
func (e *Entity) String(name string) string {
	if s, ok := e.raw[name].(string); ok {
		return s
	}
	return ""
}

// Group returns the named derived group. The returned mapping is owned by
// the entity and replaced wholesale on recomputation; callers must not
// mutate it.
func (e *Entity) Group(name string) Results {
	return e.groups[name]
}

// FailSilently reports the entity's current failure mode.
func (e *Entity) FailSilently() bool { return e.failSilently }

// SetFailSilently switches the failure mode applied to subsequent mutations.
func (e *Entity) SetFailSilently(b bool) { e.failSilently = b }

// Name returns the entity definition's name.
func (e *Entity) Name() string { return e.def.Name }

func (e *Entity) param(name string) (Param, bool) {
	for _, p := range e.def.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func (e *Entity) recompute() error {
	groups, err := e.def.Derive(Inputs{values: e.raw})
	if err != nil {
		return err
	}
	e.groups = groups
	return nil
}

func (e *Entity) sentinelGroups() map[string]Results {
	groups := make(map[string]Results, len(e.def.Groups))
	for _, g := range e.def.Groups {
		groups[g.Name] = errorReturn(g.Outputs)
	}
	return groups
}

// sentinelRaw stores the supplied values for valid attributes and the failure
// sentinel for each offending one, so a silently-failed entity still exposes
// a fully-shaped raw attribute set.
func sentinelRaw(params []Param, merged map[string]any, violations []Violation) map[string]any {
	offending := make(map[string]bool, len(violations))
	for _, v := range violations {
		offending[v.Param] = true
	}
	raw := make(map[string]any, len(params))
	for _, p := range params {
		value, present := merged[p.Name]
		if present && !offending[p.Name] {
			raw[p.Name] = value
			continue
		}
		if p.Kind == Categorical {
			raw[p.Name] = nil
		} else {
			raw[p.Name] = nanValue
		}
	}
	return raw
}
