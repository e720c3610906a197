package fieldcalc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// EventSink receives completed invocations from an Engine, e.g. for the
// dashboard's live result stream. Implementations must not mutate the
// supplied mappings.
type EventSink interface {
	CalculationCompleted(name string, args Args, results Results)
}

// Engine is a registry of calculations invokable by name. It is thread-safe:
// the registry itself is lock-guarded and registered Calculations are
// immutable, so concurrent Invoke calls need no further coordination.
type Engine struct {
	mu    sync.RWMutex
	calcs map[string]*Calculation
	order []string

	logger zerolog.Logger
	sink   EventSink
}

// NewEngine creates an empty engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		calcs:  make(map[string]*Calculation),
		logger: zerolog.Nop(),
	}
}

// SetLogger installs a structured logger for registrations, invocations and
// sweeps.
func (e *Engine) SetLogger(logger zerolog.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = logger
}

// SetEventSink installs a sink notified after every completed invocation.
func (e *Engine) SetEventSink(sink EventSink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = sink
}

// Register adds a calculation to the engine. The static contract is checked
// here so that a misdeclared parameter table fails at definition time, not on
// first invocation. Registering a second calculation under an existing name
// is an error.
func (e *Engine) Register(c *Calculation) error {
	if err := c.checkDefinition(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.calcs[c.Name]; exists {
		return fmt.Errorf("fieldcalc: calculation %s already registered", c.Name)
	}
	e.calcs[c.Name] = c
	e.order = append(e.order, c.Name)
	e.logger.Debug().Str("calculation", c.Name).Int("params", len(c.Params)).Msg("registered")
	return nil
}

// MustRegister is Register for static setup code; it panics on error.
func (e *Engine) MustRegister(calcs ...*Calculation) {
	for _, c := range calcs {
		if err := e.Register(c); err != nil {
			panic(err)
		}
	}
}

// Get returns the named calculation.
func (e *Engine) Get(name string) (*Calculation, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.calcs[name]
	return c, ok
}

// Calculations returns the registered calculation names in registration
// order.
func (e *Engine) Calculations() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Invoke runs the named calculation with the supplied arguments, logging the
// outcome and publishing completed results to the event sink if one is
// installed.
func (e *Engine) Invoke(name string, args Args) (Results, error) {
	e.mu.RLock()
	c, ok := e.calcs[name]
	logger := e.logger
	sink := e.sink
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("fieldcalc: unknown calculation %s", name)
	}

	results, err := c.Invoke(args)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			logger.Warn().Str("calculation", name).Int("violations", len(verr.Violations)).Msg(verr.Error())
		} else {
			logger.Error().Str("calculation", name).Err(err).Msg("invocation failed")
		}
		return nil, err
	}
	logger.Debug().Str("calculation", name).Int("outputs", len(results)).Msg("invoked")
	if sink != nil {
		sink.CalculationCompleted(name, args, results)
	}
	return results, nil
}

// Sweep invokes the named calculation once per value of one numeric
// parameter, holding every other argument fixed, and returns the result
// mappings in order. Because overrides and control flags travel in the base
// arguments, a sweep can relax a bound for all of its points without touching
// the calculation's declared contract. Under the default fail-silent mode,
// out-of-range points come back as sentinel rows and the sweep is never
// interrupted.
func (e *Engine) Sweep(name string, base Args, param string, values []float64) ([]Results, error) {
	out := make([]Results, 0, len(values))
	for _, v := range values {
		args := make(Args, len(base)+1)
		for k, bv := range base {
			args[k] = bv
		}
		args[param] = v
		results, err := e.Invoke(name, args)
		if err != nil {
			return nil, fmt.Errorf("fieldcalc: sweep %s at %s=%v: %w", name, param, v, err)
		}
		out = append(out, results)
	}
	e.mu.RLock()
	logger := e.logger
	e.mu.RUnlock()
	logger.Info().Str("calculation", name).Str("parameter", param).Int("points", len(values)).Msg("sweep complete")
	return out, nil
}
