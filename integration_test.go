package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/beams"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/dashboard"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/geometry"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/geotech"
	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc/hydraulics"
)

func TestIntegrationSuite(t *testing.T) {
	t.Run("EngineRegistration", testEngineRegistration)
	t.Run("EndToEndCalculation", testEndToEndCalculation)
	t.Run("ValidationModes", testValidationModes)
	t.Run("ParameterSweep", testParameterSweep)
	t.Run("ReactiveEntities", testReactiveEntities)
	t.Run("BeamProfiles", testBeamProfiles)
	t.Run("DashboardAPI", testDashboardAPI)
	t.Run("ConcurrentInvocations", testConcurrentInvocations)
}

func newFullEngine(t *testing.T) *fieldcalc.Engine {
	t.Helper()
	engine := fieldcalc.NewEngine()
	if err := hydraulics.Register(engine); err != nil {
		t.Fatalf("registering hydraulics: %v", err)
	}
	if err := geotech.Register(engine); err != nil {
		t.Fatalf("registering geotech: %v", err)
	}
	return engine
}

func testEngineRegistration(t *testing.T) {
	engine := newFullEngine(t)

	names := engine.Calculations()
	if len(names) != 13 {
		t.Fatalf("registered %d calculations, want 13", len(names))
	}
	// Hydraulics registers first.
	if names[0] != "pressuredrop_relativeroughness_moody" {
		t.Errorf("first calculation is %q", names[0])
	}

	for _, name := range names {
		if _, ok := engine.Get(name); !ok {
			t.Errorf("calculation %q not retrievable", name)
		}
	}
	if _, ok := engine.Get("no_such_calculation"); ok {
		t.Error("unknown name must not resolve")
	}
}

func testEndToEndCalculation(t *testing.T) {
	engine := newFullEngine(t)

	res, err := engine.Invoke("pressuredrop_relativeroughness_moody", fieldcalc.Args{
		"reynolds_number": 1.0e6,
		"pipe_diameter":   0.3,
		"pipe_length":     100.0,
		"flow_velocity":   2.0,
		"fluid_density":   1025.0,
		"pipe_material":   "Water mains,old",
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	f := res.Float("friction_factor [-]")
	if math.IsNaN(f) || f <= 0.0 {
		t.Fatalf("friction factor = %v", f)
	}
	dp := res.Float("pressure_drop [Pa]")
	want := f * (100.0 / 0.3) * 1025.0 * 4.0 / 2.0
	if math.Abs(dp-want) > 1e-9 {
		t.Errorf("pressure drop = %v, want %v", dp, want)
	}
	if res.String("flow_regime [-]") == "" {
		t.Error("flow regime missing")
	}
}

func testValidationModes(t *testing.T) {
	engine := newFullEngine(t)

	outOfRange := fieldcalc.Args{"friction_angle": 55.0}

	res, err := engine.Invoke("nq_frictionangle_sand", outOfRange)
	if err != nil {
		t.Fatalf("silent invoke: %v", err)
	}
	if !res.IsSentinel("Nq [-]") {
		t.Error("silent failure must produce the NaN sentinel")
	}

	strict := fieldcalc.Args{"friction_angle": 55.0, "fail_silently": false}
	_, err = engine.Invoke("nq_frictionangle_sand", strict)
	var verr *fieldcalc.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Violations[0].Param != "friction_angle" {
		t.Errorf("violation names %s", verr.Violations[0].Param)
	}

	// A per-call override admits the same value without touching the
	// registered contract.
	relaxed := fieldcalc.Args{"friction_angle": 55.0, "friction_angle__max": 60.0}
	res, err = engine.Invoke("nq_frictionangle_sand", relaxed)
	if err != nil {
		t.Fatalf("relaxed invoke: %v", err)
	}
	if res.IsSentinel("Nq [-]") {
		t.Fatal("override must admit the value")
	}

	// And the next call is back to the declared bounds.
	res, err = engine.Invoke("nq_frictionangle_sand", outOfRange)
	if err != nil {
		t.Fatalf("followup invoke: %v", err)
	}
	if !res.IsSentinel("Nq [-]") {
		t.Error("override leaked into a later invocation")
	}
}

func testParameterSweep(t *testing.T) {
	engine := newFullEngine(t)

	angles := []float64{25.0, 35.0, 45.0, 55.0}
	rows, err := engine.Sweep("ngamma_frictionangle_vesic",
		fieldcalc.Args{}, "friction_angle", angles)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(rows) != len(angles) {
		t.Fatalf("got %d rows, want %d", len(rows), len(angles))
	}
	for i := 0; i < 2; i++ {
		if rows[i+1].Float("Ngamma [-]") <= rows[i].Float("Ngamma [-]") {
			t.Error("Ngamma must increase with the friction angle")
		}
	}
	// The last point is out of range and comes back as a sentinel row.
	if !rows[3].IsSentinel("Ngamma [-]") {
		t.Error("out-of-range sweep point must be a sentinel row")
	}
}

func testReactiveEntities(t *testing.T) {
	ring, err := geometry.NewRing(fieldcalc.Args{
		"outer_radius": 1.0,
		"inner_radius": 0.5,
	})
	if err != nil {
		t.Fatalf("constructing ring: %v", err)
	}
	area := ring.Group(geometry.GroupCentroid).Float("area [m2]")
	want := math.Pi * (1.0 - 0.25)
	if math.Abs(area-want) > 1e-9 {
		t.Fatalf("area = %v, want %v", area, want)
	}

	if err := ring.Set("inner_radius", 0.8); err != nil {
		t.Fatalf("mutating ring: %v", err)
	}
	area = ring.Group(geometry.GroupCentroid).Float("area [m2]")
	want = math.Pi * (1.0 - 0.64)
	if math.Abs(area-want) > 1e-9 {
		t.Fatalf("area after mutation = %v, want %v", area, want)
	}

	// Violating the cross-parameter constraint silently poisons the derived
	// values; repairing the attribute restores them.
	if err := ring.Set("inner_radius", 2.0); err != nil {
		t.Fatalf("silent mutation must not error: %v", err)
	}
	if !ring.Group(geometry.GroupCentroid).IsSentinel("area [m2]") {
		t.Error("area must hold the NaN sentinel")
	}
	if err := ring.Set("inner_radius", 0.5); err != nil {
		t.Fatalf("repair: %v", err)
	}
	if ring.Group(geometry.GroupCentroid).IsSentinel("area [m2]") {
		t.Error("repaired entity must recompute")
	}
}

func testBeamProfiles(t *testing.T) {
	beam, err := beams.NewPointLoadBeam(fieldcalc.Args{
		"beam_length":    6.0,
		"youngs_modulus": 210.0e6,
		"moment_inertia": 8.0e-5,
		"point_load":     30.0,
		"load_xmax":      3.0,
	})
	if err != nil {
		t.Fatalf("constructing beam: %v", err)
	}
	// Midspan load on a simple span: equal reactions, zero end deflections.
	if math.Abs(beam.ReactionLeft-15.0) > 1e-9 {
		t.Errorf("reaction = %v, want 15", beam.ReactionLeft)
	}
	if math.Abs(beam.Deflection[0]) > 1e-9 ||
		math.Abs(beam.Deflection[len(beam.Deflection)-1]) > 1e-9 {
		t.Error("support deflections must be zero")
	}
	// w_max = P L^3 / (48 E I), downwards.
	wantMid := -30.0 * math.Pow(6.0, 3.0) / (48.0 * 210.0e6 * 8.0e-5)
	mid := minIndex(beam.Deflection)
	if math.Abs(beam.Deflection[mid]-wantMid) > math.Abs(wantMid)*0.01 {
		t.Errorf("midspan deflection = %v, want about %v", beam.Deflection[mid], wantMid)
	}
}

func minIndex(values []float64) int {
	idx := 0
	for i, v := range values {
		if v < values[idx] {
			idx = i
		}
	}
	return idx
}

func testDashboardAPI(t *testing.T) {
	engine := newFullEngine(t)

	const port = 18462
	server := dashboard.NewServer(port)
	server.SetCalculationLister(engine.Calculations)
	engine.SetEventSink(server)

	go server.Start()
	defer server.Stop()
	time.Sleep(100 * time.Millisecond)

	if _, err := engine.Invoke("lateralearthpressure_plasticity_massarsch",
		fieldcalc.Args{"plasticity_index": 30.0}); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	// Out of range: the sentinel result must still stream, encoded as null.
	if _, err := engine.Invoke("lateralearthpressure_plasticity_massarsch",
		fieldcalc.Args{"plasticity_index": 500.0}); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/api/results", port))
	if err != nil {
		t.Fatalf("GET /api/results: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Status string `json:"status"`
		Data   []struct {
			Calculation string         `json:"calculation"`
			Results     map[string]any `json:"results"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding results: %v", err)
	}
	if body.Status != "ok" || len(body.Data) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Data[1].Results["Ko [-]"] != nil {
		t.Errorf("sentinel must encode as null, got %v", body.Data[1].Results["Ko [-]"])
	}

	resp2, err := http.Get(fmt.Sprintf("http://localhost:%d/api/calculations", port))
	if err != nil {
		t.Fatalf("GET /api/calculations: %v", err)
	}
	defer resp2.Body.Close()
	var calcs struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&calcs); err != nil {
		t.Fatalf("decoding calculations: %v", err)
	}
	if len(calcs.Data) != len(engine.Calculations()) {
		t.Errorf("got %d calculations, want %d", len(calcs.Data), len(engine.Calculations()))
	}
}

func testConcurrentInvocations(t *testing.T) {
	engine := newFullEngine(t)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				res, err := engine.Invoke("gmax_cptclay_maynerix95", fieldcalc.Args{
					"cone_resistance": 1.0 + float64(g),
					"density":         2000.0,
				})
				if err != nil {
					errs <- err
					return
				}
				if res.IsSentinel("Gmax [kPa]") {
					errs <- fmt.Errorf("unexpected sentinel for goroutine %d", g)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
