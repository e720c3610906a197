package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadRunConfigExplicitValues(t *testing.T) {
	path := writeConfig(t, `
calculation = "pressuredrop_relativeroughness_moody"

[args]
pipe_diameter = 0.3
pipe_length = 100
pipe_material = "Commercial steel"
fluid_density = 1025.0
reynolds_number = 1e6

[sweep]
param = "flow_velocity"
values = [0.5, 1.0, 2.0]
`)

	cfg, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Calculation != "pressuredrop_relativeroughness_moody" {
		t.Fatalf("unexpected calculation: %q", cfg.Calculation)
	}
	if !cfg.FailSilently {
		t.Fatal("fail_silently must default to true")
	}
	if cfg.Param != "flow_velocity" {
		t.Fatalf("unexpected sweep param: %q", cfg.Param)
	}
	if len(cfg.Values) != 3 || cfg.Values[2] != 2.0 {
		t.Fatalf("unexpected sweep values: %v", cfg.Values)
	}
	// TOML integers must come through as float64.
	if v, ok := cfg.Args["pipe_length"].(float64); !ok || v != 100.0 {
		t.Fatalf("unexpected pipe_length: %#v", cfg.Args["pipe_length"])
	}
	if v, ok := cfg.Args["pipe_material"].(string); !ok || v != "Commercial steel" {
		t.Fatalf("unexpected pipe_material: %#v", cfg.Args["pipe_material"])
	}
}

func TestLoadRunConfigRange(t *testing.T) {
	path := writeConfig(t, `
calculation = "frictionangle_overburden_kleven"
fail_silently = false

[args]
relative_density = 80.0

[sweep]
param = "sigma_vo_eff"
start = 10.0
stop = 800.0
count = 5
`)

	cfg, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FailSilently {
		t.Fatal("expected fail_silently disabled")
	}
	if len(cfg.Values) != 5 {
		t.Fatalf("unexpected value count: %d", len(cfg.Values))
	}
	if cfg.Values[0] != 10.0 || cfg.Values[4] != 800.0 {
		t.Fatalf("unexpected endpoints: %v", cfg.Values)
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing calculation", content: `
[sweep]
param = "x"
values = [1.0]
`},
		{name: "missing sweep param", content: `
calculation = "c"

[sweep]
values = [1.0]
`},
		{name: "no values and no range", content: `
calculation = "c"

[sweep]
param = "x"
`},
		{name: "values and range together", content: `
calculation = "c"

[sweep]
param = "x"
values = [1.0]
start = 0.0
stop = 1.0
`},
		{name: "count too small", content: `
calculation = "c"

[sweep]
param = "x"
start = 0.0
stop = 1.0
count = 1
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadRunConfig(writeConfig(t, tc.content)); err == nil {
				t.Fatal("expected load error")
			}
		})
	}
}
