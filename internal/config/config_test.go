package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Simplici0/masscalc/internal/geometry"
	"github.com/Simplici0/masscalc/internal/pricing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MASSCALC_UNIT_THICKNESS",
		"MASSCALC_ENTRY_COST_SLOPE",
		"MASSCALC_ENTRY_COST_INTERCEPT",
		"MASSCALC_ENTRY_COST_BASE",
		"MASSCALC_ROUND_COSTS",
		"MASSCALC_LOG_LEVEL",
	} {
		unsetEnv(t, key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.UnitThickness != geometry.DefaultUnitThickness {
		t.Fatalf("UnitThickness=%v, want %v", cfg.UnitThickness, geometry.DefaultUnitThickness)
	}
	if cfg.EntryCost != pricing.DefaultParams() {
		t.Fatalf("EntryCost=%+v, want %+v", cfg.EntryCost, pricing.DefaultParams())
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel=%q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "masscalc.yaml")
	content := []byte(`
unit_thickness: 0.004
round_costs: false
entry_cost:
  slope: 2
  intercept: 50000
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MASSCALC_ENTRY_COST_SLOPE", "1.75")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.UnitThickness != 0.004 {
		t.Fatalf("UnitThickness=%v, want 0.004", cfg.UnitThickness)
	}
	if cfg.EntryCost.Slope != 1.75 {
		t.Fatalf("Slope=%v, want env override 1.75", cfg.EntryCost.Slope)
	}
	if cfg.EntryCost.Intercept != 50000 {
		t.Fatalf("Intercept=%v, want 50000", cfg.EntryCost.Intercept)
	}
	if cfg.EntryCost.Base != pricing.DefaultBase {
		t.Fatalf("Base=%v, want default %v", cfg.EntryCost.Base, pricing.DefaultBase)
	}
	if cfg.EntryCost.Round {
		t.Fatalf("Round should be disabled by the config file")
	}
}

func TestLoad_ReadsDotEnvFromWorkingDir(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MASSCALC_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel=%q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("MASSCALC_ENTRY_COST_BASE", "0.9")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for entry cost base below 1")
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Config{
		UnitThickness: 0,
		EntryCost:     pricing.Params{Slope: -1, Intercept: 1, Base: 2},
		LogLevel:      "loud",
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"unit_thickness", "slope", "log_level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %q", err, want)
		}
	}
}
