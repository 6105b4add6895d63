package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stride.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

const validConfig = `
athlete:
  vdot: 52
plan:
  methodology: daniels
  weeks: 16
  days_per_week: 5
  race_date: "2026-10-11"
output:
  format: text
`

// TestLoad verifies a well-formed file parses into the expected config.
func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Athlete.VDOT != 52 {
		t.Errorf("vdot = %.1f, want 52", cfg.Athlete.VDOT)
	}
	if cfg.Plan.Methodology != "daniels" || cfg.Plan.Weeks != 16 || cfg.Plan.DaysPerWeek != 5 {
		t.Errorf("plan = %+v", cfg.Plan)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("output format = %q, want text", cfg.Output.Format)
	}
}

// TestLoad_EnvOverrides verifies STRIDE_ environment variables override file
// values.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STRIDE_PLAN_METHODOLOGY", "lydiard")
	t.Setenv("STRIDE_PLAN_WEEKS", "20")
	t.Setenv("STRIDE_ATHLETE_VDOT", "47.5")
	t.Setenv("STRIDE_OUTPUT_FORMAT", "json")

	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Plan.Methodology != "lydiard" {
		t.Errorf("methodology = %q, want lydiard", cfg.Plan.Methodology)
	}
	if cfg.Plan.Weeks != 20 {
		t.Errorf("weeks = %d, want 20", cfg.Plan.Weeks)
	}
	if cfg.Athlete.VDOT != 47.5 {
		t.Errorf("vdot = %.1f, want 47.5", cfg.Athlete.VDOT)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Output.Format)
	}
}

// TestLoad_ValidationErrors verifies required fields and enumerations are
// enforced.
func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing methodology", "athlete:\n  vdot: 50\nplan:\n  weeks: 12\n"},
		{"missing weeks", "athlete:\n  vdot: 50\nplan:\n  methodology: daniels\n"},
		{"no foundation value", "plan:\n  methodology: daniels\n  weeks: 12\n"},
		{"bad race date", "athlete:\n  vdot: 50\nplan:\n  methodology: daniels\n  weeks: 12\n  race_date: \"11/10/2026\"\n"},
		{"bad output format", "athlete:\n  vdot: 50\nplan:\n  methodology: daniels\n  weeks: 12\noutput:\n  format: xml\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Errorf("Load should fail for %s", tc.name)
			}
		})
	}
}

// TestLoad_LydiardNeedsNoFoundation verifies an effort-based methodology
// loads without a vdot or threshold pace, matching the flag-only entry path.
func TestLoad_LydiardNeedsNoFoundation(t *testing.T) {
	cfg, err := Load(writeConfig(t, "plan:\n  methodology: lydiard\n  weeks: 12\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Plan.Methodology != "lydiard" || cfg.Plan.Weeks != 12 {
		t.Errorf("plan = %+v", cfg.Plan)
	}
}

// TestLoad_MissingFile verifies a useful error for a nonexistent path.
func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file should error")
	}
}

// TestParsedRaceDate verifies date parsing including the unset zero value.
func TestParsedRaceDate(t *testing.T) {
	p := PlanConfig{RaceDate: "2026-10-11"}
	got, err := p.ParsedRaceDate()
	if err != nil {
		t.Fatalf("ParsedRaceDate: %v", err)
	}
	want := time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("race date = %s, want %s", got, want)
	}

	empty := PlanConfig{}
	if d, err := empty.ParsedRaceDate(); err != nil || !d.IsZero() {
		t.Errorf("unset race date = %v, %v; want zero time", d, err)
	}
}

// TestToPlanConfig verifies conversion into the engine's request type.
func TestToPlanConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pc, err := cfg.ToPlanConfig()
	if err != nil {
		t.Fatalf("ToPlanConfig: %v", err)
	}
	if pc.Methodology != "daniels" || pc.Weeks != 16 || pc.VDOT != 52 {
		t.Errorf("plan config = %+v", pc)
	}
	if pc.RaceDate.IsZero() {
		t.Error("race date not carried over")
	}
}
