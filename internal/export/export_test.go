package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/claude/stride/internal/plan"
)

// samplePlan builds a one-week plan with a report attached.
func samplePlan(t *testing.T) plan.Plan {
	t.Helper()
	target := plan.IntensityDistribution{Easy: 80, Moderate: 10, Hard: 10}
	return plan.Plan{
		ID: uuid.New(),
		Config: plan.Config{
			Methodology: "daniels",
			Weeks:       1,
			RaceDate:    time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC),
		},
		Blocks: []plan.Block{{
			Phase:     plan.PhaseBase,
			StartWeek: 1,
			EndWeek:   1,
			Target:    &target,
			Microcycles: []plan.Microcycle{{
				Week: 1,
				Workouts: []plan.PlannedWorkout{{
					ID:                uuid.New(),
					Date:              time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
					TargetDurationMin: 45,
					Workout: plan.Workout{
						Type: plan.WorkoutEasy,
						Name: "Easy Run",
						Segments: []plan.Segment{{
							DurationMin: 45,
							Intensity:   70,
							Zone:        "easy",
							Pace:        &plan.PaceRange{MinSecPerKm: 294, MaxSecPerKm: 313},
						}},
					},
				}},
			}},
		}},
		Report: &plan.Report{
			Overall:         plan.IntensityDistribution{Easy: 100},
			ComplianceScore: 92.5,
			Iterations:      1,
			PaceTable:       map[string]string{"easy": "4:54-5:13 /km"},
			Recommendations: []string{"Keep the long run conversational."},
		},
	}
}

// TestWrite_JSON verifies the default format is indented JSON that decodes
// back into a plan.
func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, samplePlan(t), ""); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var decoded plan.Plan
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Config.Methodology != "daniels" {
		t.Errorf("round-tripped methodology = %q", decoded.Config.Methodology)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("JSON output should be indented")
	}
}

// TestWrite_YAML verifies the YAML rendering decodes back into a plan.
func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, samplePlan(t), "yaml"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var decoded plan.Plan
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Blocks[0].Phase != plan.PhaseBase {
		t.Errorf("round-tripped phase = %s", decoded.Blocks[0].Phase)
	}
}

// TestWrite_Text verifies the human-readable schedule carries the header,
// the week listing, the workout pace, and the report.
func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, samplePlan(t), "text"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"daniels",
		"Race day: Sun 11 Oct 2026",
		"=== BASE (weeks 1-1)",
		"Week 1",
		"Easy Run",
		"4:54-5:13 /km",
		"Compliance score: 92.5/100",
		"Keep the long run conversational.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
}

// TestWrite_UnknownFormat verifies unknown formats error rather than
// defaulting silently.
func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, samplePlan(t), "xml"); err == nil {
		t.Error("unknown format should error")
	}
}

// TestPrimaryPace verifies the longest segment's pace is chosen and pace-less
// workouts render nothing.
func TestPrimaryPace(t *testing.T) {
	w := plan.Workout{Segments: []plan.Segment{
		{DurationMin: 10, Pace: &plan.PaceRange{MinSecPerKm: 250, MaxSecPerKm: 260}},
		{DurationMin: 40, Pace: &plan.PaceRange{MinSecPerKm: 300, MaxSecPerKm: 320}},
	}}
	if got := primaryPace(w); got != "5:00-5:20 /km" {
		t.Errorf("primaryPace = %q, want 5:00-5:20 /km", got)
	}

	if got := primaryPace(plan.Workout{Segments: []plan.Segment{{DurationMin: 30}}}); got != "" {
		t.Errorf("pace-less workout rendered %q", got)
	}
}
