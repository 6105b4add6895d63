package methodology

import (
	"strings"
	"testing"

	"github.com/claude/stride/internal/plan"
)

func resolveLydiard(t *testing.T) *lydiardStrategy {
	t.Helper()
	r := newTestRegistry(t)
	s, err := r.Resolve(Lydiard)
	if err != nil {
		t.Fatalf("Resolve(lydiard): %v", err)
	}
	return s.(*lydiardStrategy)
}

// TestLongRunDistanceKm verifies the base-phase progression: linear build
// from 16 to 22 km with a plateau every third week, never exceeding the
// ceiling.
func TestLongRunDistanceKm(t *testing.T) {
	cases := []struct {
		week, baseWeeks int
		want            float64
	}{
		{1, 7, 16},
		{2, 7, 17},
		{3, 7, 17}, // plateau: holds the previous week's distance
		{4, 7, 19},
		{5, 7, 20},
		{6, 7, 20}, // plateau
		{7, 7, 22},
		{1, 1, 16},
		{5, 2, 22}, // past the phase end, capped at the ceiling
	}
	for _, tc := range cases {
		got := LongRunDistanceKm(tc.week, tc.baseWeeks)
		if got != tc.want {
			t.Errorf("LongRunDistanceKm(%d, %d) = %.1f, want %.1f", tc.week, tc.baseWeeks, got, tc.want)
		}
	}
}

// TestLydiardEnhancePlan_EffortLanguage verifies enhancement strips every
// numeric pace and rewrites segment descriptions in effort-band language.
func TestLydiardEnhancePlan_EffortLanguage(t *testing.T) {
	s := resolveLydiard(t)
	in := skeletonForTest(t, plan.Config{Methodology: Lydiard, Weeks: 4})

	out, err := s.EnhancePlan(in)
	if err != nil {
		t.Fatalf("EnhancePlan: %v", err)
	}
	for _, pw := range out.Workouts() {
		for _, seg := range pw.Workout.Segments {
			if seg.Pace != nil {
				t.Fatalf("%s: segment carries a pace, effort prescriptions only", pw.Workout.Name)
			}
		}
		// Long runs get a distance prescription instead of band language.
		if pw.Workout.Type == plan.WorkoutLongRun {
			continue
		}
		for _, seg := range pw.Workout.Segments {
			if !strings.HasPrefix(seg.Description, "Run at a") {
				t.Errorf("%s: description %q is not effort language", pw.Workout.Name, seg.Description)
			}
		}
	}
}

// TestLydiardEnhancePlan_LongRunProgression verifies base-phase long runs
// are resized to the progression distance and renamed accordingly.
func TestLydiardEnhancePlan_LongRunProgression(t *testing.T) {
	s := resolveLydiard(t)
	in := skeletonForTest(t, plan.Config{Methodology: Lydiard, Weeks: 4})

	out, err := s.EnhancePlan(in)
	if err != nil {
		t.Fatalf("EnhancePlan: %v", err)
	}
	var found bool
	for _, b := range out.Blocks {
		if b.Phase != plan.PhaseBase {
			continue
		}
		for _, mc := range b.Microcycles {
			for _, pw := range mc.Workouts {
				if pw.Workout.Type != plan.WorkoutLongRun {
					continue
				}
				found = true
				if !strings.Contains(pw.Workout.Name, "km") {
					t.Errorf("long run name %q lacks the prescribed distance", pw.Workout.Name)
				}
				if pw.TargetDurationMin != pw.Workout.TotalDuration() {
					t.Errorf("long run target duration %.1f != workout duration %.1f",
						pw.TargetDurationMin, pw.Workout.TotalDuration())
				}
			}
		}
	}
	if !found {
		t.Fatal("no base-phase long run in enhanced plan")
	}
}

// TestHillProgression verifies the three stages cover the base phase with no
// zero-length stage.
func TestHillProgression(t *testing.T) {
	stages := HillProgression(12)
	if len(stages) != 3 {
		t.Fatalf("got %d stages, want 3", len(stages))
	}
	total := 0
	for _, st := range stages {
		if st.Weeks < 1 {
			t.Errorf("stage %d has %d weeks", st.Stage, st.Weeks)
		}
		total += st.Weeks
	}
	if total != 12 {
		t.Errorf("stages cover %d weeks, want 12", total)
	}
}

// TestPhaseDurations verifies the Lydiard allocation: half the plan is base
// and the phases cover the whole plan.
func TestPhaseDurations(t *testing.T) {
	for _, weeks := range []int{16, 24} {
		d := PhaseDurations(weeks)
		if d[plan.PhaseBase] != weeks/2 {
			t.Errorf("%d-week plan: base = %d, want %d", weeks, d[plan.PhaseBase], weeks/2)
		}
		total := d[plan.PhaseBase] + d[plan.PhaseBuild] + d[plan.PhasePeak] + d[plan.PhaseTaper]
		if total != weeks {
			t.Errorf("%d-week plan: phases cover %d weeks", weeks, total)
		}
	}

	// A short plan gives base weeks back so the phases still cover it
	// exactly and the taper survives.
	d := PhaseDurations(4)
	total := d[plan.PhaseBase] + d[plan.PhaseBuild] + d[plan.PhasePeak] + d[plan.PhaseTaper]
	if total != 4 {
		t.Errorf("4-week plan: phases cover %d weeks", total)
	}
	if d[plan.PhaseTaper] != 1 {
		t.Errorf("4-week plan: taper = %d, want 1", d[plan.PhaseTaper])
	}
}

// TestLydiardRecoveryScaling verifies the generous recovery emphasis scales
// stress and recovery estimates up.
func TestLydiardRecoveryScaling(t *testing.T) {
	s := resolveLydiard(t)
	w := plan.Workout{
		Type:          plan.WorkoutEasy,
		EstimatedTSS:  40,
		RecoveryHours: 12,
		Segments:      []plan.Segment{{Intensity: 70, Zone: "easy"}},
	}
	out := s.CustomizeWorkout(w, plan.PhaseBuild, 1)
	if out.EstimatedTSS <= w.EstimatedTSS {
		t.Errorf("tss %.1f should exceed the input %.1f", out.EstimatedTSS, w.EstimatedTSS)
	}
	if out.RecoveryHours <= w.RecoveryHours {
		t.Errorf("recovery hours %.1f should exceed the input %.1f", out.RecoveryHours, w.RecoveryHours)
	}
}
