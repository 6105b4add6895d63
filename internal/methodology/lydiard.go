package methodology

import (
	"fmt"
	"log/slog"

	"github.com/claude/stride/internal/catalog"
	"github.com/claude/stride/internal/plan"
)

// Long-run progression bounds for the base phase, in kilometres.
const (
	lydiardLongRunStartKm   = 16.0
	lydiardLongRunCeilingKm = 22.0
	lydiardEasyMinPerKm     = 6.2
)

// effortBands maps intensity zones to Lydiard effort language. Lydiard
// prescribes by feel, not pace, so segment descriptions are rewritten and
// numeric pace targets removed.
var effortBands = map[string]string{
	"recovery":   "very easy",
	"easy":       "easy",
	"steady":     "steady",
	"marathon":   "steady",
	"tempo":      "moderate",
	"threshold":  "moderate",
	"interval":   "hard",
	"repetition": "hard",
}

var effortGuidance = map[string]string{
	"very easy": "a gentle jog, fully conversational",
	"easy":      "relaxed running, you could chat the whole way",
	"steady":    "purposeful but comfortable, breathing noticeably",
	"moderate":  "strong controlled effort, short sentences only",
	"hard":      "near your ceiling, words come one at a time",
}

// HillStage is one step of the Lydiard hill-training progression.
type HillStage struct {
	Stage       int    `json:"stage" yaml:"stage"`
	Weeks       int    `json:"weeks" yaml:"weeks"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// lydiardStrategy builds a large aerobic base: effort-band prescriptions,
// hill training as the bridge to speed, and a steadily progressing long run.
type lydiardStrategy struct {
	defaults
	selection selectionTable
}

func newLydiard(cat *catalog.Catalog, log *slog.Logger) (*lydiardStrategy, error) {
	s := &lydiardStrategy{
		defaults: defaults{
			name: Lydiard,
			cat:  cat,
			log:  log,
			emphasis: map[plan.WorkoutType]float64{
				plan.WorkoutLongRun:     1.05,
				plan.WorkoutSteady:      1.02,
				plan.WorkoutEasy:        0.95,
				plan.WorkoutVO2Max:      0.92,
				plan.WorkoutSpeed:       0.92,
				plan.WorkoutHillRepeats: 1.02,
			},
			recoveryEmphasis: 1.15,
		},
		selection: selectionTable{
			// No threshold running in base, ever: steady state stands in.
			{plan.WorkoutThreshold, plan.PhaseBase}:  fixed("steady_state"),
			{plan.WorkoutThreshold, plan.PhaseBuild}: unlockAfter(2, "tempo_steady", "threshold_continuous"),
			// Hills are the gateway to anaerobic work.
			{plan.WorkoutVO2Max, plan.PhaseBase}:  fixed("hill_short"),
			{plan.WorkoutVO2Max, plan.PhaseBuild}: unlockAfter(2, "hill_long", "vo2_hills"),
			{plan.WorkoutSpeed, plan.PhaseBase}:   fixed("easy_standard"),
			{plan.WorkoutSpeed, plan.PhaseBuild}:  unlockAfter(3, "hill_short", "speed_strides"),
			{plan.WorkoutTempo, plan.PhaseBase}:   fixed("steady_state"),
		},
	}
	if err := s.selection.validate(cat); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *lydiardStrategy) Name() string { return Lydiard }

func (s *lydiardStrategy) EnhancePlan(p plan.Plan) (plan.Plan, error) {
	out, err := enhancePlan(s, s.cat, p)
	if err != nil {
		return plan.Plan{}, err
	}
	for bi := range out.Blocks {
		b := &out.Blocks[bi]
		baseWeeks := b.EndWeek - b.StartWeek + 1
		for mi := range b.Microcycles {
			mc := &b.Microcycles[mi]
			for wi := range mc.Workouts {
				pw := &mc.Workouts[wi]
				s.rewriteToEffort(&pw.Workout)
				if b.Phase == plan.PhaseBase && pw.Workout.Type == plan.WorkoutLongRun {
					s.applyLongRunProgression(pw, mc.Week-b.StartWeek+1, baseWeeks)
				}
			}
		}
	}
	return out, nil
}

func (s *lydiardStrategy) CustomizeWorkout(w plan.Workout, phase plan.Phase, weekNumber int) plan.Workout {
	return s.customizeWorkout(w, phase, weekNumber)
}

func (s *lydiardStrategy) SelectWorkoutVariant(t plan.WorkoutType, phase plan.Phase, weekInPhase int) (string, error) {
	return s.selection.resolve(s.defaults, t, phase, weekInPhase)
}

func (s *lydiardStrategy) PhaseDistribution(phase plan.Phase) plan.IntensityDistribution {
	return s.phaseDistribution(phase)
}

func (s *lydiardStrategy) WorkoutEmphasis(t plan.WorkoutType) float64 {
	return s.workoutEmphasis(t)
}

// rewriteToEffort replaces pace prescriptions with effort-band language.
func (s *lydiardStrategy) rewriteToEffort(w *plan.Workout) {
	for i := range w.Segments {
		seg := &w.Segments[i]
		band, ok := effortBands[seg.Zone]
		if !ok {
			band = "easy"
			s.log.Warn("no effort band for zone, defaulting to easy",
				"methodology", Lydiard, "zone", seg.Zone)
		}
		seg.Pace = nil
		seg.Description = fmt.Sprintf("Run at a %s effort: %s", band, effortGuidance[band])
	}
}

// LongRunDistanceKm returns the prescribed base-phase long-run distance for
// a week within the phase: linear progression from the start distance to the
// ceiling, with a plateau (rollback to the previous week's distance) every
// third week to aid adaptation.
func LongRunDistanceKm(weekInPhase, baseWeeks int) float64 {
	if baseWeeks <= 1 || weekInPhase <= 1 {
		return lydiardLongRunStartKm
	}
	step := (lydiardLongRunCeilingKm - lydiardLongRunStartKm) / float64(baseWeeks-1)
	d := lydiardLongRunStartKm + step*float64(weekInPhase-1)
	if weekInPhase%3 == 0 {
		d -= step
	}
	if d > lydiardLongRunCeilingKm {
		d = lydiardLongRunCeilingKm
	}
	return d
}

// applyLongRunProgression resizes a base-phase long run to the progression
// distance.
func (s *lydiardStrategy) applyLongRunProgression(pw *plan.PlannedWorkout, weekInPhase, baseWeeks int) {
	km := LongRunDistanceKm(weekInPhase, baseWeeks)
	minutes := km * lydiardEasyMinPerKm
	if len(pw.Workout.Segments) == 0 {
		return
	}
	// The long run is a single continuous segment; stretch it to the
	// prescribed distance.
	pw.Workout.Segments[0].DurationMin = minutes
	pw.Workout.Segments[0].Description = fmt.Sprintf("Long aerobic run, %.0f km at an easy effort", km)
	pw.Workout.Name = fmt.Sprintf("Long Run (%.0f km)", km)
	pw.TargetDurationMin = pw.Workout.TotalDuration()
}

// HillProgression returns the three-stage Lydiard hill guidance scaled to
// the available base weeks.
func HillProgression(baseWeeks int) []HillStage {
	stage := func(n, weeks int, name, desc string) HillStage {
		return HillStage{Stage: n, Weeks: weeks, Name: name, Description: desc}
	}
	early := max(1, baseWeeks/3)
	mid := max(1, baseWeeks/3)
	late := max(1, baseWeeks-early-mid)
	return []HillStage{
		stage(1, early, "Hill walking and bounding", "Steep hill walking and springy bounding to build ankle and calf resilience before faster work."),
		stage(2, mid, "Short hill repeats", "Repeats of 45-75 seconds at a strong effort, jogging down for full recovery."),
		stage(3, late, "Long hill circuits", "Continuous hill circuits with climbs of 3-4 minutes, developing strength endurance."),
	}
}

// PhaseDurations allocates phase lengths the Lydiard way: half the plan is
// base, with the remainder split across build, peak, and taper. The phases
// always cover totalWeeks exactly; short plans give base weeks back to keep
// a taper.
func PhaseDurations(totalWeeks int) map[plan.Phase]int {
	base := max(1, totalWeeks/2)
	build := max(1, totalWeeks/4)
	peak := max(1, totalWeeks/8)
	taper := totalWeeks - base - build - peak
	if taper < 1 {
		base = max(1, base-(1-taper))
		taper = 1
	}
	return map[plan.Phase]int{
		plan.PhaseBase:  base,
		plan.PhaseBuild: build,
		plan.PhasePeak:  peak,
		plan.PhaseTaper: taper,
	}
}

// PhaseDurations lets the skeleton generator use the Lydiard periodization
// split in place of its generic one.
func (s *lydiardStrategy) PhaseDurations(totalWeeks int) map[plan.Phase]int {
	return PhaseDurations(totalWeeks)
}

// Guidance summarizes the methodology for downstream reporting.
func (s *lydiardStrategy) Guidance(cfg plan.Config) []string {
	out := []string{
		"Effort over pace: every prescription is an effort band, not a number.",
		fmt.Sprintf("Long run builds toward %.0f km with a plateau every third week.", lydiardLongRunCeilingKm),
	}
	for _, st := range HillProgression(max(1, cfg.Weeks/2)) {
		out = append(out, fmt.Sprintf("Hill stage %d (%d wk): %s", st.Stage, st.Weeks, st.Name))
	}
	return out
}
