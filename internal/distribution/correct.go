package distribution

import "github.com/claude/stride/internal/plan"

// Correction constants: the fixed intensity moderate segments are
// down-converted to, the hard-segment ceilings by severity, and the bounds
// on the easy-workout upgrade path.
const (
	easyConversionIntensity = 70.0
	hardCapCritical         = 70.0
	hardCapDefault          = 80.0

	upgradeMinDurationMin = 45.0
	upgradesPerWeek       = 2
	upgradeTempoMinutes   = 15.0
	upgradeTempoIntensity = 82.0
)

// eligibleForSoftening reports whether a workout may have its intensity
// reduced for the given severity. Race-specific efforts are untouchable
// below critical; non-critical easy-conversions additionally only touch
// workouts that are already easy-typed.
func eligibleForSoftening(w plan.Workout, severity plan.Severity, easyOnly bool) bool {
	if w.Type.IsRaceEffort() && severity != plan.SeverityCritical {
		return false
	}
	if easyOnly && severity != plan.SeverityCritical && !w.Type.IsEasyType() {
		return false
	}
	return true
}

// correctInsufficientEasy down-converts moderate segments (76-85) of
// eligible workouts to a fixed easy intensity. Returns the number of
// segments changed.
func correctInsufficientEasy(workouts []*plan.PlannedWorkout, severity plan.Severity) int {
	changed := 0
	for _, pw := range workouts {
		if !eligibleForSoftening(pw.Workout, severity, true) {
			continue
		}
		for i := range pw.Workout.Segments {
			seg := &pw.Workout.Segments[i]
			if seg.Intensity > easyMax && seg.Intensity <= moderateMax {
				seg.Intensity = easyConversionIntensity
				seg.Zone = "easy"
				changed++
			}
		}
	}
	return changed
}

// correctExcessiveHard caps segments above the hard boundary at a
// severity-dependent ceiling. Low-severity violations are left alone
// entirely; they sit close enough to target that softening would overshoot.
func correctExcessiveHard(workouts []*plan.PlannedWorkout, severity plan.Severity) int {
	if severity == plan.SeverityLow {
		return 0
	}
	ceiling := hardCapDefault
	zone := "tempo"
	if severity == plan.SeverityCritical {
		ceiling = hardCapCritical
		zone = "easy"
	}
	changed := 0
	for _, pw := range workouts {
		if !eligibleForSoftening(pw.Workout, severity, false) {
			continue
		}
		for i := range pw.Workout.Segments {
			seg := &pw.Workout.Segments[i]
			if seg.Intensity > moderateMax {
				seg.Intensity = ceiling
				seg.Zone = zone
				changed++
			}
		}
	}
	return changed
}

// upgradeEasyWorkouts adds quality to a plan that is easier than its target:
// in each week, up to upgradesPerWeek sufficiently long easy workouts get a
// tempo segment spliced into their midpoint and become tempo workouts.
// Selection is deterministic: the first eligible workouts of each week, in
// calendar order.
func upgradeEasyWorkouts(p *plan.Plan) int {
	upgraded := 0
	for bi := range p.Blocks {
		b := &p.Blocks[bi]
		// Taper and recovery weeks never gain quality.
		if b.Phase == plan.PhaseTaper || b.Phase == plan.PhaseRecovery {
			continue
		}
		for mi := range b.Microcycles {
			mc := &b.Microcycles[mi]
			inWeek := 0
			for wi := range mc.Workouts {
				if inWeek >= upgradesPerWeek {
					break
				}
				pw := &mc.Workouts[wi]
				if pw.Workout.Type != plan.WorkoutEasy || pw.Workout.TotalDuration() < upgradeMinDurationMin {
					continue
				}
				spliceTempo(pw)
				inWeek++
				upgraded++
			}
		}
	}
	return upgraded
}

// spliceTempo splits the workout at its midpoint and inserts a tempo
// segment, converting the workout's semantic type.
func spliceTempo(pw *plan.PlannedWorkout) {
	w := &pw.Workout
	half := w.TotalDuration() / 2

	var out []plan.Segment
	var elapsed float64
	inserted := false
	for _, seg := range w.Segments {
		if !inserted && elapsed+seg.DurationMin >= half {
			firstPart := half - elapsed
			if firstPart > 0 {
				head := seg
				head.DurationMin = firstPart
				out = append(out, head)
			}
			out = append(out, plan.Segment{
				DurationMin: upgradeTempoMinutes,
				Intensity:   upgradeTempoIntensity,
				Zone:        "tempo",
				Description: "Tempo insert: comfortably hard effort",
			})
			rest := seg
			rest.DurationMin = seg.DurationMin - firstPart
			if rest.DurationMin > 0 {
				out = append(out, rest)
			}
			inserted = true
		} else {
			out = append(out, seg)
		}
		elapsed += seg.DurationMin
	}
	w.Segments = out
	w.Type = plan.WorkoutTempo
	w.Name = "Easy Run with Tempo Insert"
	pw.TargetDurationMin = w.TotalDuration()
}
