package methodology

import (
	"fmt"
	"log/slog"

	"github.com/claude/stride/internal/catalog"
	"github.com/claude/stride/internal/plan"
)

// Intensity clamp bounds for customized segments.
const (
	minIntensity = 40
	maxIntensity = 100
)

// phaseAdjust is the shared phase-adjustment curve applied to segment
// intensities, in percentage points.
var phaseAdjust = map[plan.Phase]float64{
	plan.PhaseBase:     -5,
	plan.PhaseBuild:    0,
	plan.PhasePeak:     +5,
	plan.PhaseTaper:    -10,
	plan.PhaseRecovery: -15,
}

// defaults provides the shared behavior every strategy composes: walking
// the plan, the phase-adjustment intensity curve, emphasis multipliers, and
// first-variant template selection. Concrete strategies hold a defaults
// value and override pieces rather than inheriting.
type defaults struct {
	name             string
	cat              *catalog.Catalog
	log              *slog.Logger
	emphasis         map[plan.WorkoutType]float64
	recoveryEmphasis float64
}

// phaseDistribution looks up the methodology's target for a phase, falling
// back to the base-phase target for unknown phases. Fallback is logged, not
// silent.
func (d defaults) phaseDistribution(phase plan.Phase) plan.IntensityDistribution {
	byPhase := phaseTargets[d.name]
	if t, ok := byPhase[phase]; ok {
		return t
	}
	d.log.Warn("no phase target, falling back to base distribution",
		"methodology", d.name, "phase", phase)
	return byPhase[plan.PhaseBase]
}

// workoutEmphasis returns the configured multiplier for a type, defaulting
// to 1 when the methodology expresses no preference.
func (d defaults) workoutEmphasis(t plan.WorkoutType) float64 {
	if m, ok := d.emphasis[t]; ok {
		return m
	}
	return 1
}

// customizeWorkout applies the phase-adjustment curve and the methodology's
// emphasis to every segment, and scales the stress/recovery estimates by the
// recovery-emphasis constant.
func (d defaults) customizeWorkout(w plan.Workout, phase plan.Phase, weekNumber int) plan.Workout {
	out := w.Clone()
	adj := phaseAdjust[phase]
	emph := d.workoutEmphasis(w.Type)
	for i := range out.Segments {
		out.Segments[i].Intensity = clampIntensity((out.Segments[i].Intensity + adj) * emph)
	}
	out.EstimatedTSS *= d.recoveryEmphasis
	out.RecoveryHours *= d.recoveryEmphasis
	return out
}

// selectVariant is the default selection: the first catalog entry for the
// requested type.
func (d defaults) selectVariant(t plan.WorkoutType) (string, error) {
	ts, err := d.cat.Lookup(t)
	if err != nil {
		return "", err
	}
	return ts[0].ID, nil
}

// enhancePlan walks every block, microcycle, and planned workout, replacing
// each embedded workout with the strategy's selected variant customized for
// its phase and week, then rewrites the per-phase summary and block targets
// from the strategy's phase distributions. The input plan is not mutated.
func enhancePlan(s Strategy, cat *catalog.Catalog, p plan.Plan) (plan.Plan, error) {
	out := p.Clone()
	for bi := range out.Blocks {
		b := &out.Blocks[bi]
		target := s.PhaseDistribution(b.Phase)
		b.Target = &target
		for mi := range b.Microcycles {
			mc := &b.Microcycles[mi]
			weekInPhase := mc.Week - b.StartWeek + 1
			for wi := range mc.Workouts {
				pw := &mc.Workouts[wi]
				variantID, err := s.SelectWorkoutVariant(pw.Workout.Type, b.Phase, weekInPhase)
				if err != nil {
					return plan.Plan{}, fmt.Errorf("selecting variant for %s in %s week %d: %w",
						pw.Workout.Type, b.Phase, weekInPhase, err)
				}
				tpl, err := cat.VariantByID(variantID)
				if err != nil {
					return plan.Plan{}, err
				}
				w := s.CustomizeWorkout(tpl.Instantiate(), b.Phase, mc.Week)
				pw.Workout = w
				pw.TargetDurationMin = w.TotalDuration()
				pw.TargetLoad = w.EstimatedTSS
			}
		}
	}
	rewriteSummary(s, &out)
	return out, nil
}

// rewriteSummary refreshes the plan's phase summary from the strategy's
// phase distributions.
func rewriteSummary(s Strategy, p *plan.Plan) {
	p.Summary = p.Summary[:0]
	for _, b := range p.Blocks {
		p.Summary = append(p.Summary, plan.PhaseSummary{
			Phase:        b.Phase,
			Weeks:        b.EndWeek - b.StartWeek + 1,
			Distribution: s.PhaseDistribution(b.Phase),
		})
	}
}

func clampIntensity(v float64) float64 {
	if v < minIntensity {
		return minIntensity
	}
	if v > maxIntensity {
		return maxIntensity
	}
	return v
}
