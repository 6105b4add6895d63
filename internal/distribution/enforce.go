package distribution

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/claude/stride/internal/plan"
)

// maxIterations is the hard ceiling on correction passes. The loop normally
// terminates earlier, as soon as a pass fails to strictly reduce the
// violation count.
const maxIterations = 5

// Per-violation compliance-score penalties.
var severityPenalty = map[plan.Severity]float64{
	plan.SeverityLow:      2,
	plan.SeverityMedium:   5,
	plan.SeverityHigh:     10,
	plan.SeverityCritical: 20,
}

// Enforcer validates a plan against a target intensity distribution and
// applies bounded corrective passes. Violations that survive correction are
// recorded in the report, never raised as errors.
type Enforcer struct {
	log *slog.Logger
}

// NewEnforcer returns an enforcer that logs correction activity to log.
func NewEnforcer(log *slog.Logger) *Enforcer {
	return &Enforcer{log: log}
}

// Enforce measures, corrects, and re-measures the plan until its violation
// count stops improving, then returns the best plan achieved and the final
// report. The input plan is never mutated.
func (e *Enforcer) Enforce(p plan.Plan, target plan.IntensityDistribution) (plan.Plan, plan.Report) {
	best := p.Clone()

	// A plan that is far too easy gains bounded quality before any
	// softening passes run.
	if overall := Measure(best.Workouts()); overall.Easy > target.Easy+Tolerance {
		if n := upgradeEasyWorkouts(&best); n > 0 {
			e.log.Info("upgraded easy workouts to add quality", "count", n)
		}
	}

	violations := detectAll(&best, target)
	iterations := 0

	for iterations < maxIterations && len(violations) > 0 {
		candidate := best.Clone()
		for _, v := range violations {
			workouts := scopeWorkouts(&candidate, v.Scope)
			var changed int
			switch v.Kind {
			case plan.ViolationInsufficientEasy:
				changed = correctInsufficientEasy(workouts, v.Severity)
			case plan.ViolationExcessiveHard:
				changed = correctExcessiveHard(workouts, v.Severity)
			}
			e.log.Debug("applied correction",
				"kind", v.Kind, "scope", v.Scope, "severity", v.Severity, "segments_changed", changed)
		}

		next := detectAll(&candidate, target)
		iterations++
		if len(next) >= len(violations) {
			// No progress; keep the best plan so far and stop.
			break
		}
		best = candidate
		violations = next
	}

	report := e.buildReport(&best, target, violations, iterations)
	return best, report
}

// scopeWorkouts resolves a violation scope to the workouts it covers.
func scopeWorkouts(p *plan.Plan, scope string) []*plan.PlannedWorkout {
	if scope == OverallScope {
		return p.Workouts()
	}
	for bi := range p.Blocks {
		if string(p.Blocks[bi].Phase) == scope {
			return blockWorkouts(&p.Blocks[bi])
		}
	}
	return nil
}

// Score computes the 0-100 compliance score: easy deviation costs double,
// hard deviation triple, and every remaining violation subtracts its
// severity penalty.
func Score(actual, target plan.IntensityDistribution, violations []plan.Violation) float64 {
	easyScore := math.Max(0, 100-2*math.Abs(actual.Easy-target.Easy))
	hardScore := math.Max(0, 100-3*math.Abs(actual.Hard-target.Hard))
	score := (easyScore + hardScore) / 2
	for _, v := range violations {
		score -= severityPenalty[v.Severity]
	}
	return math.Max(0, math.Round(score*10)/10)
}

// buildReport assembles the enforcement report: overall and per-phase
// measurements, surviving violations, recommendations, and the score.
func (e *Enforcer) buildReport(p *plan.Plan, target plan.IntensityDistribution, violations []plan.Violation, iterations int) plan.Report {
	overall := Measure(p.Workouts())
	report := plan.Report{
		Overall:         overall,
		Violations:      violations,
		ComplianceScore: Score(overall, target, violations),
		Iterations:      iterations,
	}
	for bi := range p.Blocks {
		b := &p.Blocks[bi]
		report.PerPhase = append(report.PerPhase, plan.PhaseSummary{
			Phase:        b.Phase,
			Weeks:        b.EndWeek - b.StartWeek + 1,
			Distribution: Measure(blockWorkouts(b)),
		})
	}
	report.Recommendations = recommendations(overall, target, violations)
	return report
}

// recommendations renders the surviving violations as coaching advice.
func recommendations(actual, target plan.IntensityDistribution, violations []plan.Violation) []string {
	if len(violations) == 0 {
		return []string{fmt.Sprintf(
			"Intensity distribution is within tolerance of the %.0f/%.0f/%.0f target.",
			target.Easy, target.Moderate, target.Hard)}
	}
	var out []string
	for _, v := range violations {
		switch v.Kind {
		case plan.ViolationInsufficientEasy:
			out = append(out, fmt.Sprintf(
				"%s: easy volume is %.1f%% against a %.1f%% target; replace moderate sessions with easy running or extend easy runs.",
				v.Scope, v.Actual, v.Target))
		case plan.ViolationExcessiveHard:
			out = append(out, fmt.Sprintf(
				"%s: hard volume is %.1f%% against a %.1f%% target; cut interval volume or convert a quality day to tempo.",
				v.Scope, v.Actual, v.Target))
		}
	}
	return out
}
