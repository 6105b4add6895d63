package distribution

import (
	"sort"

	"github.com/claude/stride/internal/plan"
)

// Tolerance is the allowed deviation, in percentage points, before a
// distribution difference becomes a violation. The boundary is inclusive on
// the compliant side: a deviation of exactly Tolerance is compliant, one
// point beyond is not.
const Tolerance = 5.0

// OverallScope is the violation scope for plan-wide checks; phase-scoped
// violations use the phase name.
const OverallScope = "overall"

// Detect compares a measured distribution to its target and returns the
// violations, severity-classified by the size of the deviation.
func Detect(actual, target plan.IntensityDistribution, scope string) []plan.Violation {
	var out []plan.Violation

	if actual.Easy < target.Easy-Tolerance {
		diff := target.Easy - actual.Easy
		out = append(out, plan.Violation{
			Kind:       plan.ViolationInsufficientEasy,
			Scope:      scope,
			Actual:     actual.Easy,
			Target:     target.Easy,
			Difference: diff,
			Severity:   plan.SeverityFor(diff),
		})
	}
	if actual.Hard > target.Hard+Tolerance {
		diff := actual.Hard - target.Hard
		out = append(out, plan.Violation{
			Kind:       plan.ViolationExcessiveHard,
			Scope:      scope,
			Actual:     actual.Hard,
			Target:     target.Hard,
			Difference: diff,
			Severity:   plan.SeverityFor(diff),
		})
	}
	return out
}

// detectAll runs overall detection plus per-phase detection against each
// block's target where present.
func detectAll(p *plan.Plan, target plan.IntensityDistribution) []plan.Violation {
	violations := Detect(Measure(p.Workouts()), target, OverallScope)
	for bi := range p.Blocks {
		b := &p.Blocks[bi]
		if b.Target == nil {
			continue
		}
		violations = append(violations, Detect(Measure(blockWorkouts(b)), *b.Target, string(b.Phase))...)
	}
	sortBySeverity(violations)
	return violations
}

// sortBySeverity orders violations most severe first, largest deviation
// breaking ties, for correction priority.
func sortBySeverity(vs []plan.Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].Severity.Rank() != vs[j].Severity.Rank() {
			return vs[i].Severity.Rank() > vs[j].Severity.Rank()
		}
		return vs[i].Difference > vs[j].Difference
	})
}

func blockWorkouts(b *plan.Block) []*plan.PlannedWorkout {
	var out []*plan.PlannedWorkout
	for mi := range b.Microcycles {
		mc := &b.Microcycles[mi]
		for wi := range mc.Workouts {
			out = append(out, &mc.Workouts[wi])
		}
	}
	return out
}
