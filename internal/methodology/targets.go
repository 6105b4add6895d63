package methodology

import (
	"fmt"

	"github.com/claude/stride/internal/plan"
)

// phaseTargets maps (methodology, phase) to its target intensity
// distribution. The table must cover every phase for every methodology;
// NewRegistry validates completeness at construction time.
var phaseTargets = map[string]map[plan.Phase]plan.IntensityDistribution{
	Daniels: {
		plan.PhaseBase:     {Easy: 85, Moderate: 10, Hard: 5},
		plan.PhaseBuild:    {Easy: 80, Moderate: 10, Hard: 10},
		plan.PhasePeak:     {Easy: 75, Moderate: 10, Hard: 15},
		plan.PhaseTaper:    {Easy: 80, Moderate: 10, Hard: 10},
		plan.PhaseRecovery: {Easy: 95, Moderate: 5, Hard: 0},
	},
	Lydiard: {
		plan.PhaseBase:     {Easy: 92, Moderate: 6, Hard: 2},
		plan.PhaseBuild:    {Easy: 85, Moderate: 10, Hard: 5},
		plan.PhasePeak:     {Easy: 80, Moderate: 10, Hard: 10},
		plan.PhaseTaper:    {Easy: 85, Moderate: 10, Hard: 5},
		plan.PhaseRecovery: {Easy: 98, Moderate: 2, Hard: 0},
	},
	Pfitzinger: {
		plan.PhaseBase:     {Easy: 82, Moderate: 12, Hard: 6},
		plan.PhaseBuild:    {Easy: 77, Moderate: 13, Hard: 10},
		plan.PhasePeak:     {Easy: 74, Moderate: 13, Hard: 13},
		plan.PhaseTaper:    {Easy: 80, Moderate: 12, Hard: 8},
		plan.PhaseRecovery: {Easy: 95, Moderate: 5, Hard: 0},
	},
}

// validateTargets checks that every methodology covers every phase and that
// each distribution sums to 100 within rounding.
func validateTargets() error {
	for _, id := range []string{Daniels, Lydiard, Pfitzinger} {
		byPhase, ok := phaseTargets[id]
		if !ok {
			return fmt.Errorf("methodology %q has no phase targets", id)
		}
		for _, ph := range plan.AllPhases {
			d, ok := byPhase[ph]
			if !ok {
				return fmt.Errorf("methodology %q missing target for phase %q", id, ph)
			}
			if !d.IsComplete() {
				return fmt.Errorf("methodology %q phase %q target sums to %.1f, want 100", id, ph, d.Sum())
			}
		}
	}
	return nil
}
