package mcp

import (
	"github.com/claude/stride/internal/coach"
	"github.com/claude/stride/internal/plan"
)

// methodologySummary describes one methodology for listing tools/resources.
type methodologySummary struct {
	ID      string                                    `json:"id"`
	Targets map[plan.Phase]plan.IntensityDistribution `json:"targets"`
}

func methodologySummaries(c *coach.Coach) []methodologySummary {
	reg := c.Registry()
	var out []methodologySummary
	for _, id := range reg.ListAvailable() {
		s, err := reg.Resolve(id)
		if err != nil {
			continue
		}
		targets := make(map[plan.Phase]plan.IntensityDistribution, len(plan.AllPhases))
		for _, ph := range plan.AllPhases {
			targets[ph] = s.PhaseDistribution(ph)
		}
		out = append(out, methodologySummary{ID: id, Targets: targets})
	}
	return out
}
