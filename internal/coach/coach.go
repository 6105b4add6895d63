// Package coach wires the full plan-generation pipeline: skeleton assembly,
// methodology enhancement, and intensity-distribution enforcement. The CLI
// and the MCP server both drive this one entry point.
package coach

import (
	"fmt"
	"log/slog"

	"github.com/claude/stride/internal/catalog"
	"github.com/claude/stride/internal/distribution"
	"github.com/claude/stride/internal/methodology"
	"github.com/claude/stride/internal/plan"
	"github.com/claude/stride/internal/skeleton"
)

// Coach owns the template catalog, the methodology registry, and the
// distribution enforcer. Construct once at startup and share.
type Coach struct {
	cat *catalog.Catalog
	reg *methodology.Registry
	enf *distribution.Enforcer
	log *slog.Logger
}

// New builds a coach over the embedded template catalog.
func New(log *slog.Logger) (*Coach, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("loading workout catalog: %w", err)
	}
	reg, err := methodology.NewRegistry(cat, log)
	if err != nil {
		return nil, fmt.Errorf("building methodology registry: %w", err)
	}
	return &Coach{
		cat: cat,
		reg: reg,
		enf: distribution.NewEnforcer(log),
		log: log,
	}, nil
}

// Registry exposes the methodology registry for listing and tests.
func (c *Coach) Registry() *methodology.Registry { return c.reg }

// Generate runs the whole pipeline: skeleton, methodology enhancement,
// enforcement, report attachment. Synchronous and pure apart from logging.
func (c *Coach) Generate(cfg plan.Config) (plan.Plan, error) {
	strat, err := c.reg.Resolve(cfg.Methodology)
	if err != nil {
		return plan.Plan{}, err
	}

	// Strategies with their own periodization model override the skeleton's
	// generic phase split.
	var allocate skeleton.Allocator
	if pa, ok := strat.(methodology.PhaseAllocator); ok {
		allocate = pa.PhaseDurations
	}
	skel, err := skeleton.GenerateAllocated(cfg, c.cat, allocate)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("assembling plan skeleton: %w", err)
	}

	enhanced, err := strat.EnhancePlan(skel)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("enhancing plan with %s: %w", strat.Name(), err)
	}

	target := overallTarget(strat, &enhanced)
	final, report := c.enf.Enforce(enhanced, target)
	c.log.Info("plan enforced",
		"methodology", strat.Name(),
		"compliance", report.ComplianceScore,
		"violations", len(report.Violations),
		"iterations", report.Iterations)

	if pt, ok := strat.(methodology.PaceTabler); ok {
		table, err := pt.PaceTable(cfg)
		if err != nil {
			return plan.Plan{}, err
		}
		report.PaceTable = table
	}
	if gp, ok := strat.(methodology.GuidanceProvider); ok {
		report.Recommendations = append(report.Recommendations, gp.Guidance(cfg)...)
	}

	final.Report = &report
	return final, nil
}

// overallTarget blends the strategy's per-phase targets, weighted by the
// number of weeks each phase occupies.
func overallTarget(strat methodology.Strategy, p *plan.Plan) plan.IntensityDistribution {
	var total float64
	var blended plan.IntensityDistribution
	for _, b := range p.Blocks {
		weeks := float64(b.EndWeek - b.StartWeek + 1)
		t := strat.PhaseDistribution(b.Phase)
		blended.Easy += t.Easy * weeks
		blended.Moderate += t.Moderate * weeks
		blended.Hard += t.Hard * weeks
		total += weeks
	}
	if total == 0 {
		return strat.PhaseDistribution(plan.PhaseBase)
	}
	blended.Easy /= total
	blended.Moderate /= total
	blended.Hard /= total
	return blended.Round()
}
