package distribution

import (
	"testing"

	"github.com/claude/stride/internal/plan"
)

// TestDetect_ToleranceBoundary verifies the inclusive compliant boundary: a
// deviation of exactly Tolerance produces no violation, one past it does.
func TestDetect_ToleranceBoundary(t *testing.T) {
	target := plan.IntensityDistribution{Easy: 80, Moderate: 5, Hard: 15}

	atBoundary := plan.IntensityDistribution{Easy: 75, Moderate: 5, Hard: 20}
	if vs := Detect(atBoundary, target, OverallScope); len(vs) != 0 {
		t.Errorf("deviation of exactly %g should be compliant, got %d violations", Tolerance, len(vs))
	}

	pastBoundary := plan.IntensityDistribution{Easy: 74.9, Moderate: 5, Hard: 20.1}
	vs := Detect(pastBoundary, target, OverallScope)
	if len(vs) != 2 {
		t.Fatalf("got %d violations, want 2", len(vs))
	}
}

// TestDetect_InsufficientEasy verifies the violation record for a plan with
// too little easy running.
func TestDetect_InsufficientEasy(t *testing.T) {
	target := plan.IntensityDistribution{Easy: 80, Moderate: 5, Hard: 15}
	actual := plan.IntensityDistribution{Easy: 50, Moderate: 30, Hard: 20}

	vs := Detect(actual, target, OverallScope)
	if len(vs) != 1 {
		t.Fatalf("got %d violations, want 1", len(vs))
	}
	v := vs[0]
	if v.Kind != plan.ViolationInsufficientEasy {
		t.Errorf("kind = %s, want insufficient_easy", v.Kind)
	}
	if v.Difference != 30 {
		t.Errorf("difference = %.1f, want 30", v.Difference)
	}
	if v.Severity != plan.SeverityCritical {
		t.Errorf("severity = %s, want critical", v.Severity)
	}
	if v.Scope != OverallScope {
		t.Errorf("scope = %q, want overall", v.Scope)
	}
}

// TestDetect_ExcessiveHard verifies the hard-side violation and that an
// over-easy plan is never flagged as a violation.
func TestDetect_ExcessiveHard(t *testing.T) {
	target := plan.IntensityDistribution{Easy: 80, Moderate: 10, Hard: 10}

	vs := Detect(plan.IntensityDistribution{Easy: 68, Moderate: 10, Hard: 22}, target, "peak")
	var hard *plan.Violation
	for i := range vs {
		if vs[i].Kind == plan.ViolationExcessiveHard {
			hard = &vs[i]
		}
	}
	if hard == nil {
		t.Fatal("no excessive_hard violation detected")
	}
	if hard.Difference != 12 || hard.Severity != plan.SeverityHigh {
		t.Errorf("got diff %.1f severity %s, want 12 high", hard.Difference, hard.Severity)
	}
	if hard.Scope != "peak" {
		t.Errorf("scope = %q, want peak", hard.Scope)
	}

	// Too easy is not a violation; the upgrade path handles it separately.
	tooEasy := plan.IntensityDistribution{Easy: 98, Moderate: 1, Hard: 1}
	if vs := Detect(tooEasy, target, OverallScope); len(vs) != 0 {
		t.Errorf("over-easy plan flagged with %d violations", len(vs))
	}
}

// TestSortBySeverity verifies most-severe-first ordering with deviation
// breaking ties.
func TestSortBySeverity(t *testing.T) {
	vs := []plan.Violation{
		{Kind: plan.ViolationExcessiveHard, Difference: 7, Severity: plan.SeverityMedium},
		{Kind: plan.ViolationInsufficientEasy, Difference: 20, Severity: plan.SeverityCritical},
		{Kind: plan.ViolationExcessiveHard, Difference: 9, Severity: plan.SeverityMedium},
	}
	sortBySeverity(vs)
	if vs[0].Severity != plan.SeverityCritical {
		t.Errorf("first violation severity = %s, want critical", vs[0].Severity)
	}
	if vs[1].Difference != 9 || vs[2].Difference != 7 {
		t.Errorf("ties not broken by deviation: %.1f then %.1f", vs[1].Difference, vs[2].Difference)
	}
}
