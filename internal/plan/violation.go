package plan

import "math"

// ViolationKind identifies which distribution rule a plan broke.
type ViolationKind string

const (
	ViolationInsufficientEasy ViolationKind = "insufficient_easy"
	ViolationExcessiveHard    ViolationKind = "excessive_hard"
)

// Severity grades how far a measured distribution sits from its target.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank orders severities for most-severe-first correction.
var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Rank returns a sortable ordinal, higher meaning more severe.
func (s Severity) Rank() int { return severityRank[s] }

// SeverityFor classifies an absolute deviation in percentage points.
// Boundaries are inclusive: exactly 5 is low, exactly 10 medium,
// exactly 15 high, anything beyond critical.
func SeverityFor(difference float64) Severity {
	d := math.Abs(difference)
	switch {
	case d <= 5:
		return SeverityLow
	case d <= 10:
		return SeverityMedium
	case d <= 15:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// Violation records one deviation between a measured and a target
// distribution. Scope is a phase name or "overall".
type Violation struct {
	Kind       ViolationKind `json:"kind" yaml:"kind"`
	Scope      string        `json:"scope" yaml:"scope"`
	Actual     float64       `json:"actual" yaml:"actual"`
	Target     float64       `json:"target" yaml:"target"`
	Difference float64       `json:"difference" yaml:"difference"`
	Severity   Severity      `json:"severity" yaml:"severity"`
}
